package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ourgorithm/seo-audit/internal/types"
)

const siteColumns = `id, organization_id, domain, url, COALESCE(business_name, ''),
	COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip, ''),
	COALESCE(phone, ''), industry, stage, notes, data_confidence_source,
	latest_score, latest_audit_id, latest_audit_at,
	COALESCE(platform_detected, ''), COALESCE(platform_confidence, 0),
	COALESCE(directory_readiness, ''), created_at, updated_at`

func scanSite(row pgx.Row) (*types.Site, error) {
	var s types.Site
	err := row.Scan(
		&s.ID, &s.OrganizationID, &s.Domain, &s.URL, &s.BusinessName,
		&s.Address, &s.City, &s.State, &s.Zip,
		&s.Phone, &s.Industry, &s.Stage, &s.Notes, &s.DataConfidenceSource,
		&s.LatestScore, &s.LatestAuditID, &s.LatestAuditAt,
		&s.PlatformDetected, &s.PlatformConfidence,
		&s.DirectoryReadiness, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSites returns an organization's sites, newest first.
func (db *DB) ListSites(ctx context.Context, orgID uuid.UUID) ([]types.Site, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+siteColumns+` FROM sites WHERE organization_id = $1 ORDER BY created_at DESC`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []types.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, *site)
	}
	return sites, nil
}

// GetSite retrieves a site by id. Returns nil when it does not exist.
func (db *DB) GetSite(ctx context.Context, siteID uuid.UUID) (*types.Site, error) {
	site, err := scanSite(db.pool.QueryRow(ctx,
		`SELECT `+siteColumns+` FROM sites WHERE id = $1`, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return site, nil
}

// CreateSite inserts a new site record and returns its id.
func (db *DB) CreateSite(ctx context.Context, orgID uuid.UUID, req *types.CreateSiteRequest) (uuid.UUID, error) {
	industry := req.Industry
	if industry == "" {
		industry = "other"
	}
	stage := req.Stage
	if stage == "" {
		stage = "lead"
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sites (organization_id, domain, url, business_name, address, city, state, zip,
		                    phone, industry, stage, notes, data_confidence_source)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'detected')
		 RETURNING id`,
		orgID, req.Domain, "https://"+req.Domain, req.BusinessName, req.Address, req.City,
		req.State, req.Zip, req.Phone, industry, stage, req.Notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create site: %w", err)
	}
	return id, nil
}

// UpdateSite updates a site's mutable business metadata. Nil fields are
// left untouched.
func (db *DB) UpdateSite(ctx context.Context, siteID uuid.UUID, req *types.UpdateSiteRequest) error {
	query := `UPDATE sites SET updated_at = NOW()`
	args := []any{}
	argNum := 1

	set := func(column string, value *string) {
		if value == nil {
			return
		}
		query += fmt.Sprintf(", %s = $%d", column, argNum)
		args = append(args, *value)
		argNum++
	}
	set("business_name", req.BusinessName)
	set("address", req.Address)
	set("city", req.City)
	set("state", req.State)
	set("zip", req.Zip)
	set("phone", req.Phone)
	set("industry", req.Industry)
	set("stage", req.Stage)
	set("notes", req.Notes)

	query += fmt.Sprintf(" WHERE id = $%d", argNum)
	args = append(args, siteID)

	result, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update site: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("site not found: %s", siteID)
	}
	return nil
}

// UpdateSiteAuditCache refreshes the cached latest-audit summary on a site.
func (db *DB) UpdateSiteAuditCache(ctx context.Context, siteID, auditID uuid.UUID, result *types.AuditResult) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sites SET latest_score = $1, latest_audit_id = $2, latest_audit_at = NOW(),
		        platform_detected = $3, platform_confidence = $4, directory_readiness = $5,
		        updated_at = NOW()
		 WHERE id = $6`,
		result.TotalScore, auditID, result.Platform.Name,
		float64(result.Platform.Confidence)/100, string(result.Readiness.Tier), siteID,
	)
	if err != nil {
		return fmt.Errorf("failed to update site audit cache: %w", err)
	}
	return nil
}

// DeleteSite removes a site by id.
func (db *DB) DeleteSite(ctx context.Context, siteID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM sites WHERE id = $1`, siteID)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("site not found: %s", siteID)
	}
	return nil
}
