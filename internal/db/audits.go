package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ourgorithm/seo-audit/internal/types"
)

func categoryScore(result *types.AuditResult, category string) int {
	return result.Categories[category].Score
}

// InsertAudit persists a full audit result for a site and returns the new
// audit id. The site's cached summary is updated separately with
// UpdateSiteAuditCache.
func (db *DB) InsertAudit(ctx context.Context, siteID uuid.UUID, result *types.AuditResult) (uuid.UUID, error) {
	categoriesJSON, err := json.Marshal(result.Categories)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal audit categories: %w", err)
	}

	blockers := result.Readiness.Blockers()
	if blockers == nil {
		blockers = []string{}
	}
	blockersJSON, err := json.Marshal(blockers)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal directory blockers: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO audits (site_id, total_score, technical_score, onpage_score,
		                     local_presence_score, trust_score, social_score,
		                     platform_detected, platform_confidence, directory_readiness,
		                     directory_blockers, categories, quick_wins, top_issues)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, '[]', '[]')
		 RETURNING id`,
		siteID, result.TotalScore,
		categoryScore(result, types.CategoryTechnical),
		categoryScore(result, types.CategoryOnPage),
		categoryScore(result, types.CategoryLocal),
		categoryScore(result, types.CategoryTrust),
		categoryScore(result, types.CategorySocial),
		result.Platform.Name, float64(result.Platform.Confidence)/100,
		string(result.Readiness.Tier), blockersJSON, categoriesJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert audit: %w", err)
	}
	return id, nil
}

// GetLatestAudit returns the most recent audit for a site, or nil when the
// site has never been audited.
func (db *DB) GetLatestAudit(ctx context.Context, siteID uuid.UUID) (*types.AuditRecord, error) {
	var (
		rec            types.AuditRecord
		blockersJSON   []byte
		categoriesJSON []byte
		quickWinsJSON  []byte
		topIssuesJSON  []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, site_id, total_score, technical_score, onpage_score,
		        local_presence_score, trust_score, social_score,
		        COALESCE(platform_detected, ''), COALESCE(platform_confidence, 0),
		        COALESCE(directory_readiness, ''), directory_blockers, categories,
		        quick_wins, top_issues, created_at
		 FROM audits WHERE site_id = $1 ORDER BY created_at DESC LIMIT 1`,
		siteID,
	).Scan(
		&rec.ID, &rec.SiteID, &rec.TotalScore, &rec.TechnicalScore, &rec.OnPageScore,
		&rec.LocalPresenceScore, &rec.TrustScore, &rec.SocialScore,
		&rec.PlatformDetected, &rec.PlatformConfidence,
		&rec.DirectoryReadiness, &blockersJSON, &categoriesJSON,
		&quickWinsJSON, &topIssuesJSON, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest audit: %w", err)
	}

	if err := json.Unmarshal(blockersJSON, &rec.DirectoryBlockers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal directory blockers: %w", err)
	}
	if err := json.Unmarshal(categoriesJSON, &rec.Categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit categories: %w", err)
	}
	if err := json.Unmarshal(quickWinsJSON, &rec.QuickWins); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quick wins: %w", err)
	}
	if err := json.Unmarshal(topIssuesJSON, &rec.TopIssues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top issues: %w", err)
	}
	return &rec, nil
}
