package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ourgorithm/seo-audit/internal/types"
)

// InsertSprintRequest records a remediation lead for a site and returns its id.
func (db *DB) InsertSprintRequest(ctx context.Context, siteID, orgID uuid.UUID, input *types.SprintRequestInput, tier types.ReadinessTier, blockers []string) (uuid.UUID, error) {
	if blockers == nil {
		blockers = []string{}
	}
	blockersJSON, err := json.Marshal(blockers)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal blockers: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO sprint_requests (site_id, organization_id, email, phone, readiness_tier, blockers)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		siteID, orgID, input.Email, input.Phone, string(tier), blockersJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert sprint request: %w", err)
	}
	return id, nil
}
