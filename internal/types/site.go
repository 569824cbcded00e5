package types

import (
	"time"

	"github.com/google/uuid"
)

// Site is a tracked business/domain entity.
type Site struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Domain         string    `json:"domain"`
	URL            string    `json:"url"`
	BusinessName   string    `json:"business_name,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Zip            string    `json:"zip,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Industry       string    `json:"industry"`
	Stage          string    `json:"stage"`
	Notes          string    `json:"notes"`
	// DataConfidenceSource tags where the business metadata came from
	// (detected from the site vs. entered by hand).
	DataConfidenceSource string `json:"data_confidence_source"`

	// Cached summary of the most recent audit. Full history lives in the
	// audits table.
	LatestScore        *int          `json:"latest_score,omitempty"`
	LatestAuditID      *uuid.UUID    `json:"latest_audit_id,omitempty"`
	LatestAuditAt      *time.Time    `json:"latest_audit_at,omitempty"`
	PlatformDetected   string        `json:"platform_detected,omitempty"`
	PlatformConfidence float64       `json:"platform_confidence,omitempty"`
	DirectoryReadiness ReadinessTier `json:"directory_readiness,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditRecord is a persisted audit linked to a site.
type AuditRecord struct {
	ID                 uuid.UUID                 `json:"id"`
	SiteID             uuid.UUID                 `json:"site_id"`
	TotalScore         int                       `json:"total_score"`
	TechnicalScore     int                       `json:"technical_score"`
	OnPageScore        int                       `json:"onpage_score"`
	LocalPresenceScore int                       `json:"local_presence_score"`
	TrustScore         int                       `json:"trust_score"`
	SocialScore        int                       `json:"social_score"`
	PlatformDetected   string                    `json:"platform_detected"`
	PlatformConfidence float64                   `json:"platform_confidence"`
	DirectoryReadiness ReadinessTier             `json:"directory_readiness"`
	DirectoryBlockers  []string                  `json:"directory_blockers"`
	Categories         map[string]CategoryResult `json:"categories"`
	// QuickWins and TopIssues are reserved for future use and currently
	// always empty.
	QuickWins []string  `json:"quick_wins"`
	TopIssues []string  `json:"top_issues"`
	CreatedAt time.Time `json:"created_at"`
}

// SprintRequest is a remediation lead captured for a site.
type SprintRequest struct {
	ID             uuid.UUID     `json:"id"`
	SiteID         uuid.UUID     `json:"site_id"`
	OrganizationID uuid.UUID     `json:"organization_id"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	ReadinessTier  ReadinessTier `json:"readiness_tier"`
	Blockers       []string      `json:"blockers"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Branding configures the rendered report header.
type Branding struct {
	CompanyName  string `json:"company_name"`
	PrimaryColor string `json:"primary_color"`
	LogoURL      string `json:"logo_url,omitempty"`
}
