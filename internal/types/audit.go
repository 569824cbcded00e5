// Package types provides type definitions for structured data shared across the seo-audit system.
package types

import "time"

// Category keys. Every check belongs to exactly one of these.
const (
	CategoryTechnical = "technical"
	CategoryOnPage    = "onpage"
	CategoryLocal     = "local"
	CategoryTrust     = "trust"
	CategorySocial    = "social"
)

// Fixability describes how much control the business has to remediate
// SEO issues on its detected hosting platform.
type Fixability string

const (
	FixabilityFull    Fixability = "full"
	FixabilityPartial Fixability = "partial"
	FixabilityLimited Fixability = "limited"
	FixabilityUnknown Fixability = "unknown"
)

// Platform is the hosting-platform classification for an audited site.
type Platform struct {
	Name       string     `json:"name"`
	Confidence int        `json:"confidence"` // 0-100
	Fixability Fixability `json:"fixability"`
	Note       string     `json:"note"`
}

// CheckResult holds the outcome of a single audit check.
type CheckResult struct {
	Key       string `json:"key"`
	Passed    bool   `json:"passed"`
	Category  string `json:"category"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
	// Value is an observed value for display (detected phone number,
	// title length, matched social URL), empty when not applicable.
	Value string `json:"value,omitempty"`
}

// CategoryResult aggregates the checks of one scoring category.
type CategoryResult struct {
	Name     string        `json:"name"`
	Score    int           `json:"score"`
	MaxScore int           `json:"max_score"`
	Checks   []CheckResult `json:"checks"`
}

// ReadinessTier is the directory readiness classification.
type ReadinessTier string

const (
	TierFeatured ReadinessTier = "featured"
	TierBasic    ReadinessTier = "basic"
	TierNotReady ReadinessTier = "not_ready"
)

// RequirementResult is one directory requirement with its evaluation.
type RequirementResult struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
}

// ReadinessReport describes directory readiness for an audited site.
// Percentage, PassedCount and Requirements always refer to the featured
// requirement set regardless of the achieved tier, so the report shows
// progress toward the higher bar.
type ReadinessReport struct {
	Tier         ReadinessTier       `json:"tier"`
	Percentage   int                 `json:"percentage"`
	PassedCount  int                 `json:"passed_count"`
	TotalCount   int                 `json:"total_count"`
	Requirements []RequirementResult `json:"requirements"`
}

// Blockers returns the labels of failed featured requirements.
func (r *ReadinessReport) Blockers() []string {
	var blockers []string
	for _, req := range r.Requirements {
		if !req.Passed {
			blockers = append(blockers, req.Label)
		}
	}
	return blockers
}

// AuditResult is the immutable snapshot produced by one audit run.
//
// Invariants: TotalScore equals the sum of category scores, each category
// score equals the sum of its checks' points and never exceeds MaxScore,
// and the check keys are a fixed closed set independent of the audited site.
type AuditResult struct {
	Domain      string                    `json:"domain"`
	ResolvedURL string                    `json:"url"`
	SourceRelay string                    `json:"relay_used,omitempty"`
	Platform    Platform                  `json:"platform"`
	Checks      map[string]CheckResult    `json:"checks"`
	Categories  map[string]CategoryResult `json:"categories"`
	TotalScore  int                       `json:"total_score"`
	MaxScore    int                       `json:"max_score"`
	// HasLocalBusinessSchema is informational: a parseable JSON-LD block
	// declared a LocalBusiness or Organization type. Not scored.
	HasLocalBusinessSchema bool            `json:"has_local_business_schema"`
	Readiness              ReadinessReport `json:"directory_readiness"`
	AuditDate              time.Time       `json:"audit_date"`
}

// CategoryOrder returns category keys in display order.
func CategoryOrder() []string {
	return []string{CategoryTechnical, CategoryOnPage, CategoryLocal, CategoryTrust, CategorySocial}
}
