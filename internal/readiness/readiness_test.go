package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourgorithm/seo-audit/internal/audit"
	"github.com/ourgorithm/seo-audit/internal/types"
)

func passingChecks(keys ...string) map[string]types.CheckResult {
	checks := make(map[string]types.CheckResult, len(keys))
	for _, key := range keys {
		checks[key] = types.CheckResult{Key: key, Passed: true}
	}
	return checks
}

func allFeaturedChecks() map[string]types.CheckResult {
	return passingChecks(
		audit.CheckPhoneVisible,
		audit.CheckContactPage,
		audit.CheckJSONLDPresent,
		audit.CheckTitlePresent,
		audit.CheckMetaDescription,
		audit.CheckTestimonials,
		audit.CheckPrivacyPolicy,
	)
}

func TestEvaluate_Featured(t *testing.T) {
	report := Evaluate(allFeaturedChecks(), "https://acme.com", 82)

	assert.Equal(t, types.TierFeatured, report.Tier)
	assert.Equal(t, 100, report.Percentage)
	assert.Equal(t, 8, report.PassedCount)
	assert.Equal(t, 8, report.TotalCount)
	assert.Empty(t, report.Blockers())
}

func TestEvaluate_ScoreGateBlocksFeatured(t *testing.T) {
	// Every featured requirement passes, but the score sits below 75.
	report := Evaluate(allFeaturedChecks(), "https://acme.com", 74)

	assert.Equal(t, types.TierBasic, report.Tier)
	assert.Equal(t, 8, report.PassedCount)
}

func TestEvaluate_RequirementBlocksFeaturedDespiteScore(t *testing.T) {
	checks := allFeaturedChecks()
	checks[audit.CheckTestimonials] = types.CheckResult{Key: audit.CheckTestimonials, Passed: false}

	report := Evaluate(checks, "https://acme.com", 90)

	assert.Equal(t, types.TierBasic, report.Tier)
	assert.Equal(t, 7, report.PassedCount)
	assert.Equal(t, []string{"Testimonials shown"}, report.Blockers())
}

func TestEvaluate_Basic(t *testing.T) {
	checks := passingChecks(
		audit.CheckPhoneVisible,
		audit.CheckContactPage,
		audit.CheckTitlePresent,
	)

	report := Evaluate(checks, "https://acme.com", 55)

	assert.Equal(t, types.TierBasic, report.Tier)
	// Counts still describe the featured set.
	assert.Equal(t, 4, report.PassedCount)
	assert.Equal(t, 8, report.TotalCount)
	assert.Equal(t, 50, report.Percentage)
}

func TestEvaluate_NotReadyOnLowScore(t *testing.T) {
	checks := passingChecks(
		audit.CheckPhoneVisible,
		audit.CheckContactPage,
		audit.CheckTitlePresent,
	)

	report := Evaluate(checks, "https://acme.com", 49)
	assert.Equal(t, types.TierNotReady, report.Tier)
}

func TestEvaluate_NotReadyOnMissingBasicRequirement(t *testing.T) {
	checks := passingChecks(audit.CheckContactPage, audit.CheckTitlePresent)

	report := Evaluate(checks, "https://acme.com", 80)
	assert.Equal(t, types.TierNotReady, report.Tier)

	blockers := report.Blockers()
	assert.Contains(t, blockers, "Phone visible on site")
}

func TestEvaluate_HTTPSComesFromResolvedURL(t *testing.T) {
	report := Evaluate(allFeaturedChecks(), "http://acme.com", 90)

	assert.Equal(t, types.TierNotReady, report.Tier)
	assert.Contains(t, report.Blockers(), "HTTPS enabled")
}

func TestEvaluate_RequirementListAlwaysItemized(t *testing.T) {
	report := Evaluate(map[string]types.CheckResult{}, "", 0)

	require.Len(t, report.Requirements, 8)
	assert.Equal(t, types.TierNotReady, report.Tier)
	assert.Equal(t, 0, report.Percentage)
	for _, req := range report.Requirements {
		assert.False(t, req.Passed, "requirement %s", req.Key)
	}
}

func TestEvaluate_PercentageRounds(t *testing.T) {
	checks := passingChecks(audit.CheckPhoneVisible, audit.CheckContactPage)
	report := Evaluate(checks, "https://acme.com", 30)

	// 3 of 8 including HTTPS rounds to 38.
	assert.Equal(t, 3, report.PassedCount)
	assert.Equal(t, 38, report.Percentage)
}
