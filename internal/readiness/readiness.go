// Package readiness evaluates an audit against the directory listing tiers.
package readiness

import (
	"math"
	"strings"

	"github.com/ourgorithm/seo-audit/internal/audit"
	"github.com/ourgorithm/seo-audit/internal/types"
)

// Requirement is a named boolean gate over an audit result.
type Requirement struct {
	Key   string
	Label string
	Check func(checks map[string]types.CheckResult, resolvedURL string) bool
}

// Tier couples a minimum total score with a requirement list. A tier is
// achieved only when the score threshold is met and every requirement
// passes.
type Tier struct {
	Label        string
	MinScore     int
	Requirements []Requirement
}

func passedCheck(key string) func(map[string]types.CheckResult, string) bool {
	return func(checks map[string]types.CheckResult, _ string) bool {
		return checks[key].Passed
	}
}

func httpsEnabled(_ map[string]types.CheckResult, resolvedURL string) bool {
	return strings.HasPrefix(resolvedURL, "https")
}

// Featured returns the featured-listing tier: eight requirements and a
// minimum score of 75.
func Featured() Tier {
	return Tier{
		Label:    "Featured Ready",
		MinScore: 75,
		Requirements: []Requirement{
			{Key: "https", Label: "HTTPS enabled", Check: httpsEnabled},
			{Key: "phone", Label: "Phone visible on site", Check: passedCheck(audit.CheckPhoneVisible)},
			{Key: "contact", Label: "Contact page exists", Check: passedCheck(audit.CheckContactPage)},
			{Key: "schema", Label: "Structured data (Schema)", Check: passedCheck(audit.CheckJSONLDPresent)},
			{Key: "title", Label: "Proper title tags", Check: passedCheck(audit.CheckTitlePresent)},
			{Key: "description", Label: "Meta description", Check: passedCheck(audit.CheckMetaDescription)},
			{Key: "testimonials", Label: "Testimonials shown", Check: passedCheck(audit.CheckTestimonials)},
			{Key: "privacy", Label: "Privacy policy", Check: passedCheck(audit.CheckPrivacyPolicy)},
		},
	}
}

// Basic returns the basic-listing tier: four requirements and a minimum
// score of 50.
func Basic() Tier {
	return Tier{
		Label:    "Basic Ready",
		MinScore: 50,
		Requirements: []Requirement{
			{Key: "https", Label: "HTTPS enabled", Check: httpsEnabled},
			{Key: "phone", Label: "Phone visible on site", Check: passedCheck(audit.CheckPhoneVisible)},
			{Key: "contact", Label: "Contact page exists", Check: passedCheck(audit.CheckContactPage)},
			{Key: "title", Label: "Proper title tags", Check: passedCheck(audit.CheckTitlePresent)},
		},
	}
}

// Evaluate assigns the readiness tier for an audit. The reported percentage,
// counts and itemized requirement list always describe the featured set,
// whatever tier was achieved, so callers can show progress toward the
// higher bar.
func Evaluate(checks map[string]types.CheckResult, resolvedURL string, totalScore int) types.ReadinessReport {
	featured := Featured()
	results := make([]types.RequirementResult, 0, len(featured.Requirements))
	featuredPassed := 0
	for _, req := range featured.Requirements {
		ok := req.Check(checks, resolvedURL)
		if ok {
			featuredPassed++
		}
		results = append(results, types.RequirementResult{Key: req.Key, Label: req.Label, Passed: ok})
	}

	basic := Basic()
	basicPassed := 0
	for _, req := range basic.Requirements {
		if req.Check(checks, resolvedURL) {
			basicPassed++
		}
	}

	tier := types.TierNotReady
	switch {
	case totalScore >= featured.MinScore && featuredPassed == len(featured.Requirements):
		tier = types.TierFeatured
	case totalScore >= basic.MinScore && basicPassed == len(basic.Requirements):
		tier = types.TierBasic
	}

	percentage := int(math.Round(float64(featuredPassed) / float64(len(featured.Requirements)) * 100))

	return types.ReadinessReport{
		Tier:         tier,
		Percentage:   percentage,
		PassedCount:  featuredPassed,
		TotalCount:   len(featured.Requirements),
		Requirements: results,
	}
}
