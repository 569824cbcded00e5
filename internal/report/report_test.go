package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourgorithm/seo-audit/internal/audit"
	"github.com/ourgorithm/seo-audit/internal/types"
)

func sampleResult() *types.AuditResult {
	checks := map[string]types.CheckResult{
		audit.CheckHTTPSEnabled:  {Key: audit.CheckHTTPSEnabled, Passed: true, Category: types.CategoryTechnical, Points: 8, MaxPoints: 8},
		audit.CheckCanonicalTags: {Key: audit.CheckCanonicalTags, Passed: false, Category: types.CategoryTechnical, MaxPoints: 5},
		audit.CheckTitlePresent:  {Key: audit.CheckTitlePresent, Passed: true, Category: types.CategoryOnPage, Points: 7, MaxPoints: 7},
	}
	return &types.AuditResult{
		Domain:      "acmeplumbing.com",
		ResolvedURL: "https://acmeplumbing.com",
		Platform:    types.Platform{Name: "WordPress", Confidence: 95, Note: "Full control - we can fix everything"},
		Checks:      checks,
		Categories: map[string]types.CategoryResult{
			types.CategoryTechnical: {
				Name: "Technical SEO", Score: 8, MaxScore: 25,
				Checks: []types.CheckResult{checks[audit.CheckHTTPSEnabled], checks[audit.CheckCanonicalTags]},
			},
			types.CategoryOnPage: {
				Name: "On-Page SEO", Score: 7, MaxScore: 25,
				Checks: []types.CheckResult{checks[audit.CheckTitlePresent]},
			},
		},
		TotalScore: 15,
		MaxScore:   100,
		Readiness: types.ReadinessReport{
			Tier:        types.TierNotReady,
			Percentage:  25,
			PassedCount: 2,
			TotalCount:  8,
			Requirements: []types.RequirementResult{
				{Key: "https", Label: "HTTPS enabled", Passed: true},
				{Key: "phone", Label: "Phone visible on site", Passed: false},
			},
		},
		AuditDate: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	site := &types.Site{
		Domain:       "acmeplumbing.com",
		BusinessName: "Acme Plumbing",
		Address:      "12 Main St",
		Phone:        "(555) 123-4567",
	}

	html, err := Render(site, sampleResult(), types.Branding{CompanyName: "Digital North", PrimaryColor: "#123456"})
	require.NoError(t, err)

	assert.Contains(t, html, "Digital North")
	assert.Contains(t, html, "#123456")
	assert.Contains(t, html, "Acme Plumbing")
	assert.Contains(t, html, "acmeplumbing.com")
	assert.Contains(t, html, "WordPress")
	assert.Contains(t, html, "March 14, 2026")
	assert.Contains(t, html, "Not Ready")
	assert.Contains(t, html, "Technical SEO")
	// Check names come from the explanation table, not raw keys.
	assert.Contains(t, html, "Secure Connection (HTTPS)")
	assert.NotContains(t, html, "https_enabled")
}

func TestRender_NilAuditUsesSafeDefaults(t *testing.T) {
	site := &types.Site{Domain: "acme.com"}

	html, err := Render(site, nil, types.Branding{})
	require.NoError(t, err)

	assert.Contains(t, html, DefaultBranding.CompanyName)
	assert.Contains(t, html, "acme.com")
	assert.Contains(t, html, "Unknown")
	assert.Contains(t, html, "Not Ready")
	assert.Contains(t, html, "Detailed breakdown not available")
}

func TestRender_NilSite(t *testing.T) {
	html, err := Render(nil, nil, types.Branding{})
	require.NoError(t, err)
	assert.NotEmpty(t, html)
}

func TestRender_EscapesUntrustedContent(t *testing.T) {
	site := &types.Site{Domain: "acme.com", BusinessName: `<script>alert("x")</script>`}

	html, err := Render(site, nil, types.Branding{})
	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestResultFromRecord(t *testing.T) {
	site := &types.Site{Domain: "acme.com", URL: "https://acme.com"}
	rec := &types.AuditRecord{
		TotalScore:         77,
		PlatformDetected:   "WordPress",
		PlatformConfidence: 0.95,
		DirectoryReadiness: types.TierBasic,
		Categories: map[string]types.CategoryResult{
			types.CategoryTechnical: {
				Name: "Technical SEO", Score: 25, MaxScore: 25,
				Checks: []types.CheckResult{
					{Key: audit.CheckHTTPSEnabled, Passed: true, Points: 8, MaxPoints: 8},
				},
			},
		},
		CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}

	result := ResultFromRecord(site, rec)
	require.NotNil(t, result)
	assert.Equal(t, "acme.com", result.Domain)
	assert.Equal(t, 77, result.TotalScore)
	assert.Equal(t, "WordPress", result.Platform.Name)
	assert.Equal(t, 95, result.Platform.Confidence)
	assert.Equal(t, rec.CreatedAt, result.AuditDate)
	assert.Len(t, result.Readiness.Requirements, 8)
}

func TestResultFromRecord_Nil(t *testing.T) {
	assert.Nil(t, ResultFromRecord(&types.Site{}, nil))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	site := &types.Site{Domain: "acme.com"}

	err := WriteFile(path, site, sampleResult(), types.Branding{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "acme.com")
}

func TestFileName(t *testing.T) {
	name := FileName("acme.com")
	assert.Contains(t, name, "seo-report-acme.com-")
	assert.Contains(t, name, ".html")
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, "Excellent", bandFor(80).Label)
	assert.Equal(t, "Good", bandFor(60).Label)
	assert.Equal(t, "Needs Work", bandFor(40).Label)
	assert.Equal(t, "Poor", bandFor(20).Label)
	assert.Equal(t, "Critical", bandFor(19).Label)
}
