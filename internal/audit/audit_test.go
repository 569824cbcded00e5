package audit

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourgorithm/seo-audit/internal/types"
)

const perfectPage = `<!DOCTYPE html>
<html>
<head>
<title>Acme Plumbing | Emergency Plumber in Springfield</title>
<meta name="description" content="24/7 emergency plumbing services in Springfield. Licensed, insured, trusted since 1995.">
<link rel="canonical" href="https://acmeplumbing.com/">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"LocalBusiness","name":"Acme Plumbing"}</script>
</head>
<body>
<h1>Springfield's Trusted Plumbers</h1>
<img src="/van.jpg" alt="Acme Plumbing service van">
<img src="/team.jpg" alt="Our team">
<p>Call us anytime: (555) 123-4567</p>
<nav>
<a href="/contact">Contact Us</a>
<a href="/about">About</a>
<a href="/services">Services</a>
<a href="/privacy">Privacy Policy</a>
<a href="/terms">Terms of Service</a>
<a href="/reviews">Customer Reviews</a>
<a href="/portfolio">Our Work</a>
</nav>
<footer>
<a href="https://facebook.com/acmeplumbing">Facebook</a>
<a href="https://instagram.com/acmeplumbing">Instagram</a>
<a href="https://linkedin.com/company/acme-plumbing">LinkedIn</a>
<a href="https://youtube.com/@acmeplumbing">YouTube</a>
<a href="https://twitter.com/acmeplumbing">Twitter</a>
</footer>
</body>
</html>`

func TestRun_PerfectPage(t *testing.T) {
	result, err := Run(perfectPage, "https://acmeplumbing.com")
	require.NoError(t, err)

	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, 100, result.MaxScore)
	assert.True(t, result.HasLocalBusinessSchema)

	for key, cat := range result.Categories {
		assert.Equal(t, cat.MaxScore, cat.Score, "category %s", key)
	}
	for key, check := range result.Checks {
		assert.True(t, check.Passed, "check %s", key)
	}
}

func TestRun_EmptyPage(t *testing.T) {
	result, err := Run("<html><body></body></html>", "https://example.com")
	require.NoError(t, err)

	// HTTPS, indexable, the 1-point title-length floor and the vacuous
	// image-alt pass are all a blank page earns.
	assert.Equal(t, 19, result.TotalScore)
	assert.False(t, result.Checks[CheckTitlePresent].Passed)
	assert.False(t, result.Checks[CheckTitleLength].Passed)
	assert.Equal(t, 1, result.Checks[CheckTitleLength].Points)
	assert.True(t, result.Checks[CheckImageAlt].Passed)
	assert.Equal(t, 4, result.Checks[CheckImageAlt].Points)
	assert.False(t, result.HasLocalBusinessSchema)
}

func TestRun_ChecksSetIsClosed(t *testing.T) {
	blank, err := Run("<html></html>", "http://example.com")
	require.NoError(t, err)
	full, err := Run(perfectPage, "https://acmeplumbing.com")
	require.NoError(t, err)

	assert.Len(t, blank.Checks, 22)
	assert.Len(t, full.Checks, 22)
	for key := range full.Checks {
		_, ok := blank.Checks[key]
		assert.True(t, ok, "check %s missing from blank page", key)
	}
}

func TestRun_ScoreInvariants(t *testing.T) {
	pages := []string{"<html></html>", perfectPage, "<html><body><h1>Hi</h1><img src=a.png></body></html>"}
	for _, page := range pages {
		result, err := Run(page, "https://example.com")
		require.NoError(t, err)

		sum := 0
		for key, cat := range result.Categories {
			catSum := 0
			for _, check := range cat.Checks {
				catSum += check.Points
			}
			assert.Equal(t, cat.Score, catSum, "category %s score mismatch", key)
			assert.LessOrEqual(t, cat.Score, cat.MaxScore, "category %s exceeds max", key)
			sum += cat.Score
		}
		assert.Equal(t, result.TotalScore, sum)
		assert.GreaterOrEqual(t, result.TotalScore, 0)
		assert.LessOrEqual(t, result.TotalScore, 100)
	}
}

func TestRun_HTTPSFailsOnPlainScheme(t *testing.T) {
	result, err := Run(perfectPage, "http://acmeplumbing.com")
	require.NoError(t, err)

	assert.False(t, result.Checks[CheckHTTPSEnabled].Passed)
	assert.Equal(t, 0, result.Checks[CheckHTTPSEnabled].Points)
	assert.Equal(t, 92, result.TotalScore)
}

func TestRun_TitleLengthTiering(t *testing.T) {
	page := func(title string) string {
		return fmt.Sprintf("<html><head><title>%s</title></head><body></body></html>", title)
	}

	// In range earns full points.
	result, err := Run(page(strings.Repeat("a", 45)), "https://example.com")
	require.NoError(t, err)
	assert.True(t, result.Checks[CheckTitleLength].Passed)
	assert.Equal(t, 3, result.Checks[CheckTitleLength].Points)
	assert.Equal(t, "45 chars", result.Checks[CheckTitleLength].Value)

	// Too short still earns the floor point.
	result, err = Run(page(strings.Repeat("a", 20)), "https://example.com")
	require.NoError(t, err)
	assert.False(t, result.Checks[CheckTitleLength].Passed)
	assert.Equal(t, 1, result.Checks[CheckTitleLength].Points)

	// Boundary values are inclusive.
	for _, n := range []int{30, 60} {
		result, err = Run(page(strings.Repeat("a", n)), "https://example.com")
		require.NoError(t, err)
		assert.True(t, result.Checks[CheckTitleLength].Passed, "length %d", n)
	}
	for _, n := range []int{29, 61} {
		result, err = Run(page(strings.Repeat("a", n)), "https://example.com")
		require.NoError(t, err)
		assert.False(t, result.Checks[CheckTitleLength].Passed, "length %d", n)
	}

	// Length is measured in characters, not bytes: 35 two-byte runes are
	// 70 bytes but still in range.
	result, err = Run(page(strings.Repeat("é", 35)), "https://example.com")
	require.NoError(t, err)
	assert.True(t, result.Checks[CheckTitleLength].Passed)
	assert.Equal(t, 3, result.Checks[CheckTitleLength].Points)
	assert.Equal(t, "35 chars", result.Checks[CheckTitleLength].Value)
}

func TestRun_ImageAltTiers(t *testing.T) {
	page := func(imgs string) string {
		return "<html><body>" + imgs + "</body></html>"
	}

	result, err := Run(page(`<img src=a alt="a"><img src=b alt="b">`), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Checks[CheckImageAlt].Points)
	assert.True(t, result.Checks[CheckImageAlt].Passed)

	// One or two missing keeps partial credit.
	result, err = Run(page(`<img src=a alt="a"><img src=b><img src=c alt="">`), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Checks[CheckImageAlt].Points)
	assert.False(t, result.Checks[CheckImageAlt].Passed)
	assert.Equal(t, "1/3", result.Checks[CheckImageAlt].Value)

	result, err = Run(page(`<img src=a><img src=b><img src=c>`), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Checks[CheckImageAlt].Points)
}

func TestRun_NoindexBlocksIndexableCheck(t *testing.T) {
	page := `<html><head><meta name="robots" content="NOINDEX, nofollow"></head><body></body></html>`
	result, err := Run(page, "https://example.com")
	require.NoError(t, err)
	assert.False(t, result.Checks[CheckIndexable].Passed)
}

func TestRun_MalformedJSONLDStillCountsAsPresent(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{not json</script></head><body></body></html>`
	result, err := Run(page, "https://example.com")
	require.NoError(t, err)

	assert.True(t, result.Checks[CheckJSONLDPresent].Passed)
	assert.False(t, result.HasLocalBusinessSchema)
}

func TestRun_LocalBusinessTypeArray(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{"@type":["Thing","LocalBusiness"]}</script></head><body></body></html>`
	result, err := Run(page, "https://example.com")
	require.NoError(t, err)
	assert.True(t, result.HasLocalBusinessSchema)
}

func TestRun_PhoneDetection(t *testing.T) {
	tests := []struct {
		body     string
		detected bool
	}{
		{"Call (555) 123-4567 today", true},
		{"Call 555-123-4567 today", true},
		{"Call +1 555 123 4567 today", true},
		{"Call 555.123.4567 today", true},
		{"No phone here", false},
	}

	for _, tt := range tests {
		result, err := Run("<html><body><p>"+tt.body+"</p></body></html>", "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, tt.detected, result.Checks[CheckPhoneVisible].Passed, "body %q", tt.body)
		if tt.detected {
			assert.NotEmpty(t, result.Checks[CheckPhoneVisible].Value)
		}
	}
}

func TestRun_KeywordLinksMatchTextOrHref(t *testing.T) {
	// "Get in touch" text with a /contact href still counts.
	page := `<html><body><a href="/contact">Get in touch</a><a href="/our-story">About Our Company</a></body></html>`
	result, err := Run(page, "https://example.com")
	require.NoError(t, err)

	assert.True(t, result.Checks[CheckContactPage].Passed)
	assert.True(t, result.Checks[CheckAboutPage].Passed)
	assert.False(t, result.Checks[CheckServicesPage].Passed)
}

func TestRun_InvalidHTMLDoesNotError(t *testing.T) {
	// The HTML5 parser is forgiving; even garbage yields a document.
	result, err := Run("<<<<not html at all", "https://example.com")
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestDefinitions_BudgetsMatchCategories(t *testing.T) {
	totals := make(map[string]int)
	for _, def := range Definitions() {
		totals[def.Category] += def.MaxPoints
	}

	grand := 0
	for _, info := range Categories() {
		assert.Equal(t, info.MaxScore, totals[info.Key], "category %s", info.Key)
		grand += info.MaxScore
	}
	assert.Equal(t, 100, grand)
}

func TestDefinitions_ExplanationsComplete(t *testing.T) {
	for _, def := range Definitions() {
		assert.NotEmpty(t, def.Name, "check %s", def.Key)
		assert.NotEmpty(t, def.WhatItMeans, "check %s", def.Key)
		assert.NotEmpty(t, def.FixTime, "check %s", def.Key)
	}

	byKey := DefinitionsByKey()
	assert.Len(t, byKey, 22)
	assert.Equal(t, types.CategoryTechnical, byKey[CheckHTTPSEnabled].Category)
}
