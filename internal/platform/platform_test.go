package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ourgorithm/seo-audit/internal/types"
)

func TestClassify_WordPress(t *testing.T) {
	html := `<html><head><link rel="stylesheet" href="/wp-content/themes/acme/style.css"></head></html>`
	p := Classify(html)
	assert.Equal(t, "WordPress", p.Name)
	assert.Equal(t, 95, p.Confidence)
	assert.Equal(t, types.FixabilityFull, p.Fixability)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	p := Classify(`<script src="/WP-CONTENT/plugins/seo.js"></script>`)
	assert.Equal(t, "WordPress", p.Name)
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Elementor sites are still WordPress sites; the generic WordPress rule
	// sits earlier in the table and must win.
	html := `<div class="elementor-kit"><link href="/wp-content/uploads/site.css"></div>`
	p := Classify(html)
	assert.Equal(t, "WordPress", p.Name)
}

func TestClassify_ElementorWithoutWordPressTokens(t *testing.T) {
	p := Classify(`<div class="elementor-kit-5"></div>`)
	assert.Equal(t, "WordPress + Elementor", p.Name)
}

func TestClassify_KnownBuilders(t *testing.T) {
	tests := []struct {
		html     string
		expected string
	}{
		{`<img src="https://static.wixstatic.com/media/logo.png">`, "Wix"},
		{`<link href="https://static1.squarespace.com/static/site.css">`, "Squarespace"},
		{`<script src="https://cdn.shopify.com/s/files/theme.js"></script>`, "Shopify"},
		{`<div class="w-nav"></div>`, "Webflow"},
		{`<script src="https://img1.secureserver.net/t.js"></script>`, "GoDaddy"},
		{`<script src="/sites/default/files/js/drupal.js"></script>`, "Drupal"},
		{`<script src="/media/jui/js/jquery.min.js"></script>`, "Joomla"},
		{`<script src="https://kajabi-cdn.com/assets/app.js"></script>`, "Kajabi"},
		{`<script src="/_next/static/chunks/main.js"></script>`, "Next.js (React)"},
		{`<div id="___gatsby"></div>`, "Gatsby"},
		{`<meta name="generator" content="powered by hugo">`, "Hugo"},
		{`<a href="https://acme.netlify.app">deploys</a>`, "Custom/Static"},
	}

	for _, tt := range tests {
		p := Classify(tt.html)
		assert.Equal(t, tt.expected, p.Name, "html %q", tt.html)
	}
}

func TestClassify_BootstrapExcludedByWordPressMarkers(t *testing.T) {
	// Bootstrap inside a WordPress theme should not classify as custom.
	html := `<link href="/wp-content/themes/acme/bootstrap.css">`
	p := Classify(html)
	assert.Equal(t, "WordPress", p.Name)

	p = Classify(`<button class="btn btn-primary">Go</button>`)
	assert.Equal(t, "Custom (Bootstrap)", p.Name)
	assert.Equal(t, 70, p.Confidence)
}

func TestClassify_CustomBuiltHeuristic(t *testing.T) {
	p := Classify(`<script src="/js/jquery.min.js"></script><script src="/js/custom.js"></script>`)
	assert.Equal(t, "Custom Built", p.Name)
	assert.Equal(t, 60, p.Confidence)

	// Three jquery references alone also qualify.
	p = Classify(`<script src="jquery.js"></script><script src="jquery-ui.js"></script><script src="jquery.validate.js"></script>`)
	assert.Equal(t, "Custom Built", p.Name)
}

func TestClassify_Unknown(t *testing.T) {
	p := Classify(`<html><body><h1>Hello</h1></body></html>`)
	assert.Equal(t, "Custom/Unknown", p.Name)
	assert.Equal(t, 30, p.Confidence)
	assert.Equal(t, types.FixabilityUnknown, p.Fixability)
}

func TestClassify_Deterministic(t *testing.T) {
	html := `<div class="elementor"><link href="/wp-content/site.css"><script src="jquery.js"></script></div>`
	first := Classify(html)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(html))
	}
}
