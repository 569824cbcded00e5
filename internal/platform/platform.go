// Package platform identifies the hosting platform behind a page's HTML.
package platform

import (
	"strings"

	"github.com/ourgorithm/seo-audit/internal/types"
)

// signature is one entry in the ordered detection table. A rule matches
// when any of its tokens appears in the lowercased HTML and none of its
// excludes does; match overrides token evaluation when set.
type signature struct {
	result   types.Platform
	tokens   []string
	excludes []string
	match    func(h string) bool
}

// signatures is evaluated top to bottom and the first match wins, so order
// encodes priority. Reordering entries silently changes classifications.
var signatures = []signature{
	{
		result: types.Platform{Name: "WordPress", Confidence: 95, Fixability: types.FixabilityFull, Note: "Full control - we can fix everything"},
		tokens: []string{"wp-content", "wp-includes", "wp-json", "wordpress", "/wp-", "woocommerce"},
	},
	{
		result: types.Platform{Name: "Wix", Confidence: 95, Fixability: types.FixabilityPartial, Note: "Some limitations - can optimize within constraints"},
		tokens: []string{"wix.com", "_wix_", "wixsite.com", "static.wixstatic.com", "wix-code"},
	},
	{
		result: types.Platform{Name: "Squarespace", Confidence: 95, Fixability: types.FixabilityPartial, Note: "Most fixes possible with some workarounds"},
		tokens: []string{"squarespace", "sqsp.net", "static1.squarespace", "squarespace-cdn"},
	},
	{
		result: types.Platform{Name: "Shopify", Confidence: 95, Fixability: types.FixabilityPartial, Note: "E-commerce focused - good SEO tools available"},
		tokens: []string{"shopify", "cdn.shopify", "myshopify.com", "shopifycdn"},
	},
	{
		result: types.Platform{Name: "Webflow", Confidence: 95, Fixability: types.FixabilityFull, Note: "Good control - clean implementation possible"},
		tokens: []string{"webflow", "website-files.com", "webflow.io", "w-nav", "w-slider"},
	},
	{
		result: types.Platform{Name: "GoDaddy", Confidence: 85, Fixability: types.FixabilityPartial, Note: "Basic builder - some limitations"},
		tokens: []string{"godaddy", "secureserver.net", "godaddysites", "mywebsite.godaddy", "ondigitalocean.app"},
	},
	{
		result: types.Platform{Name: "Weebly", Confidence: 95, Fixability: types.FixabilityPartial, Note: "Simple builder - basic SEO available"},
		tokens: []string{"weebly", "weeblycloud", "editmysite"},
	},
	{
		result: types.Platform{Name: "Duda", Confidence: 95, Fixability: types.FixabilityFull, Note: "Agency-friendly - good capabilities"},
		tokens: []string{"duda", "dudaone.com", "duda.co"},
	},
	{
		result: types.Platform{Name: "HubSpot", Confidence: 88, Fixability: types.FixabilityFull, Note: "Marketing platform - excellent tools"},
		tokens: []string{"hubspot", "hs-scripts.com", "hs-analytics", "hubspotusercontent", "hscollectedforms"},
	},
	{
		result: types.Platform{Name: "ClickFunnels", Confidence: 95, Fixability: types.FixabilityLimited, Note: "Funnel builder - not built for SEO"},
		tokens: []string{"clickfunnels", "cfimg.com", "cffastcdn"},
	},
	{
		result: types.Platform{Name: "Drupal", Confidence: 90, Fixability: types.FixabilityFull, Note: "Powerful CMS - full control available"},
		tokens: []string{"drupal", "/sites/default/files", "drupal.js", "/sites/all/"},
	},
	{
		result: types.Platform{Name: "Joomla", Confidence: 90, Fixability: types.FixabilityFull, Note: "Established CMS - full control available"},
		tokens: []string{"joomla", "/media/jui/", "/components/com_"},
	},
	{
		result: types.Platform{Name: "Ghost", Confidence: 90, Fixability: types.FixabilityFull, Note: "Modern blogging platform - clean code"},
		tokens: []string{"ghost.io", "ghost-url", `"ghost"`},
	},
	{
		result: types.Platform{Name: "Kajabi", Confidence: 95, Fixability: types.FixabilityLimited, Note: "Course platform - limited SEO options"},
		tokens: []string{"kajabi", "kajabi-cdn"},
	},
	{
		result: types.Platform{Name: "BigCommerce", Confidence: 95, Fixability: types.FixabilityPartial, Note: "E-commerce platform - solid SEO basics"},
		tokens: []string{"bigcommerce", "bigcommerce.com"},
	},
	{
		result: types.Platform{Name: "Framer", Confidence: 95, Fixability: types.FixabilityPartial, Note: "Design-focused - some SEO limitations"},
		tokens: []string{"framer", "framerusercontent", "framer.com"},
	},
	{
		result: types.Platform{Name: "Bubble", Confidence: 95, Fixability: types.FixabilityLimited, Note: "No-code app builder - SEO limitations"},
		tokens: []string{"bubble.io", "bblcdn.com"},
	},
	{
		result: types.Platform{Name: "Carrd", Confidence: 95, Fixability: types.FixabilityLimited, Note: "Simple one-page builder - very basic SEO"},
		tokens: []string{"carrd.co", "crd.co"},
	},
	{
		result: types.Platform{Name: "Jimdo", Confidence: 95, Fixability: types.FixabilityPartial, Note: "Simple builder - basic SEO available"},
		tokens: []string{"jimdo", "jimdocdn"},
	},
	{
		result: types.Platform{Name: "Leadpages", Confidence: 95, Fixability: types.FixabilityLimited, Note: "Landing page builder - limited SEO"},
		tokens: []string{"leadpages", "lpages.co"},
	},
	{
		result: types.Platform{Name: "Adobe Portfolio", Confidence: 90, Fixability: types.FixabilityLimited, Note: "Portfolio builder - basic SEO only"},
		tokens: []string{"format.com", "myportfolio.com", "adobe portfolio"},
	},
	{
		result: types.Platform{Name: "Blogger", Confidence: 95, Fixability: types.FixabilityPartial, Note: "Google blog platform - basic SEO"},
		tokens: []string{"blogger.com", "blogspot.com", "blogblog.com"},
	},
	{
		result: types.Platform{Name: "Cargo", Confidence: 95, Fixability: types.FixabilityLimited, Note: "Portfolio platform - limited SEO"},
		tokens: []string{"cargo.site", "cargocollective"},
	},
	{
		result: types.Platform{Name: "10Web", Confidence: 90, Fixability: types.FixabilityFull, Note: "WordPress-based AI builder - full control"},
		tokens: []string{"10web.io", "starter.starter"},
	},
	{
		result: types.Platform{Name: "WordPress + Elementor", Confidence: 95, Fixability: types.FixabilityFull, Note: "WordPress page builder - full control"},
		tokens: []string{"elementor", "elementor-kit"},
	},
	{
		result: types.Platform{Name: "WordPress + Divi", Confidence: 95, Fixability: types.FixabilityFull, Note: "WordPress page builder - full control"},
		tokens: []string{"divi", "et-builder", "elegantthemes"},
	},
	{
		result: types.Platform{Name: "Next.js (React)", Confidence: 85, Fixability: types.FixabilityFull, Note: "Modern framework - full control with developer"},
		tokens: []string{"_next/static", "__next", "next/head"},
	},
	{
		result: types.Platform{Name: "Gatsby", Confidence: 90, Fixability: types.FixabilityFull, Note: "Static site generator - fast & SEO-friendly"},
		tokens: []string{"gatsby", "___gatsby"},
	},
	{
		result: types.Platform{Name: "Hugo", Confidence: 85, Fixability: types.FixabilityFull, Note: "Static site generator - fast & lightweight"},
		tokens: []string{"hugo-", "powered by hugo"},
	},
	{
		result:   types.Platform{Name: "Custom (Bootstrap)", Confidence: 70, Fixability: types.FixabilityFull, Note: "Custom built - likely full control"},
		tokens:   []string{"bootstrap", "btn btn-"},
		excludes: []string{"wp-"},
	},
	{
		result: types.Platform{Name: "Custom Built", Confidence: 60, Fixability: types.FixabilityFull, Note: "Custom built - needs developer for changes"},
		match: func(h string) bool {
			return (strings.Contains(h, "jquery") && strings.Contains(h, "custom")) ||
				strings.Count(h, "jquery") > 2
		},
	},
	{
		result: types.Platform{Name: "Custom/Static", Confidence: 70, Fixability: types.FixabilityFull, Note: "Likely custom or static site - full control"},
		tokens: []string{"netlify", "vercel", "cloudflare pages", "github.io", "gitlab.io"},
	},
	{
		result: types.Platform{Name: "Unknown CMS", Confidence: 40, Fixability: types.FixabilityUnknown, Note: "Uses a CMS but cannot identify which one"},
		tokens: []string{"cms", "content-management"},
	},
}

// unknown is the fall-through result when nothing matches.
var unknown = types.Platform{
	Name:       "Custom/Unknown",
	Confidence: 30,
	Fixability: types.FixabilityUnknown,
	Note:       "Could not detect platform - may be custom built or behind protection",
}

// Classify returns the hosting platform detected in the HTML. Pure and
// deterministic: identical input always yields the identical result.
func Classify(html string) types.Platform {
	h := strings.ToLower(html)
	for _, sig := range signatures {
		if sig.matches(h) {
			return sig.result
		}
	}
	return unknown
}

func (s *signature) matches(h string) bool {
	if s.match != nil {
		return s.match(h)
	}
	for _, ex := range s.excludes {
		if strings.Contains(h, ex) {
			return false
		}
	}
	for _, tok := range s.tokens {
		if strings.Contains(h, tok) {
			return true
		}
	}
	return false
}
