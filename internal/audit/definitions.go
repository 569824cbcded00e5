// Package audit parses a page's HTML and scores it against a fixed rubric
// of local-business SEO checks.
package audit

import "github.com/ourgorithm/seo-audit/internal/types"

// Check keys. The set is closed: every audit produces exactly these checks.
const (
	CheckHTTPSEnabled    = "https_enabled"
	CheckCanonicalTags   = "canonical_tags"
	CheckIndexable       = "indexable"
	CheckJSONLDPresent   = "json_ld_present"
	CheckTitlePresent    = "title_present"
	CheckTitleLength     = "title_length"
	CheckMetaDescription = "meta_description"
	CheckH1Present       = "h1_present"
	CheckImageAlt        = "image_alt"
	CheckPhoneVisible    = "phone_visible"
	CheckContactPage     = "contact_page"
	CheckAboutPage       = "about_page"
	CheckServicesPage    = "services_page"
	CheckPrivacyPolicy   = "privacy_policy"
	CheckTerms           = "terms"
	CheckTestimonials    = "testimonials"
	CheckPortfolio       = "portfolio"
	CheckFacebook        = "facebook"
	CheckInstagram       = "instagram"
	CheckLinkedIn        = "linkedin"
	CheckYouTube         = "youtube"
	CheckTwitter         = "twitter"
)

// Definition is the static configuration of one check: scoring budget plus
// the plain-language explanation fields rendered in client reports. The
// table is process-wide constant and never mutated at runtime.
type Definition struct {
	Key            string
	Category       string
	MaxPoints      int
	Name           string
	WhatItMeans    string
	WhyItMatters   string
	FixTime        string
	FixDifficulty  string
	GoogleTimeline string
}

// CategoryInfo carries a category's display name and point budget.
type CategoryInfo struct {
	Key      string
	Name     string
	MaxScore int
}

// Categories returns the five scoring categories in display order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Key: types.CategoryTechnical, Name: "Technical SEO", MaxScore: 25},
		{Key: types.CategoryOnPage, Name: "On-Page SEO", MaxScore: 25},
		{Key: types.CategoryLocal, Name: "Local Presence", MaxScore: 25},
		{Key: types.CategoryTrust, Name: "Trust Signals", MaxScore: 15},
		{Key: types.CategorySocial, Name: "Social Presence", MaxScore: 10},
	}
}

var definitions = []Definition{
	{
		Key: CheckHTTPSEnabled, Category: types.CategoryTechnical, MaxPoints: 8,
		Name:           "Secure Connection (HTTPS)",
		WhatItMeans:    "Your website has a security certificate. Visitors see a padlock icon and browsers trust your site.",
		WhyItMatters:   "Without HTTPS, browsers show 'Not Secure' warnings. Visitors leave immediately, and Google ranks you lower.",
		FixTime:        "1-2 hours",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks to see ranking impact",
	},
	{
		Key: CheckCanonicalTags, Category: types.CategoryTechnical, MaxPoints: 5,
		Name:           "Canonical Tags",
		WhatItMeans:    "Your site tells Google which version of a page is the 'official' one.",
		WhyItMatters:   "Without this, Google might see duplicate pages and split your ranking power between them.",
		FixTime:        "1 hour",
		FixDifficulty:  "Easy",
		GoogleTimeline: "2-4 weeks",
	},
	{
		Key: CheckIndexable, Category: types.CategoryTechnical, MaxPoints: 6,
		Name:           "Page is Indexable",
		WhatItMeans:    "Google is ALLOWED to add this page to search results.",
		WhyItMatters:   "If blocked, your page literally cannot appear in Google searches. Invisible to customers.",
		FixTime:        "30 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks",
	},
	{
		Key: CheckJSONLDPresent, Category: types.CategoryTechnical, MaxPoints: 6,
		Name:           "Structured Data (Schema)",
		WhatItMeans:    "Your site speaks Google's language. It tells Google your business name, address, phone, hours, etc.",
		WhyItMatters:   "With schema, Google can show rich results: star ratings, business hours, click-to-call. Without it, you're just plain text.",
		FixTime:        "2-3 hours",
		FixDifficulty:  "Medium",
		GoogleTimeline: "2-4 weeks for rich results to appear",
	},
	{
		Key: CheckTitlePresent, Category: types.CategoryOnPage, MaxPoints: 7,
		Name:           "Title Tag",
		WhatItMeans:    "Your page has a headline that appears in Google search results and browser tabs.",
		WhyItMatters:   "This is the #1 thing people see in Google. No title = Google makes one up (usually badly).",
		FixTime:        "30 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks",
	},
	{
		Key: CheckTitleLength, Category: types.CategoryOnPage, MaxPoints: 3,
		Name:           "Title Length",
		WhatItMeans:    "Your title is the right length (50-60 characters) to display fully in Google.",
		WhyItMatters:   "Too long gets cut off with '...'. Too short wastes valuable keyword space.",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks",
	},
	{
		Key: CheckMetaDescription, Category: types.CategoryOnPage, MaxPoints: 5,
		Name:           "Meta Description",
		WhatItMeans:    "The 2-line summary that appears under your title in Google search results.",
		WhyItMatters:   "This is your sales pitch in Google. No description = Google picks random text from your page.",
		FixTime:        "30 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks",
	},
	{
		Key: CheckH1Present, Category: types.CategoryOnPage, MaxPoints: 6,
		Name:           "H1 Headline",
		WhatItMeans:    "Your page has a main headline that tells visitors (and Google) what the page is about.",
		WhyItMatters:   "Google uses the H1 to understand your page topic. No H1 = confused Google = worse rankings.",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks",
	},
	{
		Key: CheckImageAlt, Category: types.CategoryOnPage, MaxPoints: 4,
		Name:           "Image Alt Text",
		WhatItMeans:    "Your images have descriptions that Google can read (since Google can't 'see' images).",
		WhyItMatters:   "Helps with Google Image search, accessibility for blind users, and overall SEO.",
		FixTime:        "1-2 hours",
		FixDifficulty:  "Easy",
		GoogleTimeline: "2-4 weeks",
	},
	{
		Key: CheckPhoneVisible, Category: types.CategoryLocal, MaxPoints: 8,
		Name:           "Phone Number Visible",
		WhatItMeans:    "Visitors can easily find your phone number on the website.",
		WhyItMatters:   "If they can't find your number in 3 seconds, they call your competitor instead.",
		FixTime:        "30 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "Immediate for visitors",
	},
	{
		Key: CheckContactPage, Category: types.CategoryLocal, MaxPoints: 7,
		Name:           "Contact Page",
		WhatItMeans:    "You have a dedicated page where customers can reach you.",
		WhyItMatters:   "Standard expectation. Missing = looks unprofessional or abandoned.",
		FixTime:        "1-2 hours",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks for indexing",
	},
	{
		Key: CheckAboutPage, Category: types.CategoryLocal, MaxPoints: 5,
		Name:           "About Page",
		WhatItMeans:    "A page that tells your story, shows your team, builds trust.",
		WhyItMatters:   "People buy from people. No About page = faceless business = less trust.",
		FixTime:        "2-3 hours",
		FixDifficulty:  "Easy",
		GoogleTimeline: "1-2 weeks for indexing",
	},
	{
		Key: CheckServicesPage, Category: types.CategoryLocal, MaxPoints: 5,
		Name:           "Services Page",
		WhatItMeans:    "A clear page listing what you offer.",
		WhyItMatters:   "Customers need to know what you do. Also helps rank for service-related searches.",
		FixTime:        "2-4 hours",
		FixDifficulty:  "Medium",
		GoogleTimeline: "2-4 weeks",
	},
	{
		Key: CheckPrivacyPolicy, Category: types.CategoryTrust, MaxPoints: 4,
		Name:           "Privacy Policy",
		WhatItMeans:    "A legal page explaining how you handle customer data.",
		WhyItMatters:   "Required by law in most places. Missing = legal risk + looks unprofessional.",
		FixTime:        "1 hour",
		FixDifficulty:  "Easy (use template)",
		GoogleTimeline: "Not ranking-related",
	},
	{
		Key: CheckTerms, Category: types.CategoryTrust, MaxPoints: 3,
		Name:           "Terms of Service",
		WhatItMeans:    "Legal terms for using your website/services.",
		WhyItMatters:   "Protects your business legally. Expected by savvy customers.",
		FixTime:        "1 hour",
		FixDifficulty:  "Easy (use template)",
		GoogleTimeline: "Not ranking-related",
	},
	{
		Key: CheckTestimonials, Category: types.CategoryTrust, MaxPoints: 5,
		Name:           "Testimonials / Reviews",
		WhatItMeans:    "Real customer feedback displayed on your site.",
		WhyItMatters:   "THE #1 trust factor for local businesses. No reviews = 'Are they any good?'",
		FixTime:        "2-4 hours",
		FixDifficulty:  "Medium",
		GoogleTimeline: "Immediate for conversions",
	},
	{
		Key: CheckPortfolio, Category: types.CategoryTrust, MaxPoints: 3,
		Name:           "Portfolio / Work Examples",
		WhatItMeans:    "Photos or case studies of your actual work.",
		WhyItMatters:   "Proof you do what you say. Especially important for contractors, designers, etc.",
		FixTime:        "3-5 hours",
		FixDifficulty:  "Medium",
		GoogleTimeline: "2-4 weeks for image indexing",
	},
	{
		Key: CheckFacebook, Category: types.CategorySocial, MaxPoints: 2,
		Name:           "Facebook Link",
		WhatItMeans:    "Your website links to your Facebook business page.",
		WhyItMatters:   "Social proof + another way for customers to find and contact you.",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "Not ranking-related",
	},
	{
		Key: CheckInstagram, Category: types.CategorySocial, MaxPoints: 2,
		Name:           "Instagram Link",
		WhatItMeans:    "Your website links to your Instagram profile.",
		WhyItMatters:   "Important for visual businesses (restaurants, salons, contractors).",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "Not ranking-related",
	},
	{
		Key: CheckLinkedIn, Category: types.CategorySocial, MaxPoints: 2,
		Name:           "LinkedIn Link",
		WhatItMeans:    "Your website links to your LinkedIn profile.",
		WhyItMatters:   "Professional credibility, especially for B2B services.",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "Not ranking-related",
	},
	{
		Key: CheckYouTube, Category: types.CategorySocial, MaxPoints: 2,
		Name:           "YouTube Link",
		WhatItMeans:    "Your website links to your YouTube channel.",
		WhyItMatters:   "Video builds trust. If you have videos, show them off.",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "Not ranking-related",
	},
	{
		Key: CheckTwitter, Category: types.CategorySocial, MaxPoints: 2,
		Name:           "Twitter/X Link",
		WhatItMeans:    "Your website links to your Twitter profile.",
		WhyItMatters:   "Less important for local businesses, but adds legitimacy.",
		FixTime:        "15 minutes",
		FixDifficulty:  "Easy",
		GoogleTimeline: "Not ranking-related",
	},
}

// Definitions returns the check definitions in evaluation/display order.
func Definitions() []Definition {
	return definitions
}

// DefinitionsByKey returns the definitions keyed by check key.
func DefinitionsByKey() map[string]Definition {
	byKey := make(map[string]Definition, len(definitions))
	for _, def := range definitions {
		byKey[def.Key] = def
	}
	return byKey
}
