package audit

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/ourgorithm/seo-audit/internal/types"
)

// Error represents a failure to evaluate a page.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("audit error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("audit error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Result holds the scored checks for one page.
type Result struct {
	Checks     map[string]types.CheckResult
	Categories map[string]types.CategoryResult
	TotalScore int
	MaxScore   int
	// HasLocalBusinessSchema reports a parseable JSON-LD block declaring a
	// LocalBusiness or Organization type. Informational, not scored.
	HasLocalBusinessSchema bool
}

var phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)

// pageFacts are the raw observations extracted from the document before
// any points are assigned.
type pageFacts struct {
	title            string
	metaDescription  string
	h1s              []string
	hasCanonical     bool
	indexable        bool
	hasJSONLD        bool
	hasLocalBusiness bool
	imageCount       int
	imagesMissingAlt int
	phones           []string
	linkTexts        []string
	linkHrefs        []string
	social           map[string]string
}

// Run parses the HTML and computes every check in the rubric against it.
// The resolved URL supplies the scheme for the HTTPS check.
func Run(html, resolvedURL string) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Message: "failed to parse HTML", Cause: err}
	}

	facts := inspect(doc)
	checks := scoreChecks(facts, resolvedURL)

	categories := make(map[string]types.CategoryResult, len(Categories()))
	for _, info := range Categories() {
		categories[info.Key] = types.CategoryResult{Name: info.Name, MaxScore: info.MaxScore}
	}
	total := 0
	for _, def := range Definitions() {
		check := checks[def.Key]
		cat := categories[def.Category]
		cat.Score += check.Points
		cat.Checks = append(cat.Checks, check)
		categories[def.Category] = cat
		total += check.Points
	}

	return &Result{
		Checks:                 checks,
		Categories:             categories,
		TotalScore:             total,
		MaxScore:               100,
		HasLocalBusinessSchema: facts.hasLocalBusiness,
	}, nil
}

func inspect(doc *goquery.Document) pageFacts {
	facts := pageFacts{indexable: true}

	facts.title = strings.TrimSpace(doc.Find("title").First().Text())
	facts.metaDescription = doc.Find(`meta[name="description"]`).First().AttrOr("content", "")
	facts.hasCanonical = doc.Find(`link[rel="canonical"]`).Length() > 0

	robots := doc.Find(`meta[name="robots"]`).First().AttrOr("content", "")
	facts.indexable = !strings.Contains(strings.ToLower(robots), "noindex")

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			facts.h1s = append(facts.h1s, text)
		}
	})

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		facts.imageCount++
		if alt, ok := s.Attr("alt"); !ok || alt == "" {
			facts.imagesMissingAlt++
		}
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		facts.hasJSONLD = true
		// Malformed blocks still count as present; the parse only feeds
		// the informational LocalBusiness flag.
		var data map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}
		if declaresLocalBusiness(data["@type"]) {
			facts.hasLocalBusiness = true
		}
	})

	bodyText := doc.Find("body").Text()
	facts.phones = uniquePhones(phoneRe.FindAllString(bodyText, -1))

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		facts.linkTexts = append(facts.linkTexts, strings.ToLower(s.Text()))
		facts.linkHrefs = append(facts.linkHrefs, s.AttrOr("href", ""))
	})
	facts.social = detectSocialLinks(facts.linkHrefs)

	return facts
}

func declaresLocalBusiness(typeField any) bool {
	switch v := typeField.(type) {
	case string:
		return strings.Contains(v, "LocalBusiness") || strings.Contains(v, "Organization")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && (strings.Contains(s, "LocalBusiness") || strings.Contains(s, "Organization")) {
				return true
			}
		}
	}
	return false
}

func uniquePhones(matches []string) []string {
	seen := make(map[string]bool, len(matches))
	var phones []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			phones = append(phones, m)
		}
	}
	return phones
}

// hasKeywordLink reports whether any link's visible text or href contains
// one of the keywords.
func (f *pageFacts) hasKeywordLink(keywords ...string) bool {
	for i := range f.linkTexts {
		for _, kw := range keywords {
			if strings.Contains(f.linkTexts[i], kw) || strings.Contains(f.linkHrefs[i], kw) {
				return true
			}
		}
	}
	return false
}

func scoreChecks(facts pageFacts, resolvedURL string) map[string]types.CheckResult {
	checks := make(map[string]types.CheckResult, len(definitions))

	boolCheck := func(key string, passed bool, value string) {
		def := checkDef(key)
		points := 0
		if passed {
			points = def.MaxPoints
		}
		checks[key] = types.CheckResult{
			Key:       key,
			Passed:    passed,
			Category:  def.Category,
			Points:    points,
			MaxPoints: def.MaxPoints,
			Value:     value,
		}
	}

	// Technical
	isHTTPS := strings.HasPrefix(resolvedURL, "https://")
	boolCheck(CheckHTTPSEnabled, isHTTPS, "")
	boolCheck(CheckCanonicalTags, facts.hasCanonical, "")
	boolCheck(CheckIndexable, facts.indexable, "")
	boolCheck(CheckJSONLDPresent, facts.hasJSONLD, "")

	// On-page
	boolCheck(CheckTitlePresent, facts.title != "", facts.title)

	titleLen := utf8.RuneCountInString(facts.title)
	titleOK := titleLen >= 30 && titleLen <= 60
	titlePoints := 1
	if titleOK {
		titlePoints = 3
	}
	checks[CheckTitleLength] = types.CheckResult{
		Key: CheckTitleLength, Passed: titleOK, Category: types.CategoryOnPage,
		Points: titlePoints, MaxPoints: 3,
		Value: fmt.Sprintf("%d chars", titleLen),
	}

	boolCheck(CheckMetaDescription, facts.metaDescription != "", snippet(facts.metaDescription, 50))

	firstH1 := ""
	if len(facts.h1s) > 0 {
		firstH1 = facts.h1s[0]
	}
	boolCheck(CheckH1Present, len(facts.h1s) > 0, firstH1)

	altPoints := 0
	switch {
	case facts.imagesMissingAlt == 0:
		altPoints = 4
	case facts.imagesMissingAlt < 3:
		altPoints = 2
	}
	checks[CheckImageAlt] = types.CheckResult{
		Key: CheckImageAlt, Passed: facts.imagesMissingAlt == 0, Category: types.CategoryOnPage,
		Points: altPoints, MaxPoints: 4,
		Value: fmt.Sprintf("%d/%d", facts.imageCount-facts.imagesMissingAlt, facts.imageCount),
	}

	// Local presence
	firstPhone := ""
	if len(facts.phones) > 0 {
		firstPhone = facts.phones[0]
	}
	boolCheck(CheckPhoneVisible, len(facts.phones) > 0, firstPhone)
	boolCheck(CheckContactPage, facts.hasKeywordLink("contact"), "")
	boolCheck(CheckAboutPage, facts.hasKeywordLink("about"), "")
	boolCheck(CheckServicesPage, facts.hasKeywordLink("service"), "")

	// Trust signals
	boolCheck(CheckPrivacyPolicy, facts.hasKeywordLink("privacy"), "")
	boolCheck(CheckTerms, facts.hasKeywordLink("terms"), "")
	boolCheck(CheckTestimonials, facts.hasKeywordLink("testimonial", "review"), "")
	boolCheck(CheckPortfolio, facts.hasKeywordLink("portfolio", "gallery", "work"), "")

	// Social
	for _, key := range []string{CheckFacebook, CheckInstagram, CheckLinkedIn, CheckYouTube, CheckTwitter} {
		url, found := facts.social[key]
		value := "Not found"
		if found {
			value = url
		}
		boolCheck(key, found, value)
	}

	return checks
}

func checkDef(key string) Definition {
	for _, def := range definitions {
		if def.Key == key {
			return def
		}
	}
	return Definition{Key: key}
}

func snippet(s string, max int) string {
	if s == "" {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
