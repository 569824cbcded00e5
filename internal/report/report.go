// Package report renders branded, printable HTML audit reports.
package report

import (
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/ourgorithm/seo-audit/internal/audit"
	"github.com/ourgorithm/seo-audit/internal/readiness"
	"github.com/ourgorithm/seo-audit/internal/types"
)

// RenderError represents an error during report generation.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("report error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// DefaultBranding is used when the caller supplies no branding.
var DefaultBranding = types.Branding{
	CompanyName:  "Ourgorithm",
	PrimaryColor: "#2d3748",
}

// scoreBand maps a 0-100 score to a badge color and label.
type scoreBand struct {
	Background template.CSS
	Text       template.CSS
	Label      string
}

func bandFor(score int) scoreBand {
	switch {
	case score >= 80:
		return scoreBand{"#059669", "#ffffff", "Excellent"}
	case score >= 60:
		return scoreBand{"#84cc16", "#1a1a1a", "Good"}
	case score >= 40:
		return scoreBand{"#eab308", "#1a1a1a", "Needs Work"}
	case score >= 20:
		return scoreBand{"#f97316", "#ffffff", "Poor"}
	default:
		return scoreBand{"#dc2626", "#ffffff", "Critical"}
	}
}

func tierColor(tier types.ReadinessTier) template.CSS {
	switch tier {
	case types.TierFeatured:
		return "#059669"
	case types.TierBasic:
		return "#2563eb"
	default:
		return "#ea580c"
	}
}

func tierLabel(tier types.ReadinessTier) string {
	switch tier {
	case types.TierFeatured:
		return "Featured Ready"
	case types.TierBasic:
		return "Basic Ready"
	default:
		return "Not Ready"
	}
}

type checkView struct {
	Passed      bool
	Name        string
	WhatItMeans string
	FixTime     string
}

type categoryView struct {
	Name     string
	Score    int
	MaxScore int
	Band     scoreBand
	Checks   []checkView
}

type templateData struct {
	CompanyName  string
	PrimaryColor template.CSS
	LogoURL      string

	Domain       string
	BusinessName string
	Address      string
	Phone        string
	AuditDate    string

	PlatformName string
	PlatformNote string

	TotalScore int
	ScoreBand  scoreBand

	Tier         string
	TierColor    template.CSS
	Percentage   int
	PassedCount  int
	TotalCount   int
	Requirements []types.RequirementResult

	Categories   []categoryView
	HasBreakdown bool
}

// Render produces the standalone HTML report for a site's audit. Missing
// audit data degrades to safe defaults (zero score, Unknown platform, empty
// requirement list) instead of failing the render.
func Render(site *types.Site, result *types.AuditResult, branding types.Branding) (string, error) {
	data := buildTemplateData(site, result, branding)
	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", &RenderError{Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

func buildTemplateData(site *types.Site, result *types.AuditResult, branding types.Branding) templateData {
	if branding.CompanyName == "" {
		branding.CompanyName = DefaultBranding.CompanyName
	}
	if branding.PrimaryColor == "" {
		branding.PrimaryColor = DefaultBranding.PrimaryColor
	}

	data := templateData{
		CompanyName:  branding.CompanyName,
		PrimaryColor: template.CSS(branding.PrimaryColor),
		LogoURL:      branding.LogoURL,
		AuditDate:    time.Now().Format("January 2, 2006"),
		PlatformName: "Unknown",
		Tier:         tierLabel(types.TierNotReady),
		TierColor:    tierColor(types.TierNotReady),
		TotalCount:   8,
	}

	if site != nil {
		data.Domain = site.Domain
		data.BusinessName = site.BusinessName
		data.Address = site.Address
		data.Phone = site.Phone
	}
	if data.BusinessName == "" {
		data.BusinessName = data.Domain
	}

	data.ScoreBand = bandFor(0)
	if result == nil {
		return data
	}

	if !result.AuditDate.IsZero() {
		data.AuditDate = result.AuditDate.Format("January 2, 2006")
	}
	if result.Platform.Name != "" {
		data.PlatformName = result.Platform.Name
		data.PlatformNote = result.Platform.Note
	}
	data.TotalScore = result.TotalScore
	data.ScoreBand = bandFor(result.TotalScore)

	data.Tier = tierLabel(result.Readiness.Tier)
	data.TierColor = tierColor(result.Readiness.Tier)
	data.Percentage = result.Readiness.Percentage
	data.PassedCount = result.Readiness.PassedCount
	if result.Readiness.TotalCount > 0 {
		data.TotalCount = result.Readiness.TotalCount
	}
	data.Requirements = result.Readiness.Requirements

	explanations := audit.DefinitionsByKey()
	for _, key := range types.CategoryOrder() {
		cat, ok := result.Categories[key]
		if !ok {
			continue
		}
		view := categoryView{
			Name:     cat.Name,
			Score:    cat.Score,
			MaxScore: cat.MaxScore,
		}
		if cat.MaxScore > 0 {
			view.Band = bandFor(cat.Score * 100 / cat.MaxScore)
		}
		for _, check := range cat.Checks {
			cv := checkView{Passed: check.Passed, Name: check.Key}
			if def, ok := explanations[check.Key]; ok {
				cv.Name = def.Name
				cv.WhatItMeans = def.WhatItMeans
				cv.FixTime = def.FixTime
			}
			view.Checks = append(view.Checks, cv)
		}
		data.Categories = append(data.Categories, view)
	}
	data.HasBreakdown = len(data.Categories) > 0

	return data
}

// ResultFromRecord rebuilds a renderable audit result from a persisted
// record. Returns nil for a nil record so Render falls back to its safe
// defaults.
func ResultFromRecord(site *types.Site, rec *types.AuditRecord) *types.AuditResult {
	if rec == nil {
		return nil
	}

	checks := make(map[string]types.CheckResult)
	for _, cat := range rec.Categories {
		for _, check := range cat.Checks {
			checks[check.Key] = check
		}
	}

	result := &types.AuditResult{
		Platform: types.Platform{
			Name:       rec.PlatformDetected,
			Confidence: int(rec.PlatformConfidence * 100),
		},
		Checks:     checks,
		Categories: rec.Categories,
		TotalScore: rec.TotalScore,
		MaxScore:   100,
		AuditDate:  rec.CreatedAt,
		Readiness:  types.ReadinessReport{Tier: rec.DirectoryReadiness},
	}
	if site != nil {
		result.Domain = site.Domain
		result.ResolvedURL = site.URL
	}
	// Records persisted before per-check detail was stored keep their
	// recorded tier but render without a requirement breakdown.
	if len(checks) > 0 {
		result.Readiness = readiness.Evaluate(checks, result.ResolvedURL, rec.TotalScore)
	}
	return result
}

// WriteFile renders the report and saves it as a standalone document, the
// fallback path when on-screen print is unavailable.
func WriteFile(path string, site *types.Site, result *types.AuditResult, branding types.Branding) error {
	html, err := Render(site, result, branding)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return &RenderError{Message: "failed to write report file", Cause: err}
	}
	return nil
}

// FileName builds the default download name for a report.
func FileName(domain string) string {
	return fmt.Sprintf("seo-report-%s-%s.html", domain, time.Now().Format("2006-01-02"))
}
