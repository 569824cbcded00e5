// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ourgorithm/seo-audit/internal/retrieval"
	"github.com/ourgorithm/seo-audit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPlatform outputs the detected hosting platform with its confidence
// and fixability note.
func (p *Printer) PrintPlatform(platform *types.Platform) {
	if platform == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Platform:    %s\n", platform.Name))
	sb.WriteString(fmt.Sprintf("Confidence:  %d%%\n", platform.Confidence))
	sb.WriteString(fmt.Sprintf("Fixability:  %s\n", platform.Fixability))
	if platform.Note != "" {
		note := platform.Note
		if len(note) > 50 {
			note = note[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Note: %s", note))
	}

	p.printBox("DETECTED PLATFORM", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAuditResult outputs the scored audit: total, category breakdown, and
// the failed checks worth the most points.
func (p *Printer) PrintAuditResult(result *types.AuditResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Domain:  %s\n", result.Domain))
	sb.WriteString(fmt.Sprintf("Score:   %d / %d\n", result.TotalScore, result.MaxScore))
	if result.SourceRelay != "" {
		sb.WriteString(fmt.Sprintf("Relay:   %s\n", result.SourceRelay))
	}
	sb.WriteString("\n")

	sb.WriteString("Categories:\n")
	for _, key := range types.CategoryOrder() {
		cat, ok := result.Categories[key]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-16s %2d / %2d\n", cat.Name, cat.Score, cat.MaxScore))
	}

	var failed []types.CheckResult
	for _, check := range result.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	if len(failed) > 0 {
		sb.WriteString("\nFailed checks:\n")
		count := min(len(failed), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s (-%d)\n", failed[i].Key, failed[i].MaxPoints))
		}
		if len(failed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(failed)-maxItemsToShow))
		}
	}

	p.printBox("AUDIT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReadiness outputs the directory readiness tier and its blockers.
func (p *Printer) PrintReadiness(report *types.ReadinessReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tier:      %s\n", report.Tier))
	sb.WriteString(fmt.Sprintf("Progress:  %d%% (%d of %d featured requirements)\n",
		report.Percentage, report.PassedCount, report.TotalCount))

	blockers := report.Blockers()
	if len(blockers) > 0 {
		sb.WriteString("\nBlockers:\n")
		count := min(len(blockers), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", blockers[i]))
		}
		if len(blockers) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(blockers)-maxItemsToShow))
		}
	}

	p.printBox("DIRECTORY READINESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRetrievalFailure outputs a retrieval error with its classification.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRetrievalFailure(err *retrieval.Error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RETRIEVAL SUCCEEDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Domain:  %s\n", err.Domain))
	switch {
	case err.NoPresence:
		sb.WriteString("Status:  no web presence (domain appears unregistered)\n")
	case err.Unreachable:
		sb.WriteString("Status:  unreachable through every relay\n")
	default:
		sb.WriteString("Status:  failed\n")
	}
	if err.LastAttempt != "" {
		attempt := err.LastAttempt
		if len(attempt) > 48 {
			attempt = attempt[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("Last attempt: %s", attempt))
	}

	p.printBox("RETRIEVAL FAILED", strings.TrimSuffix(sb.String(), "\n"))
}
