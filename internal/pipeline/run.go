// Package pipeline runs the full audit flow for a domain: retrieval,
// platform classification, rubric checks and readiness evaluation.
package pipeline

import (
	"context"
	"time"

	"github.com/ourgorithm/seo-audit/internal/audit"
	"github.com/ourgorithm/seo-audit/internal/platform"
	"github.com/ourgorithm/seo-audit/internal/readiness"
	"github.com/ourgorithm/seo-audit/internal/retrieval"
	"github.com/ourgorithm/seo-audit/internal/types"
)

// Runner executes audits. Each run is a pure function of the input domain
// plus network responses; runs share no mutable state.
type Runner struct {
	fetcher *retrieval.Fetcher
}

// NewRunner creates a Runner around a fetcher. A nil fetcher uses the
// default relay configuration.
func NewRunner(fetcher *retrieval.Fetcher) *Runner {
	if fetcher == nil {
		fetcher = retrieval.NewFetcher(nil)
	}
	return &Runner{fetcher: fetcher}
}

// Run audits a domain end to end. Retrieval failures are returned as
// *retrieval.Error so callers can distinguish unreachable from no-presence.
func (r *Runner) Run(ctx context.Context, domain string) (*types.AuditResult, error) {
	doc, err := r.fetcher.FetchDocument(ctx, domain)
	if err != nil {
		return nil, err
	}

	detected := platform.Classify(doc.HTML)
	scored, err := audit.Run(doc.HTML, doc.ResolvedURL)
	if err != nil {
		return nil, err
	}

	return &types.AuditResult{
		Domain:                 doc.Domain,
		ResolvedURL:            doc.ResolvedURL,
		SourceRelay:            doc.SourceRelay,
		Platform:               detected,
		Checks:                 scored.Checks,
		Categories:             scored.Categories,
		TotalScore:             scored.TotalScore,
		MaxScore:               scored.MaxScore,
		HasLocalBusinessSchema: scored.HasLocalBusinessSchema,
		Readiness:              readiness.Evaluate(scored.Checks, doc.ResolvedURL, scored.TotalScore),
		AuditDate:              time.Now().UTC(),
	}, nil
}
