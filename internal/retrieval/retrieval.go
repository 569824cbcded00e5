// Package retrieval fetches a site's HTML through a chain of third-party
// relays, trying multiple URL variants per domain with per-attempt timeouts.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each individual relay attempt.
const DefaultTimeout = 12 * time.Second

// DefaultUserAgent is the user agent string for relay requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; SEOAuditBot/1.0)"

// minPayloadBytes is the smallest body accepted as real markup. Relay error
// pages and placeholders are shorter than this.
const minPayloadBytes = 500

// Document holds the HTML retrieved for a domain.
type Document struct {
	Domain      string
	HTML        string
	ResolvedURL string
	SourceRelay string
}

// Error represents a terminal retrieval failure after the fallback chain
// is exhausted.
type Error struct {
	Domain      string
	Message     string
	LastAttempt string
	// Unreachable means every URL-variant/relay combination failed; the
	// site may be down or behind bot protection. Retryable by the user.
	Unreachable bool
	// NoPresence means the whois probe suggests the domain is not
	// registered at all, so there is likely no real site to audit.
	NoPresence bool
	Cause      error
}

func (e *Error) Error() string {
	if e.LastAttempt != "" {
		return fmt.Sprintf("retrieval failed for %s: %s (last attempt: %s)", e.Domain, e.Message, e.LastAttempt)
	}
	return fmt.Sprintf("retrieval failed for %s: %s", e.Domain, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures a Fetcher.
type Options struct {
	Relays    []Relay
	Timeout   time.Duration
	UserAgent string
	// Prober classifies exhausted failures as "no web presence". Nil
	// disables the probe.
	Prober Prober
}

// DefaultOptions returns the production fetch configuration.
func DefaultOptions() *Options {
	return &Options{
		Relays:    DefaultRelays(),
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Prober:    &WhoisProber{},
	}
}

// Fetcher retrieves site documents through the relay chain.
type Fetcher struct {
	relays    []Relay
	client    *http.Client
	timeout   time.Duration
	userAgent string
	prober    Prober
}

// NewFetcher creates a Fetcher. A nil opts uses DefaultOptions.
func NewFetcher(opts *Options) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	relays := opts.Relays
	if len(relays) == 0 {
		relays = DefaultRelays()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		relays:    relays,
		client:    &http.Client{},
		timeout:   timeout,
		userAgent: userAgent,
		prober:    opts.Prober,
	}
}

// Normalize strips scheme, leading www., trailing slash and whitespace from
// a domain and lowercases it. Idempotent.
func Normalize(domain string) string {
	d := strings.TrimSpace(strings.ToLower(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	d = strings.TrimSuffix(d, "/")
	return d
}

// CandidateURLs returns the de-duplicated ordered URL variants tried for a
// normalized domain: https, https+www, http, http+www.
func CandidateURLs(domain string) []string {
	variants := []string{
		"https://" + domain,
		"https://www." + domain,
		"http://" + domain,
		"http://www." + domain,
	}
	seen := make(map[string]bool, len(variants))
	urls := make([]string, 0, len(variants))
	for _, u := range variants {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	return urls
}

// FetchDocument retrieves the first valid HTML payload for a domain. Each
// candidate URL is tried through each relay in order; the first valid
// payload wins and no further combinations are attempted. Exhausting all
// variants×relays returns an *Error classified as unreachable, or as
// no-presence when the whois probe indicates an unregistered domain.
func (f *Fetcher) FetchDocument(ctx context.Context, domain string) (*Document, error) {
	domain = Normalize(domain)
	if domain == "" {
		return nil, &Error{Domain: domain, Message: "empty domain"}
	}

	lastAttempt := "all relays failed"
	for _, candidate := range CandidateURLs(domain) {
		for _, relay := range f.relays {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			html, attemptErr := f.attempt(ctx, relay, candidate)
			if attemptErr != "" {
				lastAttempt = attemptErr
				continue
			}
			return &Document{
				Domain:      domain,
				HTML:        html,
				ResolvedURL: candidate,
				SourceRelay: relay.Name,
			}, nil
		}
	}

	// A cancelled caller gets the cancellation back, not an exhaustion
	// verdict, and never triggers the whois probe.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	retErr := &Error{
		Domain:      domain,
		Message:     "could not reach the site after trying all URL variants and relays; it may have bot protection or be temporarily unavailable",
		LastAttempt: lastAttempt,
		Unreachable: true,
	}
	if f.prober != nil && f.prober.NoPresence(domain) {
		retErr.Message = "the domain does not appear to have a real site"
		retErr.Unreachable = false
		retErr.NoPresence = true
	}
	return nil, retErr
}

// attempt performs one relay request. It returns the payload on success, or
// a short attempt description ("relay: reason") on failure.
func (f *Fetcher) attempt(ctx context.Context, relay Relay, target string) (string, string) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, relay.BuildURL(target), nil)
	if err != nil {
		return "", fmt.Sprintf("%s: %v", relay.Name, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Sprintf("%s: timeout", relay.Name)
		}
		return "", fmt.Sprintf("%s: %v", relay.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Sprintf("%s: HTTP %d", relay.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Sprintf("%s: %v", relay.Name, err)
	}

	html := string(body)
	if !validPayload(html) {
		return "", fmt.Sprintf("%s: invalid or empty response", relay.Name)
	}
	return html, ""
}

// validPayload rejects bodies too small or too plain to be real markup.
func validPayload(html string) bool {
	return len(html) > minPayloadBytes && strings.Contains(html, "<")
}
