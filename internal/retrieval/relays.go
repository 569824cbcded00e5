package retrieval

import (
	"net/url"
	"strings"
)

// Relay is a third-party HTTP passthrough used to retrieve a target site's
// HTML when direct retrieval is blocked.
type Relay struct {
	Name string
	// BuildURL wraps the target URL into the relay's request URL.
	BuildURL func(target string) string
}

// DefaultRelays returns the built-in relay chain in fallback order. The
// order matters: earlier relays are tried first for every URL variant.
func DefaultRelays() []Relay {
	return []Relay{
		{
			Name: "corsproxy.io",
			BuildURL: func(target string) string {
				return "https://corsproxy.io/?" + url.QueryEscape(target)
			},
		},
		{
			Name: "allorigins",
			BuildURL: func(target string) string {
				return "https://api.allorigins.win/raw?url=" + url.QueryEscape(target)
			},
		},
		{
			Name: "corsproxy.org",
			BuildURL: func(target string) string {
				return "https://corsproxy.org/?" + url.QueryEscape(target)
			},
		},
		{
			Name: "codetabs",
			BuildURL: func(target string) string {
				return "https://api.codetabs.com/v1/proxy?quest=" + url.QueryEscape(target)
			},
		},
	}
}

// RelaysFromTemplates builds a relay chain from configuration entries whose
// URL templates contain a %s placeholder for the escaped target URL. Unknown
// or malformed entries are skipped.
func RelaysFromTemplates(entries []RelayTemplate) []Relay {
	var relays []Relay
	for _, e := range entries {
		if e.Name == "" || e.URLTemplate == "" {
			continue
		}
		tmpl := e.URLTemplate
		relays = append(relays, Relay{
			Name: e.Name,
			BuildURL: func(target string) string {
				return strings.Replace(tmpl, "%s", url.QueryEscape(target), 1)
			},
		})
	}
	return relays
}

// RelayTemplate is the configuration shape for one relay. The URL template
// contains a %s placeholder for the escaped target URL.
type RelayTemplate struct {
	Name        string `json:"name"`
	URLTemplate string `json:"url_template"`
}
