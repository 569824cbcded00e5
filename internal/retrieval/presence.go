package retrieval

import (
	"strings"

	"github.com/likexian/whois"
)

// Prober decides whether an unreachable domain has no real web presence.
type Prober interface {
	NoPresence(domain string) bool
}

// availablePatterns indicate an unregistered domain in whois output.
var availablePatterns = []string{
	"no match for",
	"not found",
	"no entries found",
	"domain not found",
	"no data found",
	"status: free",
	"status: available",
	"no object found",
	"object does not exist",
	"nothing found",
	"is available for registration",
	"domain is available",
	"the queried object does not exist",
	"no such domain",
	"domain name has not been registered",
	"no matching record",
}

// WhoisProber classifies a domain as having no presence when its whois
// record says the name is not registered. Lookup failures report false so
// the caller keeps the unreachable classification.
type WhoisProber struct{}

// NoPresence reports whether the domain appears unregistered.
func (p *WhoisProber) NoPresence(domain string) bool {
	raw, err := whois.Whois(domain)
	if err != nil {
		return false
	}
	return indicatesAvailable(raw)
}

func indicatesAvailable(raw string) bool {
	lower := strings.ToLower(raw)
	for _, pattern := range availablePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
