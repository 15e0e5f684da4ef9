// Package resolver recovers the real company application URL hidden
// behind an aggregator's redirect link.
package resolver

import (
	"net/url"
	"strings"
)

// aggregatorDomains lists known job-board/aggregator hostnames. A URL
// whose host matches (exactly or as a dot-suffix) is a redirect layer,
// never a direct application page.
var aggregatorDomains = map[string]struct{}{
	"jooble.org":       {},
	"adzuna.com":       {},
	"adzuna.fr":        {},
	"adzuna.co.uk":     {},
	"remotive.com":     {},
	"arbeitnow.com":    {},
	"themuse.com":      {},
	"indeed.com":       {},
	"linkedin.com":     {},
	"glassdoor.com":    {},
	"ziprecruiter.com": {},
	"monster.com":      {},
	"simplyhired.com":  {},
	"careerjet.com":    {},
	"jobrapido.com":    {},
	"talent.com":       {},
}

// IsAggregatorDomain reports whether rawURL points at a known job
// aggregator. Matching is case-insensitive on the hostname; subdomains
// count (fr.indeed.com is still Indeed). Unparseable input is not an
// aggregator.
func IsAggregatorDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return isAggregatorHost(u.Hostname())
}

func isAggregatorHost(host string) bool {
	host = strings.ToLower(host)
	if _, ok := aggregatorDomains[host]; ok {
		return true
	}
	for domain := range aggregatorDomains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
