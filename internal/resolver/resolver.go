package resolver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

const (
	defaultTimeout  = 5 * time.Second
	maxRedirectHops = 5

	// A conventional browser identifier — several boards refuse HEAD
	// requests from obvious bot user agents.
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// redirectParams are the generic query parameters aggregators use to
// carry the destination URL, checked in this preference order.
var redirectParams = []string{
	"redirect", "url", "link", "dest", "destination", "goto", "target",
	"redir", "out", "external", "apply_url", "job_url", "company_url",
}

// sourceParams holds per-board alternate parameter names, consulted when
// the generic list finds nothing.
var sourceParams = map[model.Source][]string{
	model.SourceJooble:    {"ref", "apply"},
	model.SourceAdzuna:    {"redirect_url", "application_url"},
	model.SourceRemotive:  {"apply_url", "application_url"},
	model.SourceArbeitnow: {"apply"},
	model.SourceTheMuse:   {"landing_page"},
	model.SourceJSearch:   {"job_apply_link"},
}

// Resolver extracts or discovers direct application URLs. The HTTP
// client is injectable so tests can point the redirect-follow step at a
// local server.
type Resolver struct {
	client  *http.Client
	timeout time.Duration
}

// New returns a Resolver. A nil client gets a default one with the
// redirect-hop cap applied; callers providing their own client keep
// full control over redirect policy and timeouts.
func New(client *http.Client, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if client == nil {
		client = &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirectHops {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}
	return &Resolver{client: client, timeout: timeout}
}

// Resolve attempts, in order: generic redirect-parameter extraction,
// the per-source parameter table, and a live HEAD redirect-follow.
// First success wins. All failures degrade to a MethodNone result; the
// error describes why the last applicable step gave up, so callers that
// care (tests, logs) can tell a network failure from a plain miss.
//
// Every step rejects candidates whose host is itself a known aggregator
// domain — resolving into another redirect layer is worse than not
// resolving at all.
func (r *Resolver) Resolve(ctx context.Context, rawURL string, source model.Source) (model.ResolvedURL, error) {
	none := model.ResolvedURL{Method: model.MethodNone}

	u, err := url.Parse(rawURL)
	if err != nil {
		return none, fmt.Errorf("parse %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return none, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	query := u.Query()

	// 1. Generic query-parameter extraction.
	if dest := firstDestParam(query, redirectParams); dest != "" {
		return model.ResolvedURL{Value: dest, Method: model.MethodQueryParam}, nil
	}

	// 2. Source-specific heuristic.
	if alts := sourceParams[source]; len(alts) > 0 {
		if dest := firstDestParam(query, alts); dest != "" {
			return model.ResolvedURL{Value: dest, Method: model.MethodSourceHeuristic}, nil
		}
	}

	// 3. Live redirect-follow, last resort.
	final, err := r.followRedirects(ctx, rawURL)
	if err != nil {
		return none, err
	}
	if final != rawURL && !IsAggregatorDomain(final) {
		return model.ResolvedURL{Value: final, Method: model.MethodRedirectFollow}, nil
	}
	return none, nil
}

// firstDestParam finds the first of names present in the query and
// validates its (already URL-decoded) value: it must parse as an
// http/https URL with a host that is not an aggregator. Only the first
// present parameter is considered — later ones do not get a second try.
func firstDestParam(query url.Values, names []string) string {
	for _, name := range names {
		if !query.Has(name) {
			continue
		}
		return validDestination(query.Get(name))
	}
	return ""
}

// validDestination returns candidate if it is a well-formed non-aggregator
// http/https URL, otherwise "".
func validDestination(candidate string) string {
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if isAggregatorHost(u.Hostname()) {
		return ""
	}
	return candidate
}

// followRedirects issues a HEAD request against rawURL with the
// per-resolution timeout and returns the final URL after redirects.
func (r *Resolver) followRedirects(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build HEAD %q: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HEAD %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	// resp.Request reflects the last hop, redirects included.
	return resp.Request.URL.String(), nil
}
