package clone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/assist"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/notify"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/resolver"
)

// ─── Service ─────────────────────────────────────────────────────────────────

// Service runs clone scans over the stored job feed and persists the
// outcome. The scan computation itself (Scan) is pure; Service adds the
// snapshot reads, writes, direct-URL resolution and event publishing
// around it.
type Service struct {
	pool      *pgxpool.Pool
	events    *notify.Publisher
	resolver  *resolver.Resolver
	assistant assist.TextAssistant
	workers   int
}

// NewService returns a configured Service. assistant may be assist.Noop{}
// when no text generation is configured.
func NewService(pool *pgxpool.Pool, events *notify.Publisher, res *resolver.Resolver, assistant assist.TextAssistant, workers int) *Service {
	return &Service{
		pool:      pool,
		events:    events,
		resolver:  res,
		assistant: assistant,
		workers:   workers,
	}
}

// ─── Scan cycle ──────────────────────────────────────────────────────────────

// RunScan executes one full scan cycle over the stored feed: load
// postings and the blacklist snapshot, detect clone pairs and groups,
// annotate, persist, resolve direct URLs for the surviving
// representatives, and announce the result. Bookkeeping failures
// (blocked counters, summaries, direct URLs, the event publish) are
// logged and never abort the cycle.
func (s *Service) RunScan(ctx context.Context) (model.ScanResult, error) {
	postings, err := s.loadPostings(ctx)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("load postings: %w", err)
	}
	blocked, err := s.loadBlacklist(ctx)
	if err != nil {
		return model.ScanResult{}, fmt.Errorf("load blacklist: %w", err)
	}

	result := Scan(postings, blocked)

	byKey := make(map[string]model.JobPosting, len(postings))
	keyToFeedID := make(map[string]string, len(postings))
	for _, p := range postings {
		byKey[p.Key()] = p
		keyToFeedID[p.Key()] = p.ID
	}

	// Blocked-counter bookkeeping: postings suppressed by the filter.
	if _, removed := FilterBlacklisted(postings, blocked); len(removed) > 0 {
		companies := make([]string, 0, len(removed))
		for _, p := range removed {
			companies = append(companies, p.Company)
		}
		if err := s.incrementBlocked(ctx, companies); err != nil {
			slog.Warn("blocked_count update failed", "err", err)
		}
	}

	for i := range result.Groups {
		s.annotateGroup(ctx, &result.Groups[i], byKey)
	}

	if len(result.Groups) > 0 {
		if err := s.saveGroups(ctx, result.Groups, keyToFeedID); err != nil {
			return model.ScanResult{}, fmt.Errorf("save groups: %w", err)
		}
		s.resolveRepresentatives(ctx, result.Groups, byKey)

		if err := s.events.ClonesFound(ctx, result.Stats, len(result.Groups)); err != nil {
			slog.Warn("publish scan event failed", "err", err)
		}
	}

	return result, nil
}

// annotateGroup attaches the optional one-line assistant summary.
func (s *Service) annotateGroup(ctx context.Context, g *model.CloneGroup, byKey map[string]model.JobPosting) {
	members := make([]model.JobPosting, 0, len(g.Members))
	for _, key := range g.Members {
		if p, ok := byKey[key]; ok {
			members = append(members, p)
		}
	}
	summary, err := s.assistant.SummarizeGroup(ctx, members)
	if err != nil {
		slog.Warn("group summary failed", "group", g.ID, "err", err)
		return
	}
	g.Summary = summary
}

// resolveRepresentatives resolves direct application URLs for each
// group's surviving posting and stores what it finds. Best-effort: a
// posting with no discoverable direct URL keeps its aggregator link.
func (s *Service) resolveRepresentatives(ctx context.Context, groups []model.CloneGroup, byKey map[string]model.JobPosting) {
	reps := make([]model.JobPosting, 0, len(groups))
	for _, g := range groups {
		if p, ok := byKey[g.Representative]; ok {
			reps = append(reps, p)
		}
	}

	resolved := s.resolver.ResolveBatch(ctx, reps, s.workers)
	for _, p := range reps {
		res := resolved[p.Key()]
		if res.Method == model.MethodNone {
			continue
		}
		if err := s.saveDirectURL(ctx, p.ID, res.Value); err != nil {
			slog.Warn("save direct url failed", "posting", p.Key(), "err", err)
		}
	}
}

// ─── Single resolution ───────────────────────────────────────────────────────

// ResolveDirectURL resolves one aggregator URL. Failures degrade to a
// MethodNone result; the caller sees absence, not an error.
func (s *Service) ResolveDirectURL(ctx context.Context, rawURL string, source model.Source) model.ResolvedURL {
	res, err := s.resolver.Resolve(ctx, rawURL, source)
	if err != nil {
		slog.Debug("resolve failed", "url", rawURL, "err", err)
		return model.ResolvedURL{Method: model.MethodNone}
	}
	return res
}
