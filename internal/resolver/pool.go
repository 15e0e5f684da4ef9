package resolver

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

const defaultWorkers = 8

// ResolveBatch resolves direct URLs for a batch of postings with a
// capped worker pool, keyed by posting key. Each resolution has its own
// timeout, so a hanging target stalls one worker slot, nothing more.
// Failures degrade silently to MethodNone — a single attempt per
// posting, no retries. When ctx is cancelled, in-flight requests are
// cancelled and the postings resolved so far keep their results.
func (r *Resolver) ResolveBatch(ctx context.Context, postings []model.JobPosting, workers int) map[string]model.ResolvedURL {
	if workers <= 0 {
		workers = defaultWorkers
	}

	results := make([]model.ResolvedURL, len(postings))
	for i := range results {
		results[i] = model.ResolvedURL{Method: model.MethodNone}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range postings {
		i, p := i, p
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			res, err := r.Resolve(gctx, p.URL, p.Source)
			if err != nil {
				slog.Debug("resolve failed", "posting", p.Key(), "err", err)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait() // workers never return errors — failure is a MethodNone result

	out := make(map[string]model.ResolvedURL, len(postings))
	for i, p := range postings {
		out[p.Key()] = results[i]
	}
	return out
}
