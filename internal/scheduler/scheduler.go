// Package scheduler wires up the cron job that periodically runs a clone
// scan over the stored feed.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/clone"
)

// Scheduler wraps robfig/cron and manages the scan loop.
type Scheduler struct {
	cron *cron.Cron
	svc  *clone.Service
	spec string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(svc *clone.Service, intervalHours int) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		svc:  svc,
		spec: fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one scan
// immediately so results are available without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runScan(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runScan(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runScan(ctx context.Context) {
	log.Println("[scheduler] Scan cycle started")

	result, err := s.svc.RunScan(ctx)
	if err != nil {
		log.Printf("[scheduler] Scan error: %v", err)
		return
	}

	log.Printf("[scheduler] Scan cycle complete — scanned=%d clones=%d groups=%d skipped=%d blocked=%d",
		result.Stats.TotalScanned, result.Stats.TotalClones, len(result.Groups),
		result.Stats.TotalSkipped, result.Stats.TotalBlocked)
}
