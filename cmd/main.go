// apptrackr-clone-service
//
// Duplicate/scam posting detection and direct-apply-URL resolution for
// the job feed. Exposes a small REST API used by the Gateway:
//   - POST /scan    — run a clone scan over the stored feed
//   - GET  /clones  — list detected clone groups
//   - POST /resolve — recover the direct application URL behind an
//     aggregator redirect link
//
// A cron loop re-scans the feed periodically; detected groups are
// persisted and announced on Redis (EVENT_CLONES_FOUND) for SSE forward.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/assist"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/clone"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/config"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/db"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/notify"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/resolver"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/scheduler"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[clone-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[clone-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[clone-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[clone-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[clone-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[clone-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[clone-service] Redis connected ✓")

	// ── Wiring ───────────────────────────────────────────────────────────────
	events := notify.NewPublisher(rdb)
	res := resolver.New(nil, cfg.ResolveTimeout)
	svc := clone.NewService(pool, events, res, assist.Noop{}, cfg.ResolveWorkers)

	sched := scheduler.New(svc, cfg.ScanIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[clone-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	h := clone.NewHandler(svc)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // POST /scan resolves URLs over the network
	}

	go func() {
		log.Printf("[clone-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[clone-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[clone-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[clone-service] Shutdown error: %v", err)
	}
	log.Println("[clone-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "clone-service",
		"version": version,
	})
}
