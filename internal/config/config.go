// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the clone service.
type Config struct {
	Port              string
	DatabaseURL       string
	RedisURL          string
	ScanIntervalHours int           // how often the cron scan fires
	ResolveWorkers    int           // concurrent outstanding HEAD requests
	ResolveTimeout    time.Duration // per-resolution budget
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("CLONE_PORT")
	if port == "" {
		port = "8083"
	}

	interval := 6
	if s := os.Getenv("SCAN_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SCAN_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	workers := 8
	if s := os.Getenv("RESOLVE_WORKERS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("RESOLVE_WORKERS must be a positive integer, got %q", s)
		}
		workers = v
	}

	timeout := 5
	if s := os.Getenv("RESOLVE_TIMEOUT_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("RESOLVE_TIMEOUT_SECONDS must be a positive integer, got %q", s)
		}
		timeout = v
	}

	return &Config{
		Port:              port,
		DatabaseURL:       dbURL,
		RedisURL:          redisURL,
		ScanIntervalHours: interval,
		ResolveWorkers:    workers,
		ResolveTimeout:    time.Duration(timeout) * time.Second,
	}, nil
}
