// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package services

import (
	"context"
	"time"

	"github.com/tomtom215/plotwright/internal/cache"
	"github.com/tomtom215/plotwright/internal/logging"
)

const defaultSweepInterval = 5 * time.Minute

// CacheSweepService periodically reclaims space in the render cache:
// expired entries for the memory backend, value-log GC for Badger.
type CacheSweepService struct {
	sweeper  cache.Sweeper
	interval time.Duration
	name     string
}

// NewCacheSweepService creates a sweeper running every interval
// (5m when non-positive).
func NewCacheSweepService(sweeper cache.Sweeper, interval time.Duration) *CacheSweepService {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &CacheSweepService{
		sweeper:  sweeper,
		interval: interval,
		name:     "cache-sweeper",
	}
}

// Serve implements suture.Service. Sweep failures are logged and retried on
// the next tick rather than restarting the service.
func (s *CacheSweepService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheSweepService) sweep() {
	start := time.Now()
	reclaimed, err := s.sweeper.Sweep()
	if err != nil {
		logging.Warn().Err(err).Str("task", s.name).Msg("Cache sweep failed")
		return
	}
	if reclaimed > 0 {
		logging.Debug().
			Str("task", s.name).
			Int("reclaimed", reclaimed).
			Dur("duration", time.Since(start)).
			Msg("Cache sweep completed")
	}
}

// String implements fmt.Stringer.
func (s *CacheSweepService) String() string {
	return s.name
}
