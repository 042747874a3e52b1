// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package cache

import (
	"fmt"

	"github.com/tomtom215/plotwright/internal/config"
)

// Store is a byte-oriented key/value cache for rendered images.
type Store interface {
	// Get returns the cached value and true, or nil and false on a miss.
	Get(key string) ([]byte, bool)
	// Set stores value under key. Errors are logged by the backend, never returned.
	Set(key string, value []byte)
	// Close releases backend resources.
	Close() error
}

// Metric label values for cache_type.
const (
	memoryCacheType = "render_memory"
	badgerCacheType = "render_badger"
)

// New builds the Store selected by cfg.Backend. It returns a nil Store for
// the "none" backend.
func New(cfg config.CacheConfig) (Store, error) {
	switch cfg.Backend {
	case config.CacheBackendNone, "":
		return nil, nil
	case config.CacheBackendMemory:
		return NewLRUCache(cfg.Capacity, cfg.TTL), nil
	case config.CacheBackendBadger:
		store, err := OpenBadgerStore(cfg.Path, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Sweeper is implemented by stores that need periodic housekeeping.
type Sweeper interface {
	// Sweep reclaims expired or dead space and returns how much work it did.
	Sweep() (int, error)
}
