// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package cache

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/metrics"
)

// Key prefix for rendered images in BadgerDB.
const renderKeyPrefix = "render:"

// gcDiscardRatio is passed to RunValueLogGC.
const gcDiscardRatio = 0.5

// breakerName labels the circuit breaker metrics.
const breakerName = "render_cache_badger"

// BadgerStore is a Store backed by BadgerDB. Entries expire through
// Badger's per-entry TTL, so restarts keep warm images until they age out.
//
// Reads and writes go through a circuit breaker. While it is open every
// lookup is a miss and writes are dropped, so a failing disk costs renders
// their cache but never fails a request.
type BadgerStore struct {
	db      *badger.DB
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
}

// OpenBadgerStore opens (or creates) a BadgerDB at path.
func OpenBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	if path == "" {
		return nil, errors.New("badger cache path is empty")
	}
	opts := badger.DefaultOptions(path).WithLogger(newBadgerLogger())
	return openBadger(opts, ttl)
}

// OpenInMemoryBadgerStore opens a BadgerDB that never touches disk.
func OpenInMemoryBadgerStore(ttl time.Duration) (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return openBadger(opts, ttl)
}

func openBadger(opts badger.Options, ttl time.Duration) (*BadgerStore, error) {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for render cache: %w", err)
	}
	return &BadgerStore{db: db, ttl: ttl, breaker: newBreaker()}, nil
}

func newBreaker() *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, badger.ErrKeyNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Render cache circuit breaker state changed")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), float64(to))
		},
	})
}

// guard runs fn through the breaker and records the outcome.
func (s *BadgerStore) guard(fn func() ([]byte, error)) ([]byte, error) {
	value, err := s.breaker.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
	case err != nil && !errors.Is(err, badger.ErrKeyNotFound):
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	}
	return value, err
}

// Get retrieves a cached image.
func (s *BadgerStore) Get(key string) ([]byte, bool) {
	value, err := s.guard(func() ([]byte, error) {
		var value []byte
		err := s.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get([]byte(renderKeyPrefix + key))
			if err != nil {
				return err
			}
			value, err = item.ValueCopy(nil)
			return err
		})
		return value, err
	})

	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) && !errors.Is(err, gobreaker.ErrOpenState) {
			logging.Warn().Err(err).Str("key", key).Msg("Render cache read failed")
		}
		metrics.RecordCacheLookup(badgerCacheType, false)
		return nil, false
	}

	metrics.RecordCacheLookup(badgerCacheType, true)
	return value, true
}

// Set stores value with the configured TTL.
func (s *BadgerStore) Set(key string, value []byte) {
	_, err := s.guard(func() ([]byte, error) {
		return nil, s.db.Update(func(txn *badger.Txn) error {
			entry := badger.NewEntry([]byte(renderKeyPrefix+key), value).WithTTL(s.ttl)
			return txn.SetEntry(entry)
		})
	})
	if err != nil && !errors.Is(err, gobreaker.ErrOpenState) {
		logging.Warn().Err(err).Str("key", key).Msg("Render cache write failed")
	}
}

// Sweep runs value-log garbage collection until Badger reports nothing
// left to rewrite. Expired keys are dropped by compaction on their own.
func (s *BadgerStore) Sweep() (int, error) {
	rewrites := 0
	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) ||
			errors.Is(err, badger.ErrGCInMemoryMode) {
			return rewrites, nil
		}
		if err != nil {
			return rewrites, fmt.Errorf("value log gc: %w", err)
		}
		rewrites++
	}
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// badgerLogger routes Badger's internal logging through zerolog.
type badgerLogger struct {
	logger zerolog.Logger
}

func newBadgerLogger() *badgerLogger {
	return &badgerLogger{logger: logging.WithComponent("badger")}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
