// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/plotwright/internal/cache"
	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/logging"
)

// CachingRenderer serves repeated renders from a cache.Store.
type CachingRenderer struct {
	next  Renderer
	store cache.Store
}

// NewCachingRenderer wraps next. A nil store disables caching and returns next unchanged.
func NewCachingRenderer(next Renderer, store cache.Store) Renderer {
	if store == nil {
		return next
	}
	return &CachingRenderer{next: next, store: store}
}

// Render returns the cached image for (cfg, width, height) or renders and stores it.
func (r *CachingRenderer) Render(ctx context.Context, cfg *chart.Configuration, width, height int) ([]byte, error) {
	key, err := Key(cfg, width, height)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Render cache key unavailable, bypassing cache")
		return r.next.Render(ctx, cfg, width, height)
	}

	if img, ok := r.store.Get(key); ok {
		return img, nil
	}

	img, err := r.next.Render(ctx, cfg, width, height)
	if err != nil {
		return nil, err
	}
	r.store.Set(key, img)
	return img, nil
}

// Key is the hex SHA-256 of the canonical JSON of cfg plus the output size.
func Key(cfg *chart.Configuration, width, height int) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("%w: chart is nil", ErrInvalidChart)
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal chart for cache key: %w", err)
	}

	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "|%dx%d", width, height)
	return hex.EncodeToString(h.Sum(nil)), nil
}
