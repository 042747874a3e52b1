// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package render

import (
	"context"
	"errors"

	"github.com/tomtom215/plotwright/internal/chart"
)

// Renderer turns a chart configuration into an encoded image.
type Renderer interface {
	Render(ctx context.Context, cfg *chart.Configuration, width, height int) ([]byte, error)
}

var (
	// ErrInvalidChart means the configuration passed validation but could not be plotted.
	ErrInvalidChart = errors.New("invalid chart input")

	// ErrRasterize means the plot was built but could not be encoded.
	ErrRasterize = errors.New("rasterize chart")
)

// errorKind names err for the chart_render_errors_total metric.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidChart):
		return "invalid_chart"
	case errors.Is(err, ErrRasterize):
		return "rasterize"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "other"
	}
}
