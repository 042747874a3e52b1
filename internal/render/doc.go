// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package render rasterizes chart configurations into PNG images.

PlotRenderer draws with gonum.org/v1/plot onto a vgimg canvas at 72 DPI,
so one plot point is one output pixel and the requested width and height
map directly onto the image size. The canvas is filled white before
anything is drawn.

Category charts (bar, line) and XY charts (scatter, bubble) use gonum's
plotters on numeric axes. Pie, doughnut, polar area and radar charts are
drawn by radialPlotter directly in canvas space with the axes hidden.

# Errors

  - ErrInvalidChart: the configuration could not be plotted. gonum panics
    on some degenerate inputs (for example a log scale whose range reaches
    zero); those panics are recovered and reported as ErrInvalidChart.
  - ErrRasterize: PNG encoding failed after the plot was drawn.

# Caching

CachingRenderer wraps any Renderer with a cache.Store keyed by a SHA-256
digest of the configuration and the requested size.
*/
package render
