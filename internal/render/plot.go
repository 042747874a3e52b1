// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package render

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/metrics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dpi makes one vg point equal one output pixel.
const dpi = 72

// PlotRenderer renders charts with gonum.org/v1/plot.
type PlotRenderer struct{}

// NewPlotRenderer creates a PlotRenderer.
func NewPlotRenderer() *PlotRenderer {
	return &PlotRenderer{}
}

// Render draws cfg onto a white width x height canvas and returns PNG bytes.
func (r *PlotRenderer) Render(ctx context.Context, cfg *chart.Configuration, width, height int) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: chart is nil", ErrInvalidChart)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidChart, width, height)
	}

	start := time.Now()
	defer func() {
		metrics.RecordRender(string(cfg.Type), time.Since(start), len(out), errorKind(err))
	}()

	canvas, err := drawCanvas(cfg, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	return buf.Bytes(), nil
}

// drawCanvas builds and draws the plot, converting gonum panics into ErrInvalidChart.
func drawCanvas(cfg *chart.Configuration, width, height int) (canvas *vgimg.Canvas, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			canvas = nil
			err = fmt.Errorf("%w: %v", ErrInvalidChart, rec)
		}
	}()

	p, err := buildPlot(cfg, width)
	if err != nil {
		return nil, err
	}

	canvas = vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(width)), vg.Points(float64(height))),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)
	p.Draw(draw.New(canvas))
	return canvas, nil
}

func buildPlot(cfg *chart.Configuration, width int) (*plot.Plot, error) {
	if err := checkPlottable(cfg); err != nil {
		return nil, err
	}

	p := plot.New()
	p.BackgroundColor = color.White
	p.Legend.Top = true
	p.Title.TextStyle.Font.Size = vg.Points(16)
	applyTitles(p, cfg)

	var err error
	switch {
	case cfg.Type.Radial():
		addRadial(p, cfg)
	case cfg.Type == chart.TypeBar:
		err = addBars(p, cfg, width)
	case cfg.Type == chart.TypeLine:
		err = addLines(p, cfg)
	default:
		err = addPoints(p, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}

	applyScales(p, cfg)
	return p, nil
}

// checkPlottable rejects configurations that validate as documents but
// cannot be drawn.
func checkPlottable(cfg *chart.Configuration) error {
	points := 0
	for _, ds := range cfg.Data.Datasets {
		points += len(ds.Data)
		if cfg.Type.Radial() && cfg.Type != chart.TypeRadar {
			for _, pt := range ds.Data {
				if pt.Y < 0 {
					return fmt.Errorf("%w: %s charts cannot show negative values", ErrInvalidChart, cfg.Type)
				}
			}
		}
		if cfg.LogX() {
			for _, pt := range ds.Data {
				if !pt.Object {
					return fmt.Errorf("%w: a logarithmic x axis needs {x, y} points", ErrInvalidChart)
				}
			}
		}
	}
	if points == 0 {
		return fmt.Errorf("%w: chart has no data points", ErrInvalidChart)
	}
	if cfg.Type == chart.TypeBar && cfg.LogY() {
		return fmt.Errorf("%w: bar charts do not support a logarithmic value axis", ErrInvalidChart)
	}
	return nil
}

func applyTitles(p *plot.Plot, cfg *chart.Configuration) {
	if pl := cfg.Options.Plugins; pl != nil && pl.Title != nil && pl.Title.Display {
		p.Title.Text = pl.Title.Text
	}
	if s := cfg.Options.Scales; s != nil {
		if s.X != nil && s.X.Title != nil && s.X.Title.Display {
			p.X.Label.Text = s.X.Title.Text
		}
		if s.Y != nil && s.Y.Title != nil && s.Y.Title.Display {
			p.Y.Label.Text = s.Y.Title.Text
		}
	}
}

// applyScales runs after the plotters are added, since p.Add widens the axis ranges.
func applyScales(p *plot.Plot, cfg *chart.Configuration) {
	if cfg.LogX() {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if cfg.LogY() {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		return
	}
	if s := cfg.Options.Scales; s != nil && s.Y != nil && s.Y.BeginAtZero {
		p.Y.Min = math.Min(p.Y.Min, 0)
		p.Y.Max = math.Max(p.Y.Max, 0)
	}
}

func legendEnabled(cfg *chart.Configuration) bool {
	pl := cfg.Options.Plugins
	if pl == nil || pl.Legend == nil || pl.Legend.Display == nil {
		return true
	}
	return *pl.Legend.Display
}

func addBars(p *plot.Plot, cfg *chart.Configuration, width int) error {
	datasets := cfg.Data.Datasets
	slots := max(len(cfg.Data.Labels), 1)

	// Each label gets 80% of its share of the width; datasets split that group.
	group := vg.Points(float64(width)) * 0.8 / vg.Length(slots) * 0.8
	barWidth := group / vg.Length(len(datasets))

	for i := range datasets {
		ds := &datasets[i]
		offset := (vg.Length(i) - vg.Length(len(datasets)-1)/2) * barWidth

		// One bar chart per value so that per-bar colors are honored.
		for j, pt := range ds.Data {
			bars, err := plotter.NewBarChart(plotter.Values{pt.Y}, barWidth)
			if err != nil {
				return err
			}
			bars.XMin = float64(j)
			bars.Offset = offset
			bars.Color = fillColor(ds, j)
			bars.LineStyle = draw.LineStyle{Color: borderColor(ds, j), Width: lineWidth(ds, 1)}
			p.Add(bars)
		}

		if legendEnabled(cfg) {
			p.Legend.Add(ds.Label, swatch{fill: fillColor(ds, 0), stroke: borderColor(ds, 0)})
		}
	}

	p.NominalX(cfg.Data.Labels...)
	return nil
}

func addLines(p *plot.Plot, cfg *chart.Configuration) error {
	for i := range cfg.Data.Datasets {
		ds := &cfg.Data.Datasets[i]

		pts := make(plotter.XYs, len(ds.Data))
		for j, pt := range ds.Data {
			pts[j] = plotter.XY{X: float64(j), Y: pt.Y}
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Color = borderColor(ds, 0)
		line.LineStyle.Width = lineWidth(ds, 2)
		points.GlyphStyle = draw.GlyphStyle{Color: borderColor(ds, 0), Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		points.GlyphStyleFunc = func(j int) draw.GlyphStyle {
			return draw.GlyphStyle{Color: borderColor(ds, j), Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		}

		p.Add(line, points)
		if legendEnabled(cfg) {
			p.Legend.Add(ds.Label, line, points)
		}
	}

	p.NominalX(cfg.Data.Labels...)
	return nil
}

// addPoints draws scatter and bubble charts. Bare numbers are placed at
// their label index on a nominal x axis.
func addPoints(p *plot.Plot, cfg *chart.Configuration) error {
	nominal := false

	for i := range cfg.Data.Datasets {
		ds := &cfg.Data.Datasets[i]

		pts := make(plotter.XYs, len(ds.Data))
		for j, pt := range ds.Data {
			if pt.Object {
				pts[j] = plotter.XY{X: pt.X, Y: pt.Y}
				continue
			}
			nominal = true
			pts[j] = plotter.XY{X: float64(j), Y: pt.Y}
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle = draw.GlyphStyle{Color: fillColor(ds, 0), Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
		scatter.GlyphStyleFunc = func(j int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  fillColor(ds, j),
				Radius: vg.Points(pointRadius(cfg.Type, ds.Data[j])),
				Shape:  draw.CircleGlyph{},
			}
		}

		p.Add(scatter)
		if legendEnabled(cfg) {
			p.Legend.Add(ds.Label, scatter)
		}
	}

	if nominal {
		p.NominalX(cfg.Data.Labels...)
	}
	return nil
}

// pointRadius follows Chart.js: bubble r is a pixel radius, other points are 3px.
func pointRadius(t chart.Type, pt chart.Point) float64 {
	if t == chart.TypeBubble && pt.Object {
		return math.Max(pt.R, 0.5)
	}
	return 3
}

func lineWidth(ds *chart.Dataset, def float64) vg.Length {
	if ds.BorderWidth > 0 {
		return vg.Points(ds.BorderWidth)
	}
	return vg.Points(def)
}

// swatch is a filled legend thumbnail.
type swatch struct {
	fill, stroke color.Color
}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.fill, pts)
	c.StrokeLines(draw.LineStyle{Color: s.stroke, Width: vg.Points(1)}, append(pts, pts[0]))
}
