// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package render

import (
	"image/color"
	"math"

	"github.com/tomtom215/plotwright/internal/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	doughnutCutout = 0.5
	radarLevels    = 5
	// arcStep is the angular resolution of drawn arcs, in radians.
	arcStep = math.Pi / 90
)

var gridColor = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// radialPlotter draws pie, doughnut, polar area and radar charts in canvas
// space, centered in the data area and kept circular.
type radialPlotter struct {
	cfg *chart.Configuration
}

func addRadial(p *plot.Plot, cfg *chart.Configuration) {
	p.HideAxes()
	p.Add(&radialPlotter{cfg: cfg})

	if !legendEnabled(cfg) {
		return
	}
	if cfg.Type == chart.TypeRadar {
		for i := range cfg.Data.Datasets {
			ds := &cfg.Data.Datasets[i]
			p.Legend.Add(ds.Label, swatch{fill: fillColor(ds, 0), stroke: borderColor(ds, 0)})
		}
		return
	}
	// Slices are identified by label, colored as in the first dataset.
	first := &cfg.Data.Datasets[0]
	for j, label := range cfg.Data.Labels {
		p.Legend.Add(label, swatch{fill: sliceFill(first, j), stroke: sliceBorder(first, j)})
	}
}

// Plot implements plot.Plotter.
func (r *radialPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y) / 2 * 0.9

	switch r.cfg.Type {
	case chart.TypePie:
		r.drawRings(&c, center, radius, 0)
	case chart.TypeDoughnut:
		r.drawRings(&c, center, radius, doughnutCutout)
	case chart.TypePolarArea:
		r.drawPolarArea(&c, center, radius)
	case chart.TypeRadar:
		// Leave room for the spoke labels.
		r.drawRadar(&c, plt, center, radius*0.85)
	}
}

// DataRange implements plot.DataRanger so the hidden axes stay well defined.
func (r *radialPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// drawRings draws each dataset as a ring, the first dataset outermost.
func (r *radialPlotter) drawRings(c *draw.Canvas, center vg.Point, radius vg.Length, cutout float64) {
	datasets := r.cfg.Data.Datasets
	hole := radius * vg.Length(cutout)
	band := (radius - hole) / vg.Length(len(datasets))

	for i := range datasets {
		ds := &datasets[i]
		outer := radius - band*vg.Length(i)
		inner := outer - band

		total := 0.0
		for _, pt := range ds.Data {
			total += pt.Y
		}
		if total <= 0 {
			continue
		}

		angle := 0.0
		for j, pt := range ds.Data {
			sweep := 2 * math.Pi * pt.Y / total
			if sweep > 0 {
				poly := sector(center, inner, outer, angle, angle+sweep)
				c.FillPolygon(sliceFill(ds, j), poly)
				c.StrokeLines(draw.LineStyle{Color: sliceBorder(ds, j), Width: lineWidth(ds, 2)}, closed(poly))
			}
			angle += sweep
		}
	}
}

// drawPolarArea gives every label an equal angle and scales radius by value.
func (r *radialPlotter) drawPolarArea(c *draw.Canvas, center vg.Point, radius vg.Length) {
	n := len(r.cfg.Data.Labels)
	maxValue := r.maxValue()
	if n == 0 || maxValue <= 0 {
		return
	}

	r.drawCircularGrid(c, center, radius)

	sweep := 2 * math.Pi / float64(n)
	for i := range r.cfg.Data.Datasets {
		ds := &r.cfg.Data.Datasets[i]
		for j, pt := range ds.Data {
			if pt.Y <= 0 {
				continue
			}
			rr := radius * vg.Length(pt.Y/maxValue)
			poly := sector(center, 0, rr, sweep*float64(j), sweep*float64(j+1))
			fill := sliceFill(ds, j)
			if _, ok := ds.BackgroundColor.At(j); !ok {
				fill = withAlpha(fill, fillAlpha)
			}
			c.FillPolygon(fill, poly)
			c.StrokeLines(draw.LineStyle{Color: sliceBorder(ds, j), Width: lineWidth(ds, 1)}, closed(poly))
		}
	}
}

func (r *radialPlotter) drawCircularGrid(c *draw.Canvas, center vg.Point, radius vg.Length) {
	style := draw.LineStyle{Color: gridColor, Width: vg.Points(1)}
	for level := 1; level <= radarLevels; level++ {
		rr := radius * vg.Length(level) / radarLevels
		c.StrokeLines(style, arc(center, rr, 0, 2*math.Pi))
	}
}

// drawRadar draws one spoke per label, a polygonal grid, and one closed
// polygon per dataset. Values are scaled from min(0, smallest) to the largest.
func (r *radialPlotter) drawRadar(c *draw.Canvas, plt *plot.Plot, center vg.Point, radius vg.Length) {
	labels := r.cfg.Data.Labels
	n := len(labels)
	if n == 0 {
		return
	}

	lo, hi := math.Min(0, r.minValue()), r.maxValue()
	if hi <= lo {
		hi = lo + 1
	}
	spoke := func(j int) float64 { return 2 * math.Pi * float64(j) / float64(n) }

	grid := draw.LineStyle{Color: gridColor, Width: vg.Points(1)}
	for level := 1; level <= radarLevels; level++ {
		rr := radius * vg.Length(level) / radarLevels
		ring := make([]vg.Point, 0, n+1)
		for j := 0; j <= n; j++ {
			ring = append(ring, polar(center, rr, spoke(j%n)))
		}
		c.StrokeLines(grid, ring)
	}

	labelStyle := plt.X.Tick.Label
	labelStyle.XAlign = text.XCenter
	labelStyle.YAlign = text.YCenter
	for j, label := range labels {
		end := polar(center, radius, spoke(j))
		c.StrokeLine2(grid, center.X, center.Y, end.X, end.Y)
		c.FillText(labelStyle, polar(center, radius*1.1, spoke(j)), label)
	}

	for i := range r.cfg.Data.Datasets {
		ds := &r.cfg.Data.Datasets[i]
		poly := make([]vg.Point, len(ds.Data))
		for j, pt := range ds.Data {
			poly[j] = polar(center, radius*vg.Length((pt.Y-lo)/(hi-lo)), spoke(j))
		}
		c.FillPolygon(fillColor(ds, 0), poly)
		c.StrokeLines(draw.LineStyle{Color: borderColor(ds, 0), Width: lineWidth(ds, 2)}, closed(poly))
		for j, pt := range poly {
			c.DrawGlyph(draw.GlyphStyle{Color: borderColor(ds, j), Radius: vg.Points(3), Shape: draw.CircleGlyph{}}, pt)
		}
	}
}

func (r *radialPlotter) maxValue() float64 {
	m := math.Inf(-1)
	for _, ds := range r.cfg.Data.Datasets {
		for _, pt := range ds.Data {
			m = math.Max(m, pt.Y)
		}
	}
	return m
}

func (r *radialPlotter) minValue() float64 {
	m := math.Inf(1)
	for _, ds := range r.cfg.Data.Datasets {
		for _, pt := range ds.Data {
			m = math.Min(m, pt.Y)
		}
	}
	return m
}

// polar returns the point at distance r from center, angle radians
// clockwise from twelve o'clock.
func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: center.X + r*vg.Length(math.Sin(angle)),
		Y: center.Y + r*vg.Length(math.Cos(angle)),
	}
}

// arc approximates the arc between two angles with straight segments.
func arc(center vg.Point, r vg.Length, from, to float64) []vg.Point {
	steps := max(2, int(math.Ceil((to-from)/arcStep)))
	pts := make([]vg.Point, 0, steps+1)
	for k := 0; k <= steps; k++ {
		pts = append(pts, polar(center, r, from+(to-from)*float64(k)/float64(steps)))
	}
	return pts
}

// sector returns the outline of an annular sector. inner may be zero.
func sector(center vg.Point, inner, outer vg.Length, from, to float64) []vg.Point {
	pts := arc(center, outer, from, to)
	if inner <= 0 {
		return append(pts, center)
	}
	back := arc(center, inner, from, to)
	for k := len(back) - 1; k >= 0; k-- {
		pts = append(pts, back[k])
	}
	return pts
}

func closed(poly []vg.Point) []vg.Point {
	if len(poly) == 0 {
		return poly
	}
	out := make([]vg.Point, len(poly)+1)
	copy(out, poly)
	out[len(poly)] = poly[0]
	return out
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
