// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package render

import (
	"image/color"

	"github.com/tomtom215/plotwright/internal/chart"
)

// fillAlpha matches Chart.js, which fills with the border color at half opacity.
const fillAlpha = 0x80

// fillColor returns the fill for point j of ds: the dataset's own
// backgroundColor, else its palette slot at half opacity.
func fillColor(ds *chart.Dataset, j int) color.Color {
	if c, ok := colorAt(ds.BackgroundColor, j); ok {
		return c
	}
	c := paletteColor(ds.ColorIndex)
	c.A = fillAlpha
	return c
}

// borderColor returns the stroke for point j of ds.
func borderColor(ds *chart.Dataset, j int) color.Color {
	if c, ok := colorAt(ds.BorderColor, j); ok {
		return c
	}
	return paletteColor(ds.ColorIndex)
}

// sliceFill colors pie-like slices by slice index unless the dataset says otherwise.
func sliceFill(ds *chart.Dataset, j int) color.Color {
	if c, ok := colorAt(ds.BackgroundColor, j); ok {
		return c
	}
	return paletteColor(j)
}

func sliceBorder(ds *chart.Dataset, j int) color.Color {
	if c, ok := colorAt(ds.BorderColor, j); ok {
		return c
	}
	return color.White
}

func colorAt(list chart.Colors, j int) (color.NRGBA, bool) {
	s, ok := list.At(j)
	if !ok {
		return color.NRGBA{}, false
	}
	c, err := chart.ParseColor(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	return c, true
}

func paletteColor(i int) color.NRGBA {
	// Palette entries are constants covered by tests in package chart.
	c, _ := chart.ParseColor(chart.PaletteColor(i))
	return c
}
