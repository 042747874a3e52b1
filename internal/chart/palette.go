// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

// Palette is the fixed color cycle applied to datasets by position.
// These are the Chart.js default dataset colors.
var Palette = [7]string{
	"rgb(54, 162, 235)",
	"rgb(255, 99, 132)",
	"rgb(255, 159, 64)",
	"rgb(255, 205, 86)",
	"rgb(75, 192, 192)",
	"rgb(153, 102, 255)",
	"rgb(201, 203, 207)",
}

// PaletteIndex returns the palette slot for dataset i.
func PaletteIndex(i int) int {
	if i < 0 {
		i = -i
	}
	return i % len(Palette)
}

// PaletteColor returns the palette color for dataset i.
func PaletteColor(i int) string {
	return Palette[PaletteIndex(i)]
}
