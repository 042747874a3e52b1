// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{R: 255, A: 255}},
		{"  Blue ", color.NRGBA{B: 255, A: 255}},
		{"transparent", color.NRGBA{}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#0f08", color.NRGBA{G: 255, A: 0x88}},
		{"#3366cc", color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 255}},
		{"#3366cc80", color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0x80}},
		{"rgb(54, 162, 235)", color.NRGBA{R: 54, G: 162, B: 235, A: 255}},
		{"rgba(255,99,132,0.5)", color.NRGBA{R: 255, G: 99, B: 132, A: 128}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{R: 255, B: 128, A: 255}},
		{"hsl(0, 100%, 50%)", color.NRGBA{R: 255, A: 255}},
		{"hsla(240deg, 100%, 50%, 0.25)", color.NRGBA{B: 255, A: 64}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"", "notacolor", "#12", "#12345", "#ggg",
		"rgb(1,2)", "rgb(300,0,0)", "rgba(0,0,0,2)", "rgb 1,2,3",
		"hsl(0, 100, 50%)",
	} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestPalette_DefaultsParse(t *testing.T) {
	t.Parallel()

	for i, c := range Palette {
		if _, err := ParseColor(c); err != nil {
			t.Errorf("Palette[%d] = %q does not parse: %v", i, c, err)
		}
	}
}
