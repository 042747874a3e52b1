// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color as accepted by Chart.js: #rgb, #rgba,
// #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla(), "transparent" and the
// CSS/SVG color keywords. The result is non-premultiplied.
func ParseColor(s string) (color.NRGBA, error) {
	in := strings.ToLower(strings.TrimSpace(s))

	switch {
	case in == "":
		return color.NRGBA{}, reject(ErrInvalidColor, "color is empty")
	case in == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(in, "#"):
		if c, ok := parseHex(in[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(in, "rgb"):
		if c, ok := parseFunc(in, "rgb", rgbChannels); ok {
			return c, nil
		}
	case strings.HasPrefix(in, "hsl"):
		if c, ok := parseFunc(in, "hsl", hslChannels); ok {
			return c, nil
		}
	default:
		if c, ok := colornames.Map[in]; ok {
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
		}
	}

	return color.NRGBA{}, reject(ErrInvalidColor, "invalid color %q", s)
}

func parseHex(h string) (color.NRGBA, bool) {
	switch len(h) {
	case 3, 4:
		// Expand #rgb[a] to #rrggbb[aa].
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, false
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// parseFunc handles name(a, b, c[, alpha]) and nameA(...) forms.
func parseFunc(in, name string, channels func([3]string) (color.NRGBA, bool)) (color.NRGBA, bool) {
	rest := strings.TrimPrefix(in, name)
	rest = strings.TrimPrefix(rest, "a")
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return color.NRGBA{}, false
	}

	args := strings.Split(rest[1:len(rest)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, false
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	c, ok := channels([3]string{args[0], args[1], args[2]})
	if !ok {
		return color.NRGBA{}, false
	}
	if len(args) == 4 {
		a, ok := parseUnit(args[3])
		if !ok {
			return color.NRGBA{}, false
		}
		c.A = uint8(math.Round(a * 255))
	}
	return c, true
}

func rgbChannels(args [3]string) (color.NRGBA, bool) {
	var out [3]uint8
	for i, arg := range args {
		var v float64
		if strings.HasSuffix(arg, "%") {
			p, ok := parsePercent(arg)
			if !ok {
				return color.NRGBA{}, false
			}
			v = p * 255
		} else {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil || f < 0 || f > 255 {
				return color.NRGBA{}, false
			}
			v = f
		}
		out[i] = uint8(math.Round(v))
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: 0xff}, true
}

func hslChannels(args [3]string) (color.NRGBA, bool) {
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return color.NRGBA{}, false
	}
	s, ok := parsePercent(args[1])
	if !ok {
		return color.NRGBA{}, false
	}
	l, ok := parsePercent(args[2])
	if !ok {
		return color.NRGBA{}, false
	}

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}, true
}

// parsePercent parses "40%" as 0.4.
func parsePercent(s string) (float64, bool) {
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || f < 0 || f > 100 {
		return 0, false
	}
	return f / 100, true
}

// parseUnit parses an alpha value given as 0..1 or as a percentage.
func parseUnit(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return f, true
}
