// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"bytes"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Configuration is a complete chart description, shaped like a Chart.js
// configuration object.
type Configuration struct {
	Type    Type    `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data holds the shared label axis and the datasets plotted against it.
type Data struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one named series.
type Dataset struct {
	Label           string  `json:"label"`
	Data            []Point `json:"data"`
	BackgroundColor Colors  `json:"backgroundColor,omitempty"`
	BorderColor     Colors  `json:"borderColor,omitempty"`
	BorderWidth     float64 `json:"borderWidth,omitempty"`

	// ColorIndex is the dataset's palette slot, derived from its position.
	ColorIndex int `json:"-"`
}

// Options holds the subset of Chart.js options the renderer honors.
type Options struct {
	Plugins *Plugins `json:"plugins,omitempty"`
	Scales  *Scales  `json:"scales,omitempty"`
}

// Plugins holds plugin options. Only the title and legend are honored.
type Plugins struct {
	Title  *Title  `json:"title,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
}

// Title is a chart or axis title block.
type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// Legend controls the dataset legend.
type Legend struct {
	Display *bool `json:"display,omitempty"`
}

// Scales holds the x and y axis options.
type Scales struct {
	X *Axis `json:"x,omitempty"`
	Y *Axis `json:"y,omitempty"`
}

// Axis holds options for one axis.
type Axis struct {
	Type        ScaleType `json:"type,omitempty"`
	Title       *Title    `json:"title,omitempty"`
	BeginAtZero bool      `json:"beginAtZero,omitempty"`
}

// Point is one data value. Category charts use bare numbers, which set Y
// only; scatter and bubble charts use {x, y[, r]} objects.
type Point struct {
	X, Y, R float64
	// Object is set when the point was written as an {x, y} object.
	Object bool
}

// Value returns a bare-number point.
func Value(v float64) Point {
	return Point{Y: v}
}

// XY returns an object point, with r used by bubble charts.
func XY(x, y, r float64) Point {
	return Point{X: x, Y: y, R: r, Object: true}
}

type pointObject struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	R *float64 `json:"r,omitempty"`
}

// UnmarshalJSON accepts a JSON number or an {x, y[, r]} object.
func (p *Point) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return reject(ErrInvalidNumber, "data point is empty")
	}

	switch data[0] {
	case '{':
		var obj pointObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return reject(ErrInvalidNumber, "data point %s: x, y and r must be numbers", data)
		}
		if obj.X == nil || obj.Y == nil {
			return reject(ErrInvalidNumber, "data point %s: both x and y are required", data)
		}
		*p = Point{X: *obj.X, Y: *obj.Y, Object: true}
		if obj.R != nil {
			p.R = *obj.R
		}
		return nil
	case 'n':
		return reject(ErrInvalidNumber, "null data points are not supported")
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return reject(ErrInvalidNumber, "data point %s is not a number", data)
		}
		*p = Point{Y: v}
		return nil
	}
}

// MarshalJSON writes a bare number or an object, mirroring how the point was given.
func (p Point) MarshalJSON() ([]byte, error) {
	if !p.Object {
		return strconv.AppendFloat(nil, p.Y, 'g', -1, 64), nil
	}
	obj := pointObject{X: &p.X, Y: &p.Y}
	if p.R != 0 {
		obj.R = &p.R
	}
	return json.Marshal(obj)
}

func (p Point) finite() bool {
	for _, v := range [...]float64{p.X, p.Y, p.R} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Colors is a Chart.js color option: a single color for the whole dataset
// or one color per data point.
type Colors []string

// UnmarshalJSON accepts a string or an array of strings.
func (c *Colors) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || data[0] == 'n':
		*c = nil
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return reject(ErrInvalidColor, "color %s is not a string", data)
		}
		*c = Colors{s}
		return nil
	default:
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return reject(ErrInvalidColor, "colors must be a string or an array of strings")
		}
		*c = list
		return nil
	}
}

// MarshalJSON writes a single color as a string and several as an array.
func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// At returns the color for data point i. A single color applies to every
// point. ok is false when no color was given.
func (c Colors) At(i int) (string, bool) {
	switch len(c) {
	case 0:
		return "", false
	case 1:
		return c[0], true
	default:
		return c[i%len(c)], true
	}
}
