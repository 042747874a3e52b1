// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"strings"
)

// Type is a Chart.js chart type. Values are case-sensitive.
type Type string

// Supported chart types.
const (
	TypeBar       Type = "bar"
	TypeLine      Type = "line"
	TypeScatter   Type = "scatter"
	TypeBubble    Type = "bubble"
	TypePie       Type = "pie"
	TypeDoughnut  Type = "doughnut"
	TypePolarArea Type = "polarArea"
	TypeRadar     Type = "radar"
)

// Types lists every supported chart type in documentation order.
var Types = []Type{
	TypeBar, TypeLine, TypeScatter, TypeBubble,
	TypePie, TypeDoughnut, TypePolarArea, TypeRadar,
}

// DefaultType is used by the CSV path when no chart type is given.
const DefaultType = TypeLine

// Valid reports whether t is one of the supported chart types.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// XY reports whether the chart plots points on two numeric axes.
func (t Type) XY() bool {
	return t == TypeScatter || t == TypeBubble
}

// Radial reports whether the chart is drawn around a center rather than on axes.
func (t Type) Radial() bool {
	switch t {
	case TypePie, TypeDoughnut, TypePolarArea, TypeRadar:
		return true
	}
	return false
}

// ParseType converts s to a Type, rejecting anything not in Types.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", reject(ErrUnknownChartType,
			"unknown chart type %q: must be one of %s", s, typeList())
	}
	return t, nil
}

func typeList() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// ScaleType is a Chart.js numeric axis type. Empty means linear.
type ScaleType string

// Supported scale types.
const (
	ScaleLinear      ScaleType = "linear"
	ScaleLogarithmic ScaleType = "logarithmic"
)

// Valid reports whether s is empty, linear or logarithmic.
func (s ScaleType) Valid() bool {
	return s == "" || s == ScaleLinear || s == ScaleLogarithmic
}

// Log reports whether the axis is logarithmic.
func (s ScaleType) Log() bool {
	return s == ScaleLogarithmic
}

// ParseScaleType converts s to a ScaleType for the named axis ("x" or "y").
// The empty string yields ScaleLinear.
func ParseScaleType(axis, s string) (ScaleType, error) {
	st := ScaleType(s)
	if !st.Valid() {
		return "", reject(ErrUnknownScaleType,
			"unknown %s scale type %q: must be %s or %s", axis, s, ScaleLinear, ScaleLogarithmic)
	}
	if st == "" {
		return ScaleLinear, nil
	}
	return st, nil
}

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// String implements fmt.Stringer.
func (s ScaleType) String() string {
	if s == "" {
		return string(ScaleLinear)
	}
	return string(s)
}
