// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"math"
	"strconv"
	"strings"
)

// CSVRequest carries the header values that accompany a CSV body.
// Absent headers are None; a header sent with an empty value is Some("").
type CSVRequest struct {
	ChartType    Optional[string]
	DatasetCount Optional[string]
	Title        Optional[string]
	XAxisLabel   Optional[string]
	YAxisLabel   Optional[string]
	ScaleXType   Optional[string]
	ScaleYType   Optional[string]
}

// csvBorderWidth is the fixed border width of CSV datasets.
const csvBorderWidth = 1

// TranslateCSV builds a Configuration from req and a newline-delimited body.
//
// Line 0 holds comma-separated labels. Dataset i occupies line 1+2i (its
// name) and line 2+2i (comma-separated values, one per label).
func TranslateCSV(req CSVRequest, body string) (*Configuration, error) {
	chartType, err := ParseType(req.ChartType.OrElse(string(DefaultType)))
	if err != nil {
		return nil, err
	}

	rawCount, ok := req.DatasetCount.Get()
	if !ok {
		return nil, reject(ErrMissingDatasetCount, "number of datasets is required")
	}
	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil || count <= 0 {
		return nil, reject(ErrInvalidDatasetCount,
			"number of datasets must be a positive integer, got %q", rawCount)
	}

	scaleX, err := ParseScaleType("x", req.ScaleXType.OrElse(""))
	if err != nil {
		return nil, err
	}
	scaleY, err := ParseScaleType("y", req.ScaleYType.OrElse(""))
	if err != nil {
		return nil, err
	}

	lines := strings.Split(body, "\n")
	// Compare without computing 1+2*count, which can overflow.
	if (len(lines)-1)/2 < count {
		return nil, reject(ErrInsufficientLines,
			"body has %d lines but %d datasets need 1 label line plus 2 lines each", len(lines), count)
	}

	labels := splitFields(lines[0])

	datasets := make([]Dataset, 0, count)
	for i := 0; i < count; i++ {
		name := strings.TrimSpace(lines[1+2*i])
		values, err := parseValues(i, name, lines[2+2*i])
		if err != nil {
			return nil, err
		}
		if len(values) != len(labels) {
			return nil, reject(ErrLengthMismatch,
				"dataset %d (%q) has %d values but there are %d labels", i, name, len(values), len(labels))
		}

		color := PaletteColor(i)
		datasets = append(datasets, Dataset{
			Label:           name,
			Data:            values,
			BackgroundColor: Colors{color},
			BorderColor:     Colors{color},
			BorderWidth:     csvBorderWidth,
			ColorIndex:      PaletteIndex(i),
		})
	}

	cfg := &Configuration{
		Type: chartType,
		Data: Data{Labels: labels, Datasets: datasets},
	}

	if title, ok := req.Title.Get(); ok {
		cfg.Options.Plugins = &Plugins{Title: &Title{Display: true, Text: title}}
	}
	cfg.Options.Scales = csvScales(req, scaleX, scaleY)

	// Shared checks such as positive values on logarithmic axes.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// csvScales attaches an axis block only for axes that received a header.
func csvScales(req CSVRequest, scaleX, scaleY ScaleType) *Scales {
	x := csvAxis(req.ScaleXType.IsSet(), scaleX, req.XAxisLabel)
	y := csvAxis(req.ScaleYType.IsSet(), scaleY, req.YAxisLabel)
	if x == nil && y == nil {
		return nil
	}
	return &Scales{X: x, Y: y}
}

func csvAxis(typeSet bool, scale ScaleType, label Optional[string]) *Axis {
	text, hasLabel := label.Get()
	if !typeSet && !hasLabel {
		return nil
	}

	axis := &Axis{}
	if typeSet {
		axis.Type = scale
	}
	if hasLabel {
		axis.Title = &Title{Display: true, Text: text}
	}
	return axis
}

// splitFields splits a CSV line on commas and trims each field.
func splitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseValues(index int, name, line string) ([]Point, error) {
	fields := splitFields(line)
	values := make([]Point, len(fields))
	for j, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, reject(ErrInvalidNumber,
				"dataset %d (%q) value %d (%q) is not a number", index, name, j+1, field)
		}
		values[j] = Value(v)
	}
	return values, nil
}
