// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/config"
	"github.com/tomtom215/plotwright/internal/validation"
)

// Request headers.
const (
	headerWidth        = "X-Width"
	headerHeight       = "X-Height"
	headerChartType    = "X-Chart-Type"
	headerDatasetCount = "X-Number-Of-Datasets"
	headerTitle        = "X-Title"
	headerLabelX       = "X-Label-X"
	headerLabelY       = "X-Label-Y"
	headerScaleX       = "X-Scale-X-Type"
	headerScaleY       = "X-Scale-Y-Type"
)

// Dimensions is the requested output size in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// parseDimensions reads X-Width and X-Height, falling back to the configured
// defaults when a header is absent.
func parseDimensions(r *http.Request, limits config.RenderConfig) (Dimensions, *validation.RequestValidationError) {
	width, verr := parseDimension(r, headerWidth, limits.DefaultWidth, limits.MaxWidth)
	if verr != nil {
		return Dimensions{}, verr
	}
	height, verr := parseDimension(r, headerHeight, limits.DefaultHeight, limits.MaxHeight)
	if verr != nil {
		return Dimensions{}, verr
	}
	return Dimensions{Width: width, Height: height}, nil
}

func parseDimension(r *http.Request, name string, def, maxValue int) (int, *validation.RequestValidationError) {
	raw, ok := optionalHeader(r, name).Get()
	if !ok {
		return def, nil
	}
	if verr := validation.ValidateVar(name, raw, "required,number"); verr != nil {
		return 0, verr
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		// Only overflow gets here; "number" already checked the digits.
		value = maxValue + 1
	}
	if verr := validation.ValidateVar(name, value, fmt.Sprintf("gte=1,lte=%d", maxValue)); verr != nil {
		return 0, verr
	}
	return value, nil
}

// csvRequest collects the CSV headers. A header that is present with an
// empty value is distinct from one that was never sent.
func csvRequest(r *http.Request) chart.CSVRequest {
	return chart.CSVRequest{
		ChartType:    optionalHeader(r, headerChartType),
		DatasetCount: optionalHeader(r, headerDatasetCount),
		Title:        optionalHeader(r, headerTitle),
		XAxisLabel:   optionalHeader(r, headerLabelX),
		YAxisLabel:   optionalHeader(r, headerLabelY),
		ScaleXType:   optionalHeader(r, headerScaleX),
		ScaleYType:   optionalHeader(r, headerScaleY),
	}
}

func optionalHeader(r *http.Request, name string) chart.Optional[string] {
	values, ok := r.Header[textproto.CanonicalMIMEHeaderKey(name)]
	if !ok || len(values) == 0 {
		return chart.None[string]()
	}
	return chart.Some(values[0])
}

// errBodyTooLarge is returned by readBody when the limit is exceeded.
var errBodyTooLarge = errors.New("request body too large")

// readBody buffers at most limit bytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errBodyTooLarge
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}
