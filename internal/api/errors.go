// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/metrics"
	"github.com/tomtom215/plotwright/internal/render"
	"github.com/tomtom215/plotwright/internal/validation"
)

// Rejection sources for chart_rejections_total.
const (
	sourceJSON    = "json"
	sourceCSV     = "csv"
	sourceHeaders = "headers"
)

// messageInvalidChart is the only detail a client gets when the renderer
// cannot plot a configuration that otherwise validated.
const messageInvalidChart = "Invalid chart input"

// rejectionReasons maps chart rejection sentinels to metric labels.
var rejectionReasons = map[error]string{
	chart.ErrUnknownChartType:    "unknown_chart_type",
	chart.ErrMissingDatasetCount: "missing_dataset_count",
	chart.ErrInvalidDatasetCount: "invalid_dataset_count",
	chart.ErrUnknownScaleType:    "unknown_scale_type",
	chart.ErrInsufficientLines:   "insufficient_lines",
	chart.ErrLengthMismatch:      "length_mismatch",
	chart.ErrInvalidNumber:       "invalid_number",
	chart.ErrMalformedJSON:       "malformed_json",
	chart.ErrNullChart:           "null_chart",
	chart.ErrNoDatasets:          "no_datasets",
	chart.ErrInvalidColor:        "invalid_color",
	chart.ErrNonPositiveLogValue: "non_positive_log_value",
}

func rejectionReason(err error) string {
	for sentinel, label := range rejectionReasons {
		if errors.Is(err, sentinel) {
			return label
		}
	}
	return "other"
}

// writeChartError answers a translator failure. Validation errors carry a
// client-safe message; anything else is unexpected and becomes a 500.
func writeChartError(rw *ResponseWriter, source string, err error) {
	var ve *chart.ValidationError
	if !errors.As(err, &ve) {
		logging.Ctx(rw.r.Context()).Error().Err(err).Str("source", source).Msg("Chart translation failed")
		rw.InternalError("Failed to process chart input")
		return
	}

	reason := rejectionReason(ve)
	metrics.RecordRejection(source, reason)
	logging.Ctx(rw.r.Context()).Debug().Str("source", source).Str("reason", reason).Msg(ve.Message)
	rw.ValidationError(ve.Message, map[string]interface{}{"reason": reason})
}

// writeRequestValidationError answers a header that failed validation.
func writeRequestValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	metrics.RecordRejection(sourceHeaders, "invalid_header")
	apiErr := verr.ToAPIError()
	rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

// writeRenderError maps renderer failures: unplottable charts are the
// client's fault (400), everything else is ours (500).
func writeRenderError(rw *ResponseWriter, cfg *chart.Configuration, err error) {
	logger := logging.Ctx(rw.r.Context())

	switch {
	case errors.Is(err, render.ErrInvalidChart):
		logger.Debug().Err(err).Str("chart_type", cfg.Type.String()).Msg("Renderer rejected chart")
		rw.BadRequest(messageInvalidChart)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Debug().Err(err).Msg("Render abandoned")
		rw.ServiceUnavailable("Render canceled")
	default:
		logger.Error().Err(err).Str("chart_type", cfg.Type.String()).Msg("Render failed")
		rw.InternalError("Failed to render chart")
	}
}
