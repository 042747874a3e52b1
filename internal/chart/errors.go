// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"errors"
	"fmt"
)

// Rejection reasons. Each *ValidationError wraps exactly one of these.
var (
	ErrUnknownChartType    = errors.New("unknown chart type")
	ErrMissingDatasetCount = errors.New("missing dataset count")
	ErrInvalidDatasetCount = errors.New("invalid dataset count")
	ErrUnknownScaleType    = errors.New("unknown scale type")
	ErrInsufficientLines   = errors.New("insufficient body lines")
	ErrLengthMismatch      = errors.New("dataset length does not match labels")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrMalformedJSON       = errors.New("malformed JSON")
	ErrNullChart           = errors.New("null chart")
	ErrNoDatasets          = errors.New("no datasets")
	ErrInvalidColor        = errors.New("invalid color")
	ErrNonPositiveLogValue = errors.New("non-positive value on logarithmic axis")
)

// ValidationError is returned for any input that cannot become a chart.
// Message is safe to show to the client.
type ValidationError struct {
	Reason  error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func reject(reason error, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
