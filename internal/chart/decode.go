// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// DecodeJSON parses a Chart.js configuration document and validates it.
func DecodeJSON(body []byte) (*Configuration, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, reject(ErrMalformedJSON, "malformed JSON: request body is empty")
	}
	if bytes.Equal(body, []byte("null")) {
		return nil, reject(ErrNullChart, "chart is null")
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, reject(ErrMalformedJSON, "malformed JSON: chart must be a JSON object")
	}
	if len(probe) == 0 {
		return nil, reject(ErrNullChart, "chart is empty")
	}

	var cfg Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, reject(ErrMalformedJSON, "malformed JSON: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
