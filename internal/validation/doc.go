// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built lazily and shared, since the
// library caches per-type struct metadata. Field errors are translated into
// short human-readable messages and can be converted into the API error
// shape used by internal/api.
//
// # Quick Start
//
//	type TokenRequest struct {
//	    User string `name:"user" validate:"required,max=128"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    // respond 400 with apiErr.Code and apiErr.Message
//	}
//
// Field names in messages come from the `name` struct tag when present.
// ValidateVar checks a single value whose limits are only known at runtime,
// such as the X-Width header against the configured maximum width.
package validation
