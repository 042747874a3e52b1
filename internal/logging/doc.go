// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

// Package logging provides centralized zerolog-based structured logging for Plotwright.
//
// The package keeps a single global zerolog.Logger that is configured once
// from main() and read from everywhere else. Handlers log through Ctx(ctx),
// which attaches the request_id and correlation_id placed on the request
// context by the router's request ID middleware.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("port", 3000).Msg("Listening")
//	logging.Ctx(ctx).Warn().Str("chart_type", t).Msg("Rejected chart")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Supervisor Integration
//
// Suture v4 reports lifecycle events through log/slog. NewSlogLogger returns
// an slog.Logger whose records are written by the global zerolog logger, so
// supervisor events share the same output and format as the rest of the
// service.
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Never log request bodies or API tokens. Log sizes and identifiers instead.
package logging
