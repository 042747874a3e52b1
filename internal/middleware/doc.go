// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package middleware provides chi-compatible HTTP middleware shared by the
public and admin routers.

Key Components:

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counts, latency and in-flight gauge, labelled
    by chi route pattern so unmatched paths do not explode cardinality
  - AccessLog: one structured log line per request, warning on slow requests
  - SecurityHeaders: nosniff, frame denial and a locked-down CSP

Middleware Stack:

The public router applies them in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.SecurityHeaders)
	// CORS, rate limit and the token gate follow in package api

All middleware here is stateless and safe for concurrent use.
*/
package middleware
