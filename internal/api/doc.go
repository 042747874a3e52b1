// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package api serves the chart rendering HTTP surface.

# Routes

The public router accepts any method on three paths:

	/       JSON chart document (Chart.js shape) -> PNG
	/json   same as /
	/csv    header-driven CSV body -> PNG

Everything else is 404. Every request, matched or not, must first pass the
X-Api-Token gate, so an unauthenticated client cannot probe for routes.

The admin router runs on its own listener:

	/metrics        Prometheus exposition
	/health/live    liveness probe
	/health/ready   readiness probe
	/swagger/*      Swagger UI

# Middleware Stack

Applied to every public request, outermost first:

 1. middleware.RequestID (X-Request-ID + logging context)
 2. chi RealIP and Recoverer
 3. middleware.PrometheusMetrics and AccessLog
 4. middleware.SecurityHeaders
 5. CORS (go-chi/cors)
 6. rate limit (go-chi/httprate, per client IP)
 7. auth.Gate

# Responses

Successful renders are image/png. Failures use the JSON envelope:

	{
	  "success": false,
	  "error": {
	    "code": "VALIDATION_FAILED",
	    "message": "dataset \"B\" has 3 values but there are 2 labels",
	    "request_id": "0b8a4c84-..."
	  },
	  "meta": {"timestamp": "...", "request_id": "0b8a4c84-..."}
	}

The status line and the complete body are written together; a request never
receives a partial image.
*/
package api
