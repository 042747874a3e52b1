// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

// Package main provides the Plotwright HTTP server
//
// @title Plotwright API
// @version 1.0
// @description Renders Chart.js-style JSON documents and header-driven CSV into PNG images.
// @description
// @description ## Authentication
// @description
// @description Every chart endpoint requires an `X-Api-Token` header holding an HS256 JWT
// @description signed with the server's persisted secret. Issue one with `plotwright token <user>`.
// @description Requests without a valid token get 401 before routing, so unknown paths also answer 401.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_FAILED",
// @description     "message": "number of datasets is required",
// @description     "details": {"reason": "missing_dataset_count"},
// @description     "request_id": "..."
// @description   },
// @description   "meta": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/plotwright/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey ApiToken
// @in header
// @name X-Api-Token
// @description HS256 JWT signed with the server secret. Issue one with `plotwright token <user>`.
//
// @tag.name Charts
// @tag.description Chart rendering from Chart.js JSON or header-driven CSV
//
// @tag.name Health
// @tag.description Liveness and readiness probes served on the admin port
package main
