// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/plotwright/internal/auth"
	"github.com/tomtom215/plotwright/internal/middleware"
)

// Public routes.
const (
	routeRoot = "/"
	routeJSON = "/json"
	routeCSV  = "/csv"
)

// defaultSlowRequest is the AccessLog warning threshold.
const defaultSlowRequest = 2 * time.Second

// RouterOptions wires the public router.
type RouterOptions struct {
	Authenticator auth.Authenticator
	Handler       *Handler
	Middleware    *ChiMiddleware
	// SlowRequest overrides the slow-request log threshold.
	SlowRequest time.Duration
}

// NewRouter builds the public chart router.
//
// The token gate is global middleware, so it runs before route matching:
// an unauthenticated request gets 401 on every path, including unknown ones.
func NewRouter(opts RouterOptions) http.Handler {
	mw := opts.Middleware
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	slow := opts.SlowRequest
	if slow == 0 {
		slow = defaultSlowRequest
	}

	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(slow))
	r.Use(middleware.SecurityHeaders)
	r.Use(mw.CORS()) // CORS must precede the gate to answer OPTIONS preflight
	r.Use(mw.RateLimit())
	r.Use(auth.Gate(opts.Authenticator, func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Unauthorized()
	}))

	// ========================
	// Chart Endpoints
	// ========================
	// Any method is accepted.
	h := opts.Handler
	r.HandleFunc(routeRoot, h.RenderJSON)
	r.HandleFunc(routeJSON, h.RenderJSON)
	r.HandleFunc(routeCSV, h.RenderCSV)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound()
	})

	return r
}
