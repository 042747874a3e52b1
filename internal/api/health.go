// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/metrics"
	"github.com/tomtom215/plotwright/internal/render"
)

// readinessTimeout bounds the whole readiness probe.
const readinessTimeout = 5 * time.Second

// ReadinessCheck is one named dependency probe.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	startTime time.Time
	checks    []ReadinessCheck
}

// NewHealthHandler creates a HealthHandler running checks on every readiness probe.
func NewHealthHandler(checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{startTime: time.Now(), checks: checks}
}

// HealthLive handles liveness probe requests.
// Returns 200 OK as long as the process can serve HTTP.
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startTime).Seconds()
	metrics.AppUptime.Set(uptime)
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": uptime,
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only if every readiness check passes.
//
// @Summary Readiness probe
// @Description Returns 200 OK when the renderer can produce an image, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	ready := true
	results := make(map[string]string, len(h.checks))
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			ready = false
			results[c.Name] = err.Error()
			logging.Ctx(ctx).Warn().Err(err).Str("check", c.Name).Msg("Readiness check failed")
			continue
		}
		results[c.Name] = "ok"
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).JSON(status, ready, map[string]interface{}{
		"ready":  ready,
		"checks": results,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// RendererCheck renders a tiny probe chart. Pass the uncached renderer so
// the probe exercises rasterization every time.
func RendererCheck(renderer render.Renderer) ReadinessCheck {
	probe := &chart.Configuration{
		Type: chart.TypeBar,
		Data: chart.Data{
			Labels:   []string{"probe"},
			Datasets: []chart.Dataset{{Label: "probe", Data: []chart.Point{chart.Value(1)}}},
		},
	}
	return ReadinessCheck{
		Name: "renderer",
		Check: func(ctx context.Context) error {
			_, err := renderer.Render(ctx, probe, 32, 32)
			return err
		},
	}
}
