// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/config"
	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/render"
)

// Translator turns request bodies into validated chart configurations.
type Translator interface {
	FromJSON(body []byte) (*chart.Configuration, error)
	FromCSV(req chart.CSVRequest, body string) (*chart.Configuration, error)
}

// ChartTranslator is the Translator backed by package chart.
type ChartTranslator struct{}

// FromJSON implements Translator.
func (ChartTranslator) FromJSON(body []byte) (*chart.Configuration, error) {
	return chart.DecodeJSON(body)
}

// FromCSV implements Translator.
func (ChartTranslator) FromCSV(req chart.CSVRequest, body string) (*chart.Configuration, error) {
	return chart.TranslateCSV(req, body)
}

// Handler serves the chart endpoints.
type Handler struct {
	translator Translator
	renderer   render.Renderer
	limits     config.RenderConfig
}

// NewHandler creates a Handler. A nil translator uses ChartTranslator.
func NewHandler(translator Translator, renderer render.Renderer, limits config.RenderConfig) *Handler {
	if translator == nil {
		translator = ChartTranslator{}
	}
	return &Handler{
		translator: translator,
		renderer:   renderer,
		limits:     limits,
	}
}

// RenderJSON renders a Chart.js-style JSON document.
//
// @Summary Render a chart from JSON
// @Description Accepts a Chart.js configuration ({type, data, options}) and returns a PNG.
// @Tags Charts
// @Accept json
// @Produce png
// @Param X-Width header int false "Image width in pixels" default(600)
// @Param X-Height header int false "Image height in pixels" default(400)
// @Param chart body object true "Chart.js configuration"
// @Success 200 {file} binary "Rendered PNG"
// @Failure 400 {object} APIResponse "Malformed, null or invalid chart"
// @Failure 401 {object} APIResponse "Missing or invalid X-Api-Token"
// @Failure 413 {object} APIResponse "Body over the configured limit"
// @Failure 500 {object} APIResponse "Rasterization failed"
// @Security ApiToken
// @Router /json [post]
func (h *Handler) RenderJSON(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dims, verr := parseDimensions(r, h.limits)
	if verr != nil {
		writeRequestValidationError(rw, verr)
		return
	}

	body, err := readBody(w, r, h.limits.MaxBodyBytes)
	if err != nil {
		h.writeBodyError(rw, err)
		return
	}

	cfg, err := h.translator.FromJSON(body)
	if err != nil {
		writeChartError(rw, sourceJSON, err)
		return
	}

	h.render(rw, cfg, dims)
}

// RenderCSV renders a chart from the header-driven CSV format.
//
// Line 0 of the body holds comma-separated labels. Dataset i occupies line
// 1+2i (its name) and line 2+2i (comma-separated values).
//
// @Summary Render a chart from CSV
// @Description Builds a chart from labels and datasets in a newline-delimited CSV body.
// @Tags Charts
// @Accept plain
// @Produce png
// @Param X-Number-Of-Datasets header int true "Number of datasets in the body"
// @Param X-Chart-Type header string false "Chart type" Enums(bar, line, scatter, bubble, pie, doughnut, polarArea, radar) default(line)
// @Param X-Title header string false "Chart title"
// @Param X-Label-X header string false "X axis title"
// @Param X-Label-Y header string false "Y axis title"
// @Param X-Scale-X-Type header string false "X axis scale" Enums(linear, logarithmic)
// @Param X-Scale-Y-Type header string false "Y axis scale" Enums(linear, logarithmic)
// @Param X-Width header int false "Image width in pixels" default(600)
// @Param X-Height header int false "Image height in pixels" default(400)
// @Param body body string true "CSV body"
// @Success 200 {file} binary "Rendered PNG"
// @Failure 400 {object} APIResponse "Invalid headers or CSV structure"
// @Failure 401 {object} APIResponse "Missing or invalid X-Api-Token"
// @Failure 413 {object} APIResponse "Body over the configured limit"
// @Failure 500 {object} APIResponse "Rasterization failed"
// @Security ApiToken
// @Router /csv [post]
func (h *Handler) RenderCSV(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dims, verr := parseDimensions(r, h.limits)
	if verr != nil {
		writeRequestValidationError(rw, verr)
		return
	}

	body, err := readBody(w, r, h.limits.MaxBodyBytes)
	if err != nil {
		h.writeBodyError(rw, err)
		return
	}

	cfg, err := h.translator.FromCSV(csvRequest(r), string(body))
	if err != nil {
		writeChartError(rw, sourceCSV, err)
		return
	}

	h.render(rw, cfg, dims)
}

func (h *Handler) render(rw *ResponseWriter, cfg *chart.Configuration, dims Dimensions) {
	img, err := h.renderer.Render(rw.r.Context(), cfg, dims.Width, dims.Height)
	if err != nil {
		writeRenderError(rw, cfg, err)
		return
	}
	rw.PNG(img)
}

func (h *Handler) writeBodyError(rw *ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		rw.PayloadTooLarge(h.limits.MaxBodyBytes)
		return
	}
	logging.Ctx(rw.r.Context()).Debug().Err(err).Msg("Failed to read request body")
	rw.BadRequest("Could not read request body")
}
