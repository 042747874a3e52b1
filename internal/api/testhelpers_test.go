// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package api

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/plotwright/internal/auth"
	"github.com/tomtom215/plotwright/internal/chart"
	"github.com/tomtom215/plotwright/internal/config"
	"github.com/tomtom215/plotwright/internal/render"
)

var testLimits = config.RenderConfig{
	DefaultWidth:  200,
	DefaultHeight: 150,
	MaxWidth:      1000,
	MaxHeight:     800,
	MaxBodyBytes:  4096,
}

const validJSONChart = `{"type":"bar","data":{"labels":["a","b"],"datasets":[{"label":"s","data":[1,2]}]}}`

const validCSVBody = "Jan,Feb,Mar\nSales\n1,2,3\nCosts\n3,2,1"

var testSecret = []byte("router-test-secret")

// validToken issues a non-expiring token for testSecret.
func validToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewTokenManager(testSecret).Issue("tester", 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return token
}

// spyTranslator counts calls and delegates to ChartTranslator.
type spyTranslator struct {
	calls atomic.Int32
}

func (s *spyTranslator) FromJSON(body []byte) (*chart.Configuration, error) {
	s.calls.Add(1)
	return ChartTranslator{}.FromJSON(body)
}

func (s *spyTranslator) FromCSV(req chart.CSVRequest, body string) (*chart.Configuration, error) {
	s.calls.Add(1)
	return ChartTranslator{}.FromCSV(req, body)
}

// stubRenderer returns a fixed result.
type stubRenderer struct {
	img []byte
	err error
}

func (s stubRenderer) Render(context.Context, *chart.Configuration, int, int) ([]byte, error) {
	return s.img, s.err
}

type testServer struct {
	handler    http.Handler
	translator *spyTranslator
}

func newTestServer(t *testing.T, renderer render.Renderer, mwConfig *ChiMiddlewareConfig) *testServer {
	t.Helper()
	if renderer == nil {
		renderer = render.NewPlotRenderer()
	}
	if mwConfig == nil {
		mwConfig = DefaultChiMiddlewareConfig()
		mwConfig.RateLimitDisabled = true
	}
	spy := &spyTranslator{}
	router := NewRouter(RouterOptions{
		Authenticator: auth.NewTokenManager(testSecret),
		Handler:       NewHandler(spy, renderer, testLimits),
		Middleware:    NewChiMiddleware(mwConfig),
		SlowRequest:   time.Minute,
	})
	return &testServer{handler: router, translator: spy}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func newChartRequest(t *testing.T, method, target, body string, headers map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(auth.TokenHeader, validToken(t))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return resp
}

func assertPNG(t *testing.T, rec *httptest.ResponseRecorder, width, height int) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %q)", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		t.Errorf("image size = %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}
}
