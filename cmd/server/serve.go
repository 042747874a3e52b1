// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/tomtom215/plotwright/internal/api"
	"github.com/tomtom215/plotwright/internal/auth"
	"github.com/tomtom215/plotwright/internal/cache"
	"github.com/tomtom215/plotwright/internal/config"
	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/metrics"
	"github.com/tomtom215/plotwright/internal/render"
	"github.com/tomtom215/plotwright/internal/supervisor"
	"github.com/tomtom215/plotwright/internal/supervisor/services"
)

const serverIdleTimeout = 60 * time.Second

// runServer wires every component and blocks until SIGINT/SIGTERM.
func runServer(parent context.Context, cfg *config.Config) error {
	logging.Info().
		Int("port", cfg.Server.Port).
		Str("cache_backend", cfg.Cache.Backend).
		Bool("admin_enabled", cfg.Server.AdminEnabled).
		Msg("Starting Plotwright with supervisor tree")
	metrics.SetAppInfo(version, runtime.Version())

	// The secret is read once; rotating it means restarting the process.
	secret, err := auth.LoadOrCreateSecret(cfg.Security.SecretPath)
	if err != nil {
		return fmt.Errorf("load token secret: %w", err)
	}
	tokens := auth.NewTokenManager(secret)

	store, err := cache.New(cfg.Cache)
	if err != nil {
		return fmt.Errorf("open render cache: %w", err)
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing render cache")
			}
		}()
	}

	plotter := render.NewPlotRenderer()
	handler := api.NewHandler(nil, render.NewCachingRenderer(plotter, store), cfg.Render)

	warnAboutSecurity(cfg)

	router := api.NewRouter(api.RouterOptions{
		Authenticator: tokens,
		Handler:       handler,
		Middleware:    api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)),
	})

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	server := newHTTPServer(cfg.Server, cfg.Server.Port, router)
	tree.AddAPIService(services.NewHTTPServerService("public-http", server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if cfg.Server.AdminEnabled {
		health := api.NewHealthHandler(api.RendererCheck(plotter))
		admin := newHTTPServer(cfg.Server, cfg.Server.AdminPort, api.NewAdminRouter(health))
		tree.AddAPIService(services.NewHTTPServerService("admin-http", admin, cfg.Server.ShutdownTimeout))
		logging.Info().Str("addr", admin.Addr).Msg("Admin server service added")
	}

	if sweeper, ok := store.(cache.Sweeper); ok {
		tree.AddMaintenanceService(services.NewCacheSweepService(sweeper, cfg.Cache.GCInterval))
		logging.Info().Dur("interval", cfg.Cache.GCInterval).Msg("Cache sweeper added to supervisor tree")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain remaining errors from the supervisor
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("supervised", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}

func newHTTPServer(cfg config.ServerConfig, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, port),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       serverIdleTimeout,
	}
}

func warnAboutSecurity(cfg *config.Config) {
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if slices.Contains(cfg.Security.CORSOrigins, "*") {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins for browser clients in production")
	}
	if cfg.Server.AdminEnabled && cfg.Server.Host == "0.0.0.0" {
		logging.Warn().
			Int("admin_port", cfg.Server.AdminPort).
			Msg("Admin port has no token gate and listens on all interfaces; restrict it at the network level")
	}
}
