// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package supervisor provides process supervision for Plotwright using suture v4.

The tree isolates the listeners from background maintenance:

	RootSupervisor ("plotwright")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── CacheSweepService (memory or badger cache only)
	└── APISupervisor ("api-layer")
	    ├── HTTPServerService ("public-http")
	    └── HTTPServerService ("admin-http", if admin is enabled)

A sweeper that keeps failing backs off inside its own layer without
touching the chart listener.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService("public-http", server, 10*time.Second))
	tree.AddMaintenanceService(services.NewCacheSweepService(store, 5*time.Minute))

	errCh := tree.ServeBackground(ctx)

# Configuration

TreeConfig defaults match suture's own:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Logging

Supervisor events (service panics, terminations, backoff) go through
sutureslog into the slog adapter backed by zerolog, so they share the
application's log format.

# Debugging Shutdown Issues

UnstoppedServiceReport lists services that ignored cancellation for longer
than ShutdownTimeout. The usual culprit is a render stuck in rasterization;
renders check their context before starting but cannot be interrupted
midway.
*/
package supervisor
