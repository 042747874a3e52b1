// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package services provides suture.Service wrappers for Plotwright components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server (public chart port or admin port)
  - Converts ListenAndServe to Serve
  - Drains in-flight requests with a configurable shutdown timeout

Cache Sweeper (CacheSweepService):
  - Calls cache.Sweeper on a fixed interval
  - Memory backend: drops expired entries
  - Badger backend: runs value-log garbage collection
  - Sweep errors are logged, not returned, so a busy store never causes
    restart churn

# Return Semantics

  - nil: clean stop, suture will not restart
  - error: crash, suture restarts with backoff
  - ctx.Err(): shutdown requested
*/
package services
