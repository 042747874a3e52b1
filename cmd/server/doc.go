// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package main is the entry point for the Plotwright server.

Plotwright accepts chart descriptions over HTTP, either as a Chart.js
configuration document or as a header-driven CSV body, and answers with a
PNG image.

# Commands

	plotwright [port]            serve charts (port overrides HTTP_PORT, default 3000)
	plotwright token <user>      print an X-Api-Token signed with the persisted secret
	    --ttl 24h                token lifetime; 0 never expires

# Application Architecture

	RootSupervisor ("plotwright")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache sweeper (memory or badger cache)
	└── APISupervisor ("api-layer")
	    ├── Public HTTP server (/, /json, /csv behind the token gate)
	    └── Admin HTTP server (/metrics, /health/*, /swagger/*)

Component initialization order:

 1. Configuration: Koanf v2 defaults, optional YAML file, environment, port argument
 2. Logging: zerolog with JSON/console output
 3. Secret: .jwtsecret read or generated (base64 of 128 random bytes)
 4. Authenticator: HS256 token verification
 5. Render cache: none, in-memory LRU, or Badger
 6. Renderer: gonum/plot rasterizer behind the caching decorator
 7. Routers: Chi public and admin routers
 8. Supervisor Tree: Suture v4 process supervision
 9. Signal handling and graceful shutdown

# Configuration

	Priority: port argument > Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=3000               # chart port
	ADMIN_ENABLED=true           # serve /metrics and health on ADMIN_PORT
	ADMIN_PORT=9090
	JWT_SECRET_PATH=.jwtsecret   # created on first start
	TOKEN_TTL=0                  # default lifetime for "plotwright token"
	RENDER_MAX_BODY_BYTES=1048576
	CACHE_BACKEND=memory         # none, memory, badger
	CACHE_PATH=/data/render-cache
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	CONFIG_PATH=/etc/plotwright/config.yaml

# Example

	plotwright token alice > token.txt
	curl -s -X POST http://localhost:3000/csv \
	  -H "X-Api-Token: $(cat token.txt)" \
	  -H "X-Number-Of-Datasets: 1" -H "X-Chart-Type: bar" \
	  --data-binary $'Mon,Tue,Wed\nVisitors\n12,19,7' -o chart.png
*/
package main
