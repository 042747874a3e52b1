// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package config provides centralized configuration management for Plotwright.

Configuration is layered with koanf. Built-in defaults are loaded first,
an optional YAML file overrides them, and environment variables override
both. The listening port may finally be overridden by the positional CLI
argument handled in cmd/server.

# Configuration Sources

  - Defaults: defaultConfig() in koanf.go
  - Config file: CONFIG_PATH, or the first of DefaultConfigPaths that exists
  - Environment variables: see envTransformFunc for the full mapping

# Environment Variables

HTTP Server:
  - HTTP_PORT: Listen port (default: 3000)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT / HTTP_WRITE_TIMEOUT: Request timeouts (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ADMIN_ENABLED / ADMIN_PORT: Metrics, health and docs listener (default: true, 9090)

Security:
  - JWT_SECRET_PATH: Persisted signing secret (default: .jwtsecret)
  - TOKEN_TTL: Lifetime of tokens issued by "plotwright token" (default: 0, no expiry)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT

Rendering:
  - RENDER_DEFAULT_WIDTH / RENDER_DEFAULT_HEIGHT (default: 600x400)
  - RENDER_MAX_WIDTH / RENDER_MAX_HEIGHT (default: 4096)
  - RENDER_MAX_BODY_BYTES (default: 1048576)

Render Cache:
  - CACHE_BACKEND: none, memory or badger (default: memory)
  - CACHE_CAPACITY, CACHE_TTL, CACHE_PATH, CACHE_GC_INTERVAL

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    return fmt.Errorf("load configuration: %w", err)
	}
*/
package config
