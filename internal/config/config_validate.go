// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/plotwright/internal/logging"
)

// Validate checks the loaded configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if err := validatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if c.Server.AdminEnabled {
		if err := validatePort("server.admin_port", c.Server.AdminPort); err != nil {
			return err
		}
		if c.Server.AdminPort == c.Server.Port {
			return fmt.Errorf("server.admin_port must differ from server.port (both %d)", c.Server.Port)
		}
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must not be negative")
	}
	return nil
}

// validatePort accepts the TCP port range 1-65535.
func validatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if strings.TrimSpace(c.Security.SecretPath) == "" {
		return fmt.Errorf("security.secret_path is required")
	}
	if c.Security.TokenTTL < 0 {
		return fmt.Errorf("security.token_ttl must not be negative")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("security.rate_limit_reqs must be positive when rate limiting is enabled")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive when rate limiting is enabled")
		}
	}
	return nil
}

func (c *Config) validateRender() error {
	r := c.Render
	if r.MaxWidth <= 0 || r.MaxHeight <= 0 {
		return fmt.Errorf("render.max_width and render.max_height must be positive")
	}
	if r.DefaultWidth <= 0 || r.DefaultWidth > r.MaxWidth {
		return fmt.Errorf("render.default_width must be between 1 and %d, got %d", r.MaxWidth, r.DefaultWidth)
	}
	if r.DefaultHeight <= 0 || r.DefaultHeight > r.MaxHeight {
		return fmt.Errorf("render.default_height must be between 1 and %d, got %d", r.MaxHeight, r.DefaultHeight)
	}
	if r.MaxBodyBytes <= 0 {
		return fmt.Errorf("render.max_body_bytes must be positive, got %d", r.MaxBodyBytes)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheBackendNone:
		return nil
	case CacheBackendMemory:
		if c.Cache.Capacity <= 0 {
			return fmt.Errorf("cache.capacity must be positive for the memory backend")
		}
	case CacheBackendBadger:
		if strings.TrimSpace(c.Cache.Path) == "" {
			return fmt.Errorf("cache.path is required for the badger backend")
		}
		if c.Cache.GCInterval <= 0 {
			return fmt.Errorf("cache.gc_interval must be positive for the badger backend")
		}
	default:
		return fmt.Errorf("cache.backend must be one of none, memory, badger; got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error, disabled; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console; got %q", c.Logging.Format)
	}
	return nil
}
