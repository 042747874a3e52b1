// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Render   RenderConfig   `koanf:"render"`
	Cache    CacheConfig    `koanf:"cache"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds the public and admin listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	AdminEnabled    bool          `koanf:"admin_enabled"`
	AdminPort       int           `koanf:"admin_port"`
}

// SecurityConfig holds token and request-throttling settings.
type SecurityConfig struct {
	SecretPath        string        `koanf:"secret_path"`
	TokenTTL          time.Duration `koanf:"token_ttl"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RenderConfig bounds what a single request may ask the renderer for.
type RenderConfig struct {
	DefaultWidth  int   `koanf:"default_width"`
	DefaultHeight int   `koanf:"default_height"`
	MaxWidth      int   `koanf:"max_width"`
	MaxHeight     int   `koanf:"max_height"`
	MaxBodyBytes  int64 `koanf:"max_body_bytes"`
}

// CacheConfig selects and sizes the rendered-image cache.
type CacheConfig struct {
	// Backend is one of none, memory, badger.
	Backend    string        `koanf:"backend"`
	Capacity   int           `koanf:"capacity"`
	TTL        time.Duration `koanf:"ttl"`
	Path       string        `koanf:"path"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Cache backends.
const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
)
