// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/plotwright/internal/config"
	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/validation"
)

// newRootCmd builds `plotwright [port]`, which runs the server.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plotwright [port]",
		Short: "Render Chart.js JSON and CSV chart descriptions to PNG.",
		Long: `Plotwright serves POST /, /json and /csv and answers with PNG images.
Every request must carry an X-Api-Token issued with "plotwright token".`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
	root.AddCommand(newTokenCmd())
	return root
}

// loadConfig loads koanf configuration, applies the positional port, and
// initializes logging.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if len(args) > 0 {
		port, err := parsePort(args[0])
		if err != nil {
			return nil, err
		}
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	return cfg, nil
}

// parsePort validates the positional port argument.
func parsePort(arg string) (int, error) {
	if verr := validation.ValidateVar("port", arg, "required,number"); verr != nil {
		return 0, fmt.Errorf("invalid port %q: %w", arg, verr)
	}
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", arg, err)
	}
	if verr := validation.ValidateVar("port", port, "gte=1,lte=65535"); verr != nil {
		return 0, fmt.Errorf("invalid port %q: %w", arg, verr)
	}
	return port, nil
}
