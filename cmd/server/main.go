// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package main

import (
	"os"

	_ "github.com/tomtom215/plotwright/docs" // Import generated swagger docs
	"github.com/tomtom215/plotwright/internal/logging"
)

// Set by the release build.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Error().Err(err).Msg("Plotwright exited with error")
		os.Exit(1)
	}
}
