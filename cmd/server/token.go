// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/plotwright/internal/auth"
	"github.com/tomtom215/plotwright/internal/validation"
)

// tokenRequest is validated before the secret is touched.
type tokenRequest struct {
	User string        `validate:"required,max=256"`
	TTL  time.Duration `validate:"gte=0s"`
}

func newTokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <user>",
		Short: "Issue an X-Api-Token signed with the persisted secret.",
		Long: `Issue prints a signed token to stdout. The secret file is created if it
does not exist yet, so a token issued before the first server start stays
valid afterwards. --ttl 0 (the default) issues a token that never expires.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(nil)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = cfg.Security.TokenTTL
			}
			return issueToken(cmd.OutOrStdout(), cfg.Security.SecretPath, tokenRequest{User: args[0], TTL: ttl})
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime; 0 never expires")
	return cmd
}

func issueToken(out io.Writer, secretPath string, req tokenRequest) error {
	if verr := validation.ValidateStruct(req); verr != nil {
		return verr
	}

	secret, err := auth.LoadOrCreateSecret(secretPath)
	if err != nil {
		return err
	}
	token, err := auth.NewTokenManager(secret).Issue(req.User, req.TTL)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, token)
	return err
}
