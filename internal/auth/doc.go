// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

/*
Package auth gates chart requests behind a signed API token.

Every request must carry an HS256 JWT in the X-Api-Token header. Tokens are
signed with a secret that is generated once and persisted next to the
process (".jwtsecret" by default), so tokens survive restarts:

	secret, err := auth.LoadOrCreateSecret(cfg.Security.SecretPath)
	tokens := auth.NewTokenManager(secret)
	router.Use(auth.Gate(tokens, onDenied))

Tokens are issued out of band with "plotwright token <user>".

# Security

  - Only HMAC signing methods are accepted; "none" and RSA/ECDSA tokens are
    rejected to prevent algorithm confusion.
  - The gate never reads the request body and never explains why a token
    was rejected. The reason is only recorded in api_auth_failures_total.
  - The secret file is written with mode 0600.
*/
package auth
