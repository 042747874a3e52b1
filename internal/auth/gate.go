// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package auth

import (
	"net/http"

	"github.com/tomtom215/plotwright/internal/logging"
	"github.com/tomtom215/plotwright/internal/metrics"
)

// TokenHeader carries the API token.
const TokenHeader = "X-Api-Token"

// Gate returns middleware that rejects requests whose X-Api-Token does not
// verify. Rejection happens before the body is read or a route is matched.
// onDenied writes the 401 response; nil falls back to a plain-text reply.
func Gate(authn Authenticator, onDenied http.HandlerFunc) func(http.Handler) http.Handler {
	if onDenied == nil {
		onDenied = func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				metrics.RecordAuthFailure("missing")
				onDenied(w, r)
				return
			}
			if !authn.Verify(token) {
				metrics.RecordAuthFailure("invalid")
				logging.Ctx(r.Context()).Debug().Str("remote_addr", r.RemoteAddr).Msg("Rejected API token")
				onDenied(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
