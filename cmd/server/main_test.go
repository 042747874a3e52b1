// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/plotwright/internal/auth"
)

func TestParsePort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "3000", want: 3000},
		{arg: "1", want: 1},
		{arg: "65535", want: 65535},
		{arg: "0", wantErr: true},
		{arg: "65536", wantErr: true},
		{arg: "-1", wantErr: true},
		{arg: "http", wantErr: true},
		{arg: "", wantErr: true},
		{arg: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()
			got, err := parsePort(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePort(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parsePort(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	secretPath := filepath.Join(t.TempDir(), "secrets", ".jwtsecret")
	var out bytes.Buffer
	if err := issueToken(&out, secretPath, tokenRequest{User: "alice"}); err != nil {
		t.Fatalf("issueToken() error = %v", err)
	}

	secret, err := auth.LoadOrCreateSecret(secretPath)
	if err != nil {
		t.Fatalf("LoadOrCreateSecret() error = %v", err)
	}
	token := strings.TrimSpace(out.String())
	claims, err := auth.NewTokenManager(secret).Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.User != "alice" {
		t.Errorf("user = %q, want alice", claims.User)
	}
	if claims.ExpiresAt != nil {
		t.Errorf("ttl 0 token has expiry %v", claims.ExpiresAt)
	}
}

func TestIssueToken_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  tokenRequest
	}{
		{"empty user", tokenRequest{}},
		{"negative ttl", tokenRequest{User: "alice", TTL: -time.Hour}},
		{"user too long", tokenRequest{User: strings.Repeat("u", 257)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			secretPath := filepath.Join(t.TempDir(), ".jwtsecret")
			var out bytes.Buffer
			if err := issueToken(&out, secretPath, tt.req); err == nil {
				t.Fatal("issueToken() error = nil, want validation error")
			}
			if out.Len() != 0 {
				t.Errorf("output %q written on failure", out.String())
			}
		})
	}
}

func TestTokenCommand(t *testing.T) {
	secretPath := filepath.Join(t.TempDir(), ".jwtsecret")
	t.Setenv("JWT_SECRET_PATH", secretPath)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "bob", "--ttl", "1h"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	secret, err := auth.LoadOrCreateSecret(secretPath)
	if err != nil {
		t.Fatalf("LoadOrCreateSecret() error = %v", err)
	}
	claims, err := auth.NewTokenManager(secret).Parse(strings.TrimSpace(out.String()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.User != "bob" || claims.ExpiresAt == nil {
		t.Errorf("claims = %+v, want user bob with expiry", claims)
	}
}

func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"3000", "4000"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want too many arguments")
	}
}
