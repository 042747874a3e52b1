// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret-that-is-long-enough-for-hs256")

func TestTokenManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret)

	token, err := m.Issue("alice", 0)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !m.Verify(token) {
		t.Error("Verify() = false for freshly issued token")
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.User != "alice" {
		t.Errorf("claims.User = %q, want alice", claims.User)
	}
	if claims.ExpiresAt != nil {
		t.Errorf("zero ttl set ExpiresAt = %v", claims.ExpiresAt)
	}
}

func TestTokenManager_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager(testSecret)
	m.now = func() time.Time { return now }

	token, err := m.Issue("bob", time.Hour)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if !m.Verify(token) {
		t.Fatal("token rejected before expiry")
	}

	now = now.Add(2 * time.Hour)
	if m.Verify(token) {
		t.Error("expired token accepted")
	}
}

func TestTokenManager_Rejects(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret)
	other := NewTokenManager([]byte("a-different-secret"))

	foreign, err := other.Issue("mallory", 0)
	if err != nil {
		t.Fatal(err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{User: "eve"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", foreign},
		{"alg none", unsigned},
		{"truncated", foreign[:len(foreign)-4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if m.Verify(tt.token) {
				t.Errorf("Verify(%q) = true, want false", tt.token)
			}
		})
	}
}

func TestTokenManager_IssueErrors(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret)
	if _, err := m.Issue("", 0); err == nil {
		t.Error("expected error for empty user")
	}
	if _, err := m.Issue("alice", -time.Second); err == nil {
		t.Error("expected error for negative ttl")
	}
}
