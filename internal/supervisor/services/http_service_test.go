// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// fakeServer stands in for *http.Server. When block is set, ListenAndServe
// parks until Shutdown is called.
type fakeServer struct {
	startErr    error
	shutdownErr error
	block       bool

	started   chan struct{}
	released  chan struct{}
	once      sync.Once
	serves    atomic.Int32
	shutdowns atomic.Int32
}

func newFakeServer(block bool) *fakeServer {
	return &fakeServer{
		block:    block,
		started:  make(chan struct{}, 8),
		released: make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.serves.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	switch {
	case f.startErr != nil:
		return f.startErr
	case f.block:
		<-f.released
		return http.ErrServerClosed
	default:
		return nil
	}
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.once.Do(func() { close(f.released) })
	return f.shutdownErr
}

func waitStarted(t *testing.T, f *fakeServer) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("ListenAndServe was not called")
	}
}

func TestNewHTTPServerService_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		inName      string
		inTimeout   time.Duration
		wantName    string
		wantTimeout time.Duration
	}{
		{"explicit values", "public-http", 3 * time.Second, "public-http", 3 * time.Second},
		{"empty name", "", time.Second, "http-server", time.Second},
		{"zero timeout", "admin-http", 0, "admin-http", 10 * time.Second},
		{"negative timeout", "admin-http", -5 * time.Second, "admin-http", 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServerService(tt.inName, newFakeServer(false), tt.inTimeout)
			if got := svc.String(); got != tt.wantName {
				t.Errorf("String() = %q, want %q", got, tt.wantName)
			}
			if svc.shutdownTimeout != tt.wantTimeout {
				t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, tt.wantTimeout)
			}
		})
	}
}

func TestHTTPServerService_ServeReturnsWithoutCancel(t *testing.T) {
	t.Parallel()

	bindErr := errors.New("bind: address already in use")
	tests := []struct {
		name     string
		startErr error
		wantErr  error
	}{
		{"listener failure is reported", bindErr, bindErr},
		{"server closed is not an error", http.ErrServerClosed, nil},
		{"clean return", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newFakeServer(false)
			srv.startErr = tt.startErr

			err := NewHTTPServerService("public-http", srv, time.Second).Serve(context.Background())
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Serve() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Serve() = %v, want wrapping %v", err, tt.wantErr)
			}
			if srv.shutdowns.Load() != 0 {
				t.Error("Shutdown should not be called when the listener fails")
			}
		})
	}
}

func TestHTTPServerService_ServeDrainsOnCancel(t *testing.T) {
	t.Parallel()

	drainErr := errors.New("drain deadline exceeded")
	tests := []struct {
		name        string
		shutdownErr error
		wantErr     error
	}{
		{"graceful drain", nil, context.Canceled},
		{"drain failure", drainErr, drainErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newFakeServer(true)
			srv.shutdownErr = tt.shutdownErr
			svc := NewHTTPServerService("public-http", srv, time.Second)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- svc.Serve(ctx) }()

			waitStarted(t, srv)
			cancel()

			select {
			case err := <-done:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Serve() = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Serve did not return after cancel")
			}
			if got := srv.shutdowns.Load(); got != 1 {
				t.Errorf("Shutdown calls = %d, want 1", got)
			}
		})
	}
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()

	server := &http.Server{
		Addr: "127.0.0.1:0",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
		ReadHeaderTimeout: time.Second,
	}
	svc := NewHTTPServerService("real-http", server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestHTTPServerService_RestartedBySupervisor(t *testing.T) {
	t.Parallel()

	// A listener that exits cleanly is restarted by suture.
	srv := newFakeServer(false)
	sup := suture.New("listener-test", suture.Spec{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewHTTPServerService("public-http", srv, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	waitStarted(t, srv)
	waitStarted(t, srv)

	cancel()
	<-errCh

	if got := srv.serves.Load(); got < 2 {
		t.Errorf("ListenAndServe calls = %d, want at least 2", got)
	}
}
