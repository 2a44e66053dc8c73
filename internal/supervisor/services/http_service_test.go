// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tripweaver/internal/logging"
)

var _ suture.Service = (*HTTPServerService)(nil)

// fakeServer blocks in ListenAndServe until Shutdown, unless listenErr is set.
type fakeServer struct {
	listenErr   error
	shutdownErr error

	started   chan struct{}
	stopped   chan struct{}
	stopOnce  sync.Once
	listens   atomic.Int32
	shutdowns atomic.Int32
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		started: make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.stopOnce.Do(func() { close(f.stopped) })
	return f.shutdownErr
}

func (f *fakeServer) waitStarted(t *testing.T) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("ListenAndServe was not called")
	}
}

// serveUntilCanceled starts svc, cancels it once listening and returns Serve's error.
func serveUntilCanceled(t *testing.T, svc *HTTPServerService, srv *fakeServer) error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	srv.waitStarted(t)
	cancel()

	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
		return nil
	}
}

func TestNewHTTPServerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{3 * time.Second, 3 * time.Second},
		{0, 10 * time.Second},
		{-time.Second, 10 * time.Second},
	}
	for _, tt := range tests {
		svc := NewHTTPServerService(newFakeServer(), tt.in)
		if svc.shutdownTimeout != tt.want {
			t.Errorf("NewHTTPServerService(%v): timeout = %v, want %v", tt.in, svc.shutdownTimeout, tt.want)
		}
		if svc.String() != "http-server" {
			t.Errorf("String() = %q, want http-server", svc.String())
		}
	}
}

func TestHTTPServerService_ListenerExit(t *testing.T) {
	t.Parallel()

	bindErr := errors.New("bind: address already in use")
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"bind failure is wrapped", bindErr, bindErr},
		{"closed server returns nil", http.ErrServerClosed, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newFakeServer()
			srv.listenErr = tt.err

			err := NewHTTPServerService(srv, time.Second).Serve(context.Background())
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Serve() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Serve() = %v, want wrapping %v", err, tt.wantErr)
			}
			if srv.shutdowns.Load() != 0 {
				t.Error("Shutdown called after the listener exited")
			}
		})
	}
}

// Not parallel: swaps the global logger.
func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })

	srv := newFakeServer()
	err := serveUntilCanceled(t, NewHTTPServerService(srv, 750*time.Millisecond), srv)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if got := srv.shutdowns.Load(); got != 1 {
		t.Errorf("Shutdown calls = %d, want 1", got)
	}
	out := buf.String()
	if !strings.Contains(out, "Shutting down HTTP server") || !strings.Contains(out, `"timeout":750`) {
		t.Errorf("shutdown log = %s", out)
	}
}

func TestHTTPServerService_ShutdownError(t *testing.T) {
	t.Parallel()

	shutdownErr := errors.New("connections still open")
	srv := newFakeServer()
	srv.shutdownErr = shutdownErr

	err := serveUntilCanceled(t, NewHTTPServerService(srv, time.Second), srv)
	if !errors.Is(err, shutdownErr) {
		t.Errorf("Serve() = %v, want wrapping %v", err, shutdownErr)
	}
}

func TestHTTPServerService_UnderSupervisor(t *testing.T) {
	t.Parallel()

	srv := newFakeServer()
	sup := suture.New("api-layer", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(NewHTTPServerService(srv, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	srv.waitStarted(t)
	cancel()
	<-errCh

	if srv.listens.Load() != 1 || srv.shutdowns.Load() != 1 {
		t.Errorf("listens = %d, shutdowns = %d, want 1 each", srv.listens.Load(), srv.shutdowns.Load())
	}
}
