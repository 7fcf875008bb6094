// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/inkwell-labs/inkwell/internal/logging"
)

// fakeEngine counts Reload invocations.
type fakeEngine struct {
	calls atomic.Int64
	err   error
}

func (f *fakeEngine) Reload(_ context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestRebuildService_RebuildOnStartup(t *testing.T) {
	engine := &fakeEngine{}
	svc := NewRebuildService(engine, RebuildServiceConfig{
		RebuildOnStartup: true,
		RebuildInterval:  time.Hour,
	}, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
	if got := engine.calls.Load(); got != 1 {
		t.Errorf("Reload calls = %d, want 1", got)
	}
}

func TestRebuildService_ScheduledRebuilds(t *testing.T) {
	engine := &fakeEngine{}
	svc := NewRebuildService(engine, RebuildServiceConfig{
		RebuildOnStartup: false,
		RebuildInterval:  10 * time.Millisecond,
	}, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = svc.Serve(ctx)

	if got := engine.calls.Load(); got < 2 {
		t.Errorf("Reload calls = %d, want at least 2", got)
	}
}

func TestRebuildService_SurvivesReloadErrors(t *testing.T) {
	engine := &fakeEngine{err: errors.New("database gone")}
	svc := NewRebuildService(engine, RebuildServiceConfig{
		RebuildOnStartup: true,
		RebuildInterval:  10 * time.Millisecond,
	}, logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() error = %v, want context.DeadlineExceeded", err)
	}
	if got := engine.calls.Load(); got < 2 {
		t.Errorf("Reload calls = %d, want retries despite errors", got)
	}
}

func TestRebuildService_String(t *testing.T) {
	svc := NewRebuildService(&fakeEngine{}, RebuildServiceConfig{}, logging.NewTestLogger(io.Discard))
	if svc.String() != "rebuild-service" {
		t.Errorf("String() = %q, want rebuild-service", svc.String())
	}
}
