// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package upstream

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPlan_RunsIndependentStepsConcurrently(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	wg.Add(2)
	barrier := func(ctx context.Context) error {
		wg.Done()
		// Both steps must be running at once for the wait to finish.
		waited := make(chan struct{})
		go func() { wg.Wait(); close(waited) }()
		select {
		case <-waited:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("steps did not run concurrently")
		}
	}

	plan := NewPlan(
		Step{Name: "artist", Run: barrier},
		Step{Name: "top-tracks", Run: barrier},
	)
	if err := plan.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestPlan_RespectsDependencies(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var order []string
	record := func(name string) func(context.Context) error {
		return func(context.Context) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return nil
		}
	}

	plan := NewPlan(
		Step{Name: "weather", DependsOn: []string{"geo"}, Run: record("weather")},
		Step{Name: "geo", Run: record("geo")},
	)
	if err := plan.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(order) != 2 || order[0] != "geo" || order[1] != "weather" {
		t.Errorf("order = %v, want [geo weather]", order)
	}
}

func TestPlan_FailureSkipsDependents(t *testing.T) {
	t.Parallel()

	boom := errors.New("geo lookup failed")
	var dependentRan atomic.Bool

	plan := NewPlan(
		Step{Name: "geo", Run: func(context.Context) error { return boom }},
		Step{Name: "weather", DependsOn: []string{"geo"}, Run: func(context.Context) error {
			dependentRan.Store(true)
			return nil
		}},
	)
	err := plan.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
	if dependentRan.Load() {
		t.Error("dependent step ran after its dependency failed")
	}
}

func TestPlan_FailureCancelsSiblings(t *testing.T) {
	t.Parallel()

	boom := errors.New("albums failed")
	plan := NewPlan(
		Step{Name: "albums", Run: func(context.Context) error { return boom }},
		Step{Name: "related", Run: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return errors.New("sibling was not cancelled")
			}
		}},
	)
	if err := plan.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
}

func TestPlan_InvalidGraphs(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }
	tests := []struct {
		name    string
		steps   []Step
		wantErr string
	}{
		{"unknown dependency", []Step{{Name: "a", DependsOn: []string{"b"}, Run: noop}}, "unknown step"},
		{"cycle", []Step{
			{Name: "a", DependsOn: []string{"b"}, Run: noop},
			{Name: "b", DependsOn: []string{"a"}, Run: noop},
		}, "cycle"},
		{"duplicate", []Step{{Name: "a", Run: noop}, {Name: "a", Run: noop}}, "duplicate"},
		{"missing run", []Step{{Name: "a"}}, "no Run"},
	}
	for _, tt := range tests {
		err := NewPlan(tt.steps...).Run(context.Background())
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error = %v, want containing %q", tt.name, err, tt.wantErr)
		}
	}
}
