// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package upstream

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Step is one outbound call in a Plan. Run writes its result into a
// variable owned by the caller; a step only starts after every step named in
// DependsOn finished successfully, so it may read those results freely.
type Step struct {
	Name      string
	DependsOn []string
	Run       func(ctx context.Context) error
}

// Plan runs a set of steps concurrently, honouring their dependencies. The
// first failing step cancels the rest and its error is returned.
type Plan struct {
	steps []Step
}

// NewPlan creates a plan from steps.
func NewPlan(steps ...Step) *Plan {
	return &Plan{steps: steps}
}

// Run executes the plan. It validates the dependency graph before any step
// starts and returns an error for unknown dependencies or cycles.
func (p *Plan) Run(ctx context.Context) error {
	if err := p.validate(); err != nil {
		return err
	}

	done := make(map[string]chan struct{}, len(p.steps))
	for _, s := range p.steps {
		done[s.Name] = make(chan struct{})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range p.steps {
		s := s
		g.Go(func() error {
			for _, dep := range s.DependsOn {
				select {
				case <-done[dep]:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			if err := s.Run(gctx); err != nil {
				return err
			}
			close(done[s.Name])
			return nil
		})
	}
	return g.Wait()
}

func (p *Plan) validate() error {
	index := make(map[string]Step, len(p.steps))
	for _, s := range p.steps {
		if s.Name == "" {
			return fmt.Errorf("plan step without name")
		}
		if s.Run == nil {
			return fmt.Errorf("plan step %q has no Run function", s.Name)
		}
		if _, dup := index[s.Name]; dup {
			return fmt.Errorf("duplicate plan step %q", s.Name)
		}
		index[s.Name] = s
	}
	for _, s := range p.steps {
		for _, dep := range s.DependsOn {
			if _, ok := index[dep]; !ok {
				return fmt.Errorf("plan step %q depends on unknown step %q", s.Name, dep)
			}
		}
	}

	// Depth-first search with three colours detects cycles.
	const (
		white = iota
		grey
		black
	)
	colour := make(map[string]int, len(p.steps))
	var visit func(name string) error
	visit = func(name string) error {
		switch colour[name] {
		case grey:
			return fmt.Errorf("plan has a dependency cycle through %q", name)
		case black:
			return nil
		}
		colour[name] = grey
		for _, dep := range index[name].DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		colour[name] = black
		return nil
	}
	for _, s := range p.steps {
		if err := visit(s.Name); err != nil {
			return err
		}
	}
	return nil
}
