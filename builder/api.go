// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// api.go - public entry point and factory index for the builder package.
//
// Design contract:
//   - One orchestrator: BuildSpace(bopts, cons...). Creates the SearchSpace,
//     resolves cfg, runs cons in order.
//   - Every factory places its nodes on the plane; A* heuristics read those
//     positions, so a fixture is meaningful for both FewestLinks and
//     ShortestDistance.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     spaces (labels, positions, link order, enabled flags).
//   - Safety: never panic at build time; return sentinel errors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

// Constructor applies a deterministic mutation to s using the resolved
// builderConfig. Constructors validate parameters before adding anything.
type Constructor func(s *core.SearchSpace, cfg builderConfig) error

// BuildSpace creates a new core.SearchSpace, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildSpace: %w" and returned
// immediately; no partial cleanup is attempted.
//
// After all constructors ran, WithDisabledLinks (if set) switches off a
// seeded random share of the links.
func BuildSpace(bopts []BuilderOption, cons ...Constructor) (*core.SearchSpace, error) {
	s := core.NewSearchSpace()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSpace: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSpace: %w", err)
		}
	}
	if err := disableLinks(s, cfg); err != nil {
		return nil, fmt.Errorf("BuildSpace: %w", err)
	}

	return s, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure:
//   - Adds nodes via cfg.idFn (except Grid's fixed "r,c" labels and Star's "Center").
//   - Emits links in a stable, documented order; with WithBidirectional every
//     link is followed by its reverse.
//
// Path(n)              n ≥ 2, nodes on a horizontal line.
// Cycle(n)             n ≥ 3, nodes on a circle.
// Star(n)              n ≥ 2, "Center" at the origin, leaves on a circle.
// Complete(n)          n ≥ 1, nodes on a circle, every ordered pair linked.
// Grid(rows, cols)     rows, cols ≥ 1, 4-neighborhood, labels "r,c".
// RandomSparse(n, p)   n ≥ 1, 0 ≤ p ≤ 1, random positions, needs an RNG for 0<p<1.
