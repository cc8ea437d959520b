// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// helpers.go - shared node/link emission and layout helpers.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astarlab/core"
)

// addNode inserts label at pos, wrapping failures with the method tag.
func addNode(s *core.SearchSpace, method, label string, pos core.Position) error {
	if _, err := s.AddNode(label, pos); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w: %w", method, label, ErrConstructFailed, err)
	}

	return nil
}

// addLink inserts u->v and, when cfg.bidirectional, v->u right after it.
func addLink(s *core.SearchSpace, cfg builderConfig, method, u, v string) error {
	if _, err := s.AddLink(u, v); err != nil {
		return fmt.Errorf("%s: AddLink(%s): %w: %w", method, core.LinkLabel(u, v), ErrConstructFailed, err)
	}
	if !cfg.bidirectional || u == v {
		return nil
	}
	if _, err := s.AddLink(v, u); err != nil {
		return fmt.Errorf("%s: AddLink(%s): %w: %w", method, core.LinkLabel(v, u), ErrConstructFailed, err)
	}

	return nil
}

// ringPosition places index i of n on a circle of radius n*spacing/(2π),
// so neighboring nodes are roughly spacing apart. Coordinates are rounded to
// 1e-9 to keep fixtures stable across platforms.
func ringPosition(i, n int, spacing float64) core.Position {
	if n == 1 {
		return core.Position{}
	}
	r := float64(n) * spacing / (2 * math.Pi)
	theta := 2 * math.Pi * float64(i) / float64(n)

	return core.Position{X: round9(r * math.Cos(theta)), Y: round9(r * math.Sin(theta))}
}

func round9(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// disableLinks switches off each link with probability cfg.disableProb, in
// link insertion order.
func disableLinks(s *core.SearchSpace, cfg builderConfig) error {
	p := cfg.disableProb
	if p == 0 {
		return nil
	}
	if cfg.rng == nil && p < 1 {
		return fmt.Errorf("disable links: %w", ErrNeedRandSource)
	}
	for _, l := range s.Links() {
		if p == 1 || cfg.rng.Float64() < p {
			l.SetEnabled(false)
		}
	}

	return nil
}
