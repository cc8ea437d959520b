// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1) on a ring, counter-clockwise from (r, 0).
//   - Links i -> (i+1) mod n for i=0..n-1.
package builder

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(s *core.SearchSpace, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := addNode(s, methodCycle, cfg.idFn(i), ringPosition(i, n, cfg.spacing)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := addLink(s, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
