// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1) at (i*spacing, 0).
//   - Links (i-1) -> i for i=1..n-1 in increasing order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *core.SearchSpace, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			pos := core.Position{X: float64(i) * cfg.spacing}
			if err := addNode(s, methodPath, cfg.idFn(i), pos); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addLink(s, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
