// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1) on a ring.
//   - Links i -> j for every ordered pair i != j, i asc then j asc. The
//     bidirectional option is ignored: both directions already exist.
//
// Complexity: O(n²) links.
package builder

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n nodes.
func Complete(n int) Constructor {
	return func(s *core.SearchSpace, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := addNode(s, methodComplete, cfg.idFn(i), ringPosition(i, n, cfg.spacing)); err != nil {
				return err
			}
		}
		directed := cfg
		directed.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addLink(s, directed, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
