// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices): "Center" plus n-1 leaves.
//   - "Center" at the origin, leaves idFn(0..n-2) on a ring around it.
//   - Links Center -> leaf in leaf order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterLabel is the fixed label of the hub in Star.
	CenterLabel = "Center"
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(s *core.SearchSpace, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := addNode(s, methodStar, CenterLabel, core.Position{}); err != nil {
			return err
		}
		leaves := n - 1
		for i := 0; i < leaves; i++ {
			pos := ringPosition(i, leaves, cfg.spacing)
			if leaves == 1 {
				pos = core.Position{X: cfg.spacing}
			}
			if err := addNode(s, methodStar, cfg.idFn(i), pos); err != nil {
				return err
			}
		}
		for i := 0; i < leaves; i++ {
			if err := addLink(s, cfg, methodStar, CenterLabel, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
