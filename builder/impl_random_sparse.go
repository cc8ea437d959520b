// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: include each ordered pair (i,j), i != j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required (ErrNeedRandSource): positions are random too.
//   - Nodes idFn(0..n-1) at uniform positions in a square of side
//     spacing*⌈√n⌉, drawn X then Y per node.
//   - Trials run i asc, then j asc; with WithBidirectional a drawn pair
//     i<j also adds j->i and the pair (j,i) is not drawn again.
//
// Complexity: O(n²) Bernoulli trials.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astarlab/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// nodes with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *core.SearchSpace, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := cfg.spacing * math.Ceil(math.Sqrt(float64(n)))
		for i := 0; i < n; i++ {
			pos := core.Position{X: round9(cfg.rng.Float64() * side), Y: round9(cfg.rng.Float64() * side)}
			if err := addNode(s, methodRandomSparse, cfg.idFn(i), pos); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			j0 := 0
			if cfg.bidirectional {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				if err := addLink(s, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
