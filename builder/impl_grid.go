// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes "r,c" at (c*spacing, r*spacing), row-major.
//   - For each (r,c): link to Right then Bottom if present. Grid moves are
//     meant to be symmetric, so reverse links are always emitted.
//
// Complexity: O(rows*cols) nodes and links.
package builder

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridLabel returns the label Grid assigns to cell (r, c).
func GridLabel(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(s *core.SearchSpace, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pos := core.Position{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}
				if err := addNode(s, methodGrid, GridLabel(r, c), pos); err != nil {
					return err
				}
			}
		}

		sym := cfg
		sym.bidirectional = true
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridLabel(r, c)
				if c+1 < cols {
					if err := addLink(s, sym, methodGrid, u, GridLabel(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLink(s, sym, methodGrid, u, GridLabel(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
