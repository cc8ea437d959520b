// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   - Constructors never panic; option constructors (WithX) panic on
//     meaningless input.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic step requires WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the space could not be mutated as requested
// (nil constructor, label collision with an earlier constructor, ...).
var ErrConstructFailed = errors.New("builder: construction failed")
