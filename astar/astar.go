// SPDX-License-Identifier: MIT
package astar

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/astarlab/core"
)

// FindPath runs a complete search from start to goal without pacing.
//
// Preconditions and validation (in order):
//  1. space must be non-nil (ErrNilSpace).
//  2. start and goal must be non-empty (ErrEmptyLabel).
//  3. start and goal must exist (ErrStartNotFound, ErrGoalNotFound).
//  4. the heuristic must resolve (ErrHeuristicUnset).
//
// Returns:
//   - Result with Status Found (Path set), Exhausted, Error or Cancelled.
//   - error: configuration errors, a *StructuralError, or ctx.Err().
//
// Exhaustion is not an error: Status == Exhausted with a nil error.
// Links the run disabled because their target node was disabled are
// re-enabled before FindPath returns.
//
// Complexity:
//   - Time O(E·V) in the worst case (linear open set), Space O(V).
func FindPath(ctx context.Context, space *core.SearchSpace, start, goal string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s, err := newStepper(space, start, goal, cfg)
	if err != nil {
		return Result{}, err
	}
	space.ClearTraveled()
	// Traveled markers stay for inspection; enabled flags go back to the caller's.
	defer s.reenable()

	runID := uuid.NewString()
	began := time.Now()
	ctx, span := startRunSpan(ctx, runID, start, goal, s)
	defer span.End()

	res, err := s.Run(ctx)
	res.RunID = runID
	setRunSpanResult(span, res)
	recordRunMetrics(ctx, s, time.Since(began))

	return res, err
}
