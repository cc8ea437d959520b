// Package astar implements a steppable, cancellable A* search over a
// core.SearchSpace whose nodes and links can be enabled, disabled or moved
// while the search is running.
//
// Three layers:
//
//   - Stepper: the synchronous state machine. One Step pops the cheapest open
//     node, expands it, relaxes its children in insertion order and re-sorts
//     the open set. Callers decide when to step.
//   - Engine: a controller that owns one Stepper at a time and runs it on a
//     dedicated goroutine, continuously (optionally throttled by a minimum step
//     delay) or one Advance at a time. It supports Cancel/Reset, a heuristic
//     switch while idle, and pacing changes at any time.
//   - FindPath: a one-shot helper that runs a Stepper to completion.
//
// State machine:
//
//	Idle --Start--> Running --> Found | Exhausted | Error
//	Running --Cancel/Reset--> Idle  (the Result reports Cancelled)
//
// Per-run bookkeeping (cost from start, estimate to goal, path parent) lives
// in an arena keyed by node label, never on the graph, so consecutive runs
// over the same SearchSpace are independent.
//
// Relaxation rule, for a child B of the expanded node A:
//
//	tentative = g(A) + EdgeCost(A, B)
//	relax if B has no state yet, or tentative < g(B), or B's recorded route
//	crosses a link/node that was disabled after it was recorded.
//
// A node popped with such a stale route is not expanded: every stale state is
// dropped (NodeInvalidated) and each closed node with a usable link into the
// dropped region is reopened (NodeReopened), so disabling part of the graph
// mid-run never yields a path over the disabled part.
//
// Mid-run re-enabling and node moves are honoured from the next relaxation on,
// but do not revisit nodes that were already closed.
//
// Example:
//
//	res, err := astar.FindPath(ctx, space, "S", "G",
//	    astar.WithHeuristic(heuristic.ShortestDistance),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Status, res.Path, res.Path.Cost)
package astar
