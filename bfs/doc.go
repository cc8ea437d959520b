// Package bfs provides breadth-first search over the enabled part of a
// core.SearchSpace, returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     enabled links into enabled nodes only.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from label → distance (links) from start
//   - Parent: map from label → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Answers "is the goal reachable at all?" before or after an A* run;
//     an Exhausted run must agree with an unreachable goal here.
//   - Depth equals the optimal cost under the fewest-links heuristic.
//
// Determinism
//
//	Children are enqueued in link-insertion order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = nodes, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(space, "S",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	if err != nil {
//	    // ErrSpaceNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, or a wrapped OnVisit error
//	}
//	path, err := result.PathTo("G")
//
// Errors
//
//   - ErrSpaceNil             if the search space pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist or is disabled.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if the neighbor lookup fails for any node.
//   - ErrNoPath               from PathTo for an unreached node.
package bfs
