// Package dfs implements depth-first traversal, topological ordering and
// cycle detection over a core.SearchSpace.
//
// What:
//
//   - DFS: explores enabled links into enabled nodes, children in
//     link-insertion order. Supports pre-/post-order hooks, cancellation,
//     depth limiting, link filtering and forest traversal.
//   - TopologicalSort: orders all nodes so every link points forward;
//     ErrCycleDetected otherwise. Used to reject cyclic network imports.
//   - DetectCycles: lists the cycles closed by back links, each in its
//     minimal rotation, sorted by signature.
//
// The last two work on structure and ignore enabled flags.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E+C·L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrSpaceNil             search space pointer is nil
//   - ErrStartVertexNotFound  start node missing or disabled
//   - ErrCycleDetected        TopologicalSort met a back link
//   - ErrNeighborFetch        a child lookup failed
//   - context.Canceled        traversal cancelled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
