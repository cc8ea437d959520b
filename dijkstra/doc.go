// Package dijkstra provides a reference single-source shortest-path solver
// over the enabled part of a core.SearchSpace.
//
// Overview:
//
//   - Input: a *core.SearchSpace and a source label. Disabled nodes and
//     disabled links are invisible to the solver.
//   - Cost:  each link is priced by an EdgeCost over the positions of its
//     endpoints. UnitCost counts hops; EuclideanCost uses straight-line
//     distance. Both match the per-link costs of the astar heuristics.
//   - Output: dist (label → cost, +Inf when unreachable) and, on request,
//     prev (label → predecessor) for PathTo.
//
// Role in the module:
//
// A* with an admissible heuristic must return a path whose cost equals the
// Dijkstra distance to the goal on the same enabled subgraph. The astar
// property tests and the `astar compare` command use this package as that
// oracle.
//
// Algorithm outline:
//
//  1. Snapshot the enabled subgraph (EnabledView).
//  2. dist[source] = 0, every other node +Inf; push source onto a min-heap.
//  3. Pop the smallest tentative distance; skip stale entries and settled
//     nodes; stop once the minimum exceeds MaxDistance.
//  4. Relax each outgoing link: if dist[u]+w < dist[v], record it and push v.
//
// Complexity:
//
//   - Time:  O((V + E) log V).
//   - Space: O(V + E).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(space,
//	    dijkstra.Source("S"),
//	    dijkstra.WithEdgeCost(dijkstra.EuclideanCost),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.PathTo(dist, prev, "G")
//	fmt.Println(path, dist["G"])
package dijkstra
