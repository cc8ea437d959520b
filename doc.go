// Package astarlab is a workbench for watching A* search at work on small
// directed graphs whose nodes and links can be switched on and off while a
// search runs.
//
// What is astarlab?
//
//	A thread-safe search space plus a steppable A* engine and the classic
//	traversals to check it against:
//		• Search space: labelled nodes on a plane, directed links, enabled flags
//		• Heuristics: fewest links or shortest euclidean distance
//		• A*: one-shot FindPath, or an Engine that pauses between expansions
//		• References: Dijkstra, BFS and DFS over the same space
//		• Fixtures: topology builders and terrain grids
//		• Graph files: YAML/JSON, HCL with variables, and XDSL networks
//
// Every search event (a node expanded, a link traversed, a disabled element
// met, the goal found) reaches an Observer in order, so a front end can
// animate the run and a test can assert on it.
//
// Layout:
//
//	core/       SearchSpace, Node, Link, Position and the enabled-flag model
//	heuristic/  link pricing and goal estimates (FewestLinks, ShortestDistance)
//	openset/    the ordered frontier with a configurable tie-break
//	astar/      Stepper, Engine, FindPath, observers, run metrics and spans
//	dijkstra/   uniform-cost oracle priced like either heuristic
//	bfs/, dfs/  reachability, topological order, cycle detection
//	builder/    deterministic fixtures: path, cycle, star, complete, grid, random
//	gridgraph/  terrain grids, islands and bridges as search spaces
//	cmd/astar   the command line: run, compare, reach, inspect, generate
//
// Quick ASCII example:
//
//	    S───►A
//	    │    │
//	    ▼    ▼
//	    B───►G
//
//	With B disabled, every run from S to G goes through A.
//
//	go install github.com/katalvlaran/astarlab/cmd/astar@latest
package astarlab
