// Package gridgraph treats a 2D terrain grid as an A* search space.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a LandThreshold.
//   - ToSearchSpace emits one node per cell at (x*CellSize, y*CellSize),
//     water cells disabled, and links to every neighbor (Conn4 or Conn8).
//     With Conn8 and the shortest-distance heuristic a diagonal step costs
//     √2·CellSize.
//   - ConnectedComponents finds land islands.
//   - ExpandIsland names the fewest water cells to enable so two islands
//     connect, found by Dijkstra over the grid's own search space;
//     Bridge enables them in a space built by ToSearchSpace.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H×d).
//   - ToSearchSpace:       O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadCellSize from NewGridGraph.
//   - ErrComponentIndex, ErrNoPath from ExpandIsland.
package gridgraph
