package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ComponentOf returns the index of the component containing (x,y), or -1 for
// water and out-of-bounds cells.
func (gg *GridGraph) ComponentOf(comps [][]int, x, y int) int {
	if !gg.IsLand(x, y) {
		return -1
	}
	target := gg.index(x, y)
	for ci, comp := range comps {
		for _, i := range comp {
			if i == target {
				return ci
			}
		}
	}

	return -1
}
