// Package gridgraph turns a 2D grid of integer cell values into a
// core.SearchSpace and analyses its land regions. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.SearchSpace with cell positions
//   - Identification of connected components of "land" cells
//   - Minimal water-to-land conversions between components
//
// Cells with value < LandThreshold are "water"; cells with value ≥ LandThreshold are "land".
package gridgraph

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/astarlab/core"
)

// AttrValue is the node attribute holding the original cell value.
const AttrValue = "value"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCellSize for CellSize <= 0.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		CellSize:      opts.CellSize,
		offsets:       offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the neighbor offsets in clockwise order from north.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Label formats the node label for cell (x,y).
func Label(x, y int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y)
}

// ToSearchSpace converts the grid into a *core.SearchSpace.
//
// Every cell becomes a node "x,y" at (x*CellSize, y*CellSize) carrying its
// value under AttrValue. Water cells are added disabled, so toggling terrain
// later is a SetNodeEnabled call. Each cell links to every in-bounds
// neighbor in NeighborOffsets order; the reverse link comes from the
// neighbor's own pass.
//
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToSearchSpace() (*core.SearchSpace, error) {
	s := core.NewSearchSpace()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			pos := core.Position{X: float64(x) * gg.CellSize, Y: float64(y) * gg.CellSize}
			_, err := s.AddNode(Label(x, y), pos,
				core.WithNodeEnabled(gg.IsLand(x, y)),
				core.WithAttr(AttrValue, strconv.Itoa(gg.CellValues[y][x])))
			if err != nil {
				return nil, fmt.Errorf("gridgraph: AddNode(%s): %w", Label(x, y), err)
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			for _, d := range gg.offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				if _, err := s.AddLink(Label(x, y), Label(nx, ny)); err != nil {
					return nil, fmt.Errorf("gridgraph: AddLink(%s): %w", core.LinkLabel(Label(x, y), Label(nx, ny)), err)
				}
			}
		}
	}

	return s, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// LabelOf returns the node label of a row-major index.
func (gg *GridGraph) LabelOf(idx int) string {
	return Label(gg.Coordinate(idx))
}
