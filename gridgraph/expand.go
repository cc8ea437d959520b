package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/dijkstra"
)

// bridgeSource is the virtual node that feeds every source-island cell.
// Cell labels are "x,y", so it cannot collide with one.
const bridgeSource = "bridge:source"

// ExpandIsland finds the fewest water cells to enable so that island srcComp
// reaches island dstComp, both indices into ConnectedComponents().
//
// The search runs on the grid's own search space with every cell enabled.
// A virtual source links to each srcComp cell, and a link costs 1 when it
// enters water and 0 when it enters land, so the shortest distance to a
// dstComp cell is the number of water cells crossed. Among equally cheap
// targets the first in ConnectedComponents order wins.
//
// Returns the labels of the water cells on the crossing, ordered from
// srcComp towards dstComp; Bridge applies them to a space built by
// ToSearchSpace. An island expanded onto itself needs no crossing.
//
// Complexity: O(W·H·d·log(W·H)) time, O(W·H·d) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]string, error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, ErrComponentIndex
	}

	space, water, err := gg.crossingSpace(comps[srcComp])
	if err != nil {
		return nil, err
	}
	dist, prev, err := dijkstra.Dijkstra(space,
		dijkstra.Source(bridgeSource),
		dijkstra.WithReturnPath(),
		dijkstra.WithEdgeCost(func(_, to core.Position) float64 {
			x := int(math.Round(to.X / gg.CellSize))
			y := int(math.Round(to.Y / gg.CellSize))
			if gg.IsLand(x, y) {
				return 0
			}

			return 1
		}))
	if err != nil {
		return nil, fmt.Errorf("gridgraph: expand island: %w", err)
	}

	target, best := "", math.Inf(1)
	for _, i := range comps[dstComp] {
		if d := dist[gg.LabelOf(i)]; d < best {
			target, best = gg.LabelOf(i), d
		}
	}
	if target == "" {
		return nil, ErrNoPath
	}
	labels, err := dijkstra.PathTo(dist, prev, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	}

	var crossing []string
	for _, l := range labels[1:] {
		if water[l] {
			crossing = append(crossing, l)
		}
	}

	return crossing, nil
}

// crossingSpace builds the grid space with water enabled and the virtual
// source linked to every cell of island. It also reports which labels are water.
func (gg *GridGraph) crossingSpace(island []int) (*core.SearchSpace, map[string]bool, error) {
	space, err := gg.ToSearchSpace()
	if err != nil {
		return nil, nil, err
	}
	water := make(map[string]bool)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.IsLand(x, y) {
				continue
			}
			water[Label(x, y)] = true
			if err = space.SetNodeEnabled(Label(x, y), true); err != nil {
				return nil, nil, err
			}
		}
	}

	outside := core.Position{X: -gg.CellSize, Y: -gg.CellSize}
	if _, err = space.AddNode(bridgeSource, outside); err != nil {
		return nil, nil, err
	}
	for _, i := range island {
		if _, err = space.AddLink(bridgeSource, gg.LabelOf(i)); err != nil {
			return nil, nil, err
		}
	}

	return space, water, nil
}

// Bridge enables the named water nodes in space, turning a crossing found
// by ExpandIsland into land the search can use.
func Bridge(space *core.SearchSpace, crossing []string) error {
	for _, label := range crossing {
		if err := space.SetNodeEnabled(label, true); err != nil {
			return fmt.Errorf("gridgraph: bridge %s: %w", label, err)
		}
	}

	return nil
}
