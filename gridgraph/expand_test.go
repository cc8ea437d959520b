package gridgraph_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandIsland(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 0, 1},
		{1, 0, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)

	crossing, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	require.Len(t, crossing, 2)
	for _, l := range crossing {
		assert.Contains(t, []string{"1,0", "2,0", "1,1", "2,1"}, l)
	}
	assert.Contains(t, []string{"1,0", "1,1"}, crossing[0], "ordered from the source island")

	s, err := gg.ToSearchSpace()
	require.NoError(t, err)
	from, to := gg.LabelOf(comps[0][0]), gg.LabelOf(comps[1][0])
	res, err := astar.FindPath(context.Background(), s, from, to)
	require.NoError(t, err)
	assert.Equal(t, astar.Exhausted, res.Status)

	require.NoError(t, gridgraph.Bridge(s, crossing))
	for _, l := range crossing {
		n, ok := s.FindNode(l)
		require.True(t, ok)
		assert.True(t, n.Enabled())
	}
	res, err = astar.FindPath(context.Background(), s, from, to)
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.Status)
	assert.Len(t, gg.ConnectedComponents(), 2, "the grid itself is untouched")
}

func TestExpandIsland_PicksNarrowestCrossing(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 0, 0, 1},
		{1, 1, 1, 0, 1},
		{1, 0, 0, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Len(t, gg.ConnectedComponents(), 2)

	crossing, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"3,1"}, crossing)
}

func TestExpandIsland_Errors(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	_, err = gg.ExpandIsland(0, 5)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, err = gg.ExpandIsland(-1, 0)
	assert.ErrorIs(t, err, gridgraph.ErrComponentIndex)

	crossing, err := gg.ExpandIsland(0, 0)
	require.NoError(t, err)
	assert.Empty(t, crossing)

	s, err := gg.ToSearchSpace()
	require.NoError(t, err)
	assert.ErrorIs(t, gridgraph.Bridge(s, []string{"9,9"}), core.ErrNodeNotFound)
}
