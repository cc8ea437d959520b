package dfs_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarlab/core"
	"github.com/katalvlaran/astarlab/dfs"
)

// assertTopological checks that every link of s points forward in order.
func assertTopological(t *testing.T, s *core.SearchSpace, order []string) {
	t.Helper()
	require.Len(t, order, s.NodeCount())
	for _, l := range s.Links() {
		assert.Less(t, slices.Index(order, l.From()), slices.Index(order, l.To()), l.Label())
	}
}

func TestTopologicalSort_Diamond(t *testing.T) {
	s := diamond(t)
	order, err := dfs.TopologicalSort(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D", "F", "E"}, order)
	assertTopological(t, s, order)
}

func TestTopologicalSort_IgnoresEnabledFlags(t *testing.T) {
	s := diamond(t)
	want, err := dfs.TopologicalSort(s)
	require.NoError(t, err)

	require.NoError(t, s.SetLinkEnabled("B", "D", false))
	require.NoError(t, s.SetNodeEnabled("C", false))
	got, err := dfs.TopologicalSort(s)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	require.ErrorIs(t, err, dfs.ErrSpaceNil)

	_, err = dfs.TopologicalSort(build(t, [2]string{"A", "B"}, [2]string{"B", "A"}))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(build(t, [2]string{"A", "A"}))
	require.ErrorIs(t, err, dfs.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(diamond(t), dfs.WithCancelContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort_Empty(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewSearchSpace())
	require.NoError(t, err)
	assert.Empty(t, order)
}
