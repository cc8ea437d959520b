package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/katalvlaran/astarlab/bfs"
	"github.com/katalvlaran/astarlab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds labels[0] -> labels[1] -> ... with unit spacing on the X axis.
func chain(t testing.TB, labels ...string) *core.SearchSpace {
	t.Helper()
	s := core.NewSearchSpace()
	for i, l := range labels {
		_, err := s.AddNode(l, core.Position{X: float64(i)})
		require.NoError(t, err)
		if i > 0 {
			_, err = s.AddLink(labels[i-1], l)
			require.NoError(t, err)
		}
	}

	return s
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrSpaceNil)

	s := chain(t, "A", "B")
	_, err = bfs.BFS(s, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, s.SetNodeEnabled("A", false))
	_, err = bfs.BFS(s, "A")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound, "a disabled start is unusable")

	_, err = bfs.BFS(s, "B", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_DiamondDepths checks layering on S -> {A, B} -> G.
func TestBFS_DiamondDepths(t *testing.T) {
	s := core.NewSearchSpace()
	for _, l := range []string{"S", "A", "B", "G"} {
		_, err := s.AddNode(l, core.Position{})
		require.NoError(t, err)
	}
	for _, p := range [][2]string{{"S", "A"}, {"S", "B"}, {"A", "G"}, {"B", "G"}} {
		_, err := s.AddLink(p[0], p[1])
		require.NoError(t, err)
	}

	res, err := bfs.BFS(s, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "G"}, res.Order)
	assert.Equal(t, map[string]int{"S": 0, "A": 1, "B": 1, "G": 2}, res.Depth)
	assert.Equal(t, "A", res.Parent["G"], "first parent in insertion order wins")

	// Links are directed.
	res, err = bfs.BFS(s, "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"G"}, res.Order)
}

// TestBFS_SkipsDisabled ensures disabled links and nodes are treated as absent.
func TestBFS_SkipsDisabled(t *testing.T) {
	s := chain(t, "A", "B", "C", "D")
	_, err := s.AddLink("A", "C")
	require.NoError(t, err)

	require.NoError(t, s.SetLinkEnabled("A", "C", false))
	res, err := bfs.BFS(s, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth["D"])

	require.NoError(t, s.SetLinkEnabled("A", "C", true))
	res, err = bfs.BFS(s, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth["D"])

	require.NoError(t, s.SetNodeEnabled("C", false))
	res, err = bfs.BFS(s, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.False(t, res.Reached("D"))
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	s := chain(t, "A", "B", "C")
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(s, "A", bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain links.
func TestBFS_FilterNeighbor(t *testing.T) {
	s := chain(t, "A", "B", "C")
	res, err := bfs.BFS(s, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_SelfLoop ensures a self-loop does not enqueue the node twice.
func TestBFS_SelfLoop(t *testing.T) {
	s := chain(t, "A", "B")
	_, err := s.AddLink("A", "A")
	require.NoError(t, err)
	res, err := bfs.BFS(s, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence.
func TestBFS_Hooks(t *testing.T) {
	s := chain(t, "A", "B", "C")
	var enq, deq, vis []string
	entry := func(label string, d int) string { return label + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(s, "A",
		bfs.WithOnEnqueue(func(l string, d int) { enq = append(enq, entry(l, d)) }),
		bfs.WithOnDequeue(func(l string, d int) { deq = append(deq, entry(l, d)) }),
		bfs.WithOnVisit(func(l string, d int) error { vis = append(vis, entry(l, d)); return nil }),
	)
	require.NoError(t, err)
	want := []string{"A@0", "B@1", "C@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_VisitError stops the traversal and wraps the hook error.
func TestBFS_VisitError(t *testing.T) {
	s := chain(t, "A", "B", "C")
	stop := errors.New("stop")
	res, err := bfs.BFS(s, "A", bfs.WithOnVisit(func(l string, _ int) error {
		if l == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	s := chain(t, "X", "Y", "Z")
	require.NoError(t, s.SetLinkEnabled("Y", "Z", false))
	res, err := bfs.BFS(s, "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)

	path, err = res.PathTo("Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, path)

	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	labels := make([]string, 100)
	for i := range labels {
		labels[i] = fmt.Sprintf("v%d", i)
	}
	s := chain(t, labels...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(s, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
