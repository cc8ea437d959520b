package openset_test

import (
	"testing"

	"github.com/katalvlaran/astarlab/openset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSet returns a set ordered by the mutable costs map.
func newSet(costs map[string]float64) *openset.Set[string] {
	return openset.New(func(s string) float64 { return costs[s] })
}

func TestInsert_Ordered(t *testing.T) {
	costs := map[string]float64{"a": 3, "b": 1, "c": 2, "d": 5}
	s := newSet(costs)
	for _, k := range []string{"a", "b", "c", "d"} {
		assert.True(t, s.Insert(k))
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, s.Items())
	assert.False(t, s.Insert("a"), "duplicates are rejected")
	assert.Equal(t, 4, s.Len())
}

func TestInsert_TieBreak(t *testing.T) {
	costs := map[string]float64{"old": 2, "new": 2, "low": 1, "high": 3}

	oldest := newSet(costs)
	newest := openset.NewWithTieBreak(func(s string) float64 { return costs[s] }, openset.NewestFirst)
	for _, k := range []string{"low", "high", "old", "new"} {
		oldest.Insert(k)
		newest.Insert(k)
	}

	assert.Equal(t, openset.OldestFirst, oldest.TieBreak())
	assert.Equal(t, []string{"low", "old", "new", "high"}, oldest.Items())
	// The newcomer lands before the first element with total >= its own.
	assert.Equal(t, []string{"low", "new", "old", "high"}, newest.Items())
	assert.Equal(t, "newest-first", newest.TieBreak().String())
}

func TestRemoveCheapest(t *testing.T) {
	costs := map[string]float64{"a": 2, "b": 1}
	s := newSet(costs)

	_, err := s.RemoveCheapest()
	require.ErrorIs(t, err, openset.ErrEmpty)
	_, ok := s.Peek()
	assert.False(t, ok)

	s.Insert("a")
	s.Insert("b")
	head, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", head)

	got, err := s.RemoveCheapest()
	require.NoError(t, err)
	assert.Equal(t, "b", got)
	assert.False(t, s.Contains("b"))
	assert.True(t, s.Contains("a"))
}

func TestResort_Stable(t *testing.T) {
	costs := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}
	s := newSet(costs)
	for _, k := range []string{"a", "b", "c", "d"} {
		s.Insert(k)
	}

	// d improves to tie with b; c improves below a.
	costs["d"] = 2
	costs["c"] = 0.5
	s.Resort()
	assert.Equal(t, []string{"c", "a", "b", "d"}, s.Items(), "b stays ahead of d on equal totals")
}

func TestRemoveAndClear(t *testing.T) {
	costs := map[string]float64{"a": 1, "b": 2}
	s := newSet(costs)
	s.Insert("a")
	s.Insert("b")

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, []string{"b"}, s.Items())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains("b"))
}

func TestNew_NilPanics(t *testing.T) {
	assert.Panics(t, func() { openset.New[string](nil) })
}
