// SPDX-License-Identifier: MIT
// Package astar_test contains fixtures shared by the astar tests.
package astar_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/astarlab/astar"
	"github.com/katalvlaran/astarlab/core"
	"github.com/stretchr/testify/require"
)

// newDiamond builds S(0,0), A(10,0), B(0,10), G(10,10) with S->A, S->B, A->G, B->G.
func newDiamond(t testing.TB) *core.SearchSpace {
	t.Helper()
	s := core.NewSearchSpace()
	addNodes(t, s, "S", 0, 0, "A", 10, 0, "B", 0, 10, "G", 10, 10)
	addLinks(t, s, "S", "A", "S", "B", "A", "G", "B", "G")

	return s
}

// addNodes adds (label, x, y) triples in order.
func addNodes(t testing.TB, s *core.SearchSpace, triples ...any) {
	t.Helper()
	require.Zero(t, len(triples)%3)
	for i := 0; i < len(triples); i += 3 {
		_, err := s.AddNode(triples[i].(string), core.Position{
			X: float64(triples[i+1].(int)),
			Y: float64(triples[i+2].(int)),
		})
		require.NoError(t, err)
	}
}

// addLinks adds (from, to) pairs in order.
func addLinks(t testing.TB, s *core.SearchSpace, pairs ...string) {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	for i := 0; i < len(pairs); i += 2 {
		_, err := s.AddLink(pairs[i], pairs[i+1])
		require.NoError(t, err)
	}
}

// randomSpace builds n nodes at random positions in [0,100)² with each
// ordered pair linked with probability p. Roughly 10% of links and of the
// nodes other than n0 and n{n-1} start disabled.
func randomSpace(t testing.TB, seed int64, n int, p float64) *core.SearchSpace {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	s := core.NewSearchSpace()
	for i := 0; i < n; i++ {
		enabled := i == 0 || i == n-1 || rng.Float64() >= 0.1
		_, err := s.AddNode(fmt.Sprintf("n%d", i),
			core.Position{X: rng.Float64() * 100, Y: rng.Float64() * 100},
			core.WithNodeEnabled(enabled))
		require.NoError(t, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() >= p {
				continue
			}
			_, err := s.AddLink(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", j),
				core.WithLinkEnabled(rng.Float64() >= 0.1))
			require.NoError(t, err)
		}
	}

	return s
}

// linkCutter records events and removes the link cut the moment the link
// after is traversed, leaving a child list that names a missing link.
type linkCutter struct {
	*astar.Recorder
	space *core.SearchSpace
	after [2]string
	cut   [2]string
}

func (c *linkCutter) LinkTraversed(from, to string) {
	c.Recorder.LinkTraversed(from, to)
	if from == c.after[0] && to == c.after[1] {
		_ = c.space.RemoveLink(c.cut[0], c.cut[1])
	}
}
