// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/astarlab/core"
	"github.com/stretchr/testify/require"
)

// Common labels used across core tests.
const (
	LabelS = "S"
	LabelA = "A"
	LabelB = "B"
	LabelG = "G"
)

// newDiamond builds S->A, S->B, A->G, B->G with unit-square positions.
func newDiamond(t *testing.T) *core.SearchSpace {
	t.Helper()
	s := core.NewSearchSpace()
	for _, n := range []struct {
		label string
		pos   core.Position
	}{
		{LabelS, core.Position{X: 0, Y: 0}},
		{LabelA, core.Position{X: 1, Y: 0}},
		{LabelB, core.Position{X: 0, Y: 1}},
		{LabelG, core.Position{X: 1, Y: 1}},
	} {
		_, err := s.AddNode(n.label, n.pos)
		require.NoError(t, err)
	}
	for _, l := range [][2]string{{LabelS, LabelA}, {LabelS, LabelB}, {LabelA, LabelG}, {LabelB, LabelG}} {
		_, err := s.AddLink(l[0], l[1])
		require.NoError(t, err)
	}

	return s
}

// labels extracts labels preserving order.
func labels(ns []*core.Node) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Label()
	}

	return out
}

// linkLabels extracts link labels preserving order.
func linkLabels(ls []*core.Link) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Label()
	}

	return out
}
