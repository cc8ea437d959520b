package astar

import (
	"slices"
	"strings"

	"github.com/katalvlaran/astarlab/core"
)

// Path is an ordered start..goal sequence of node labels and its total cost.
type Path struct {
	Labels []string
	Cost   float64
}

// Len returns the number of links on the path.
func (p Path) Len() int {
	if len(p.Labels) == 0 {
		return 0
	}

	return len(p.Labels) - 1
}

// Links returns the link labels along the path ("S->A", "A->G").
func (p Path) Links() []string {
	if len(p.Labels) < 2 {
		return nil
	}
	out := make([]string, 0, len(p.Labels)-1)
	for i := 1; i < len(p.Labels); i++ {
		out = append(out, core.LinkLabel(p.Labels[i-1], p.Labels[i]))
	}

	return out
}

// String renders the path as "S -> A -> G".
func (p Path) String() string { return strings.Join(p.Labels, " -> ") }

// reconstruct walks parent labels from goal back to the start and reverses.
// A chain longer than the arena (or a dangling parent) is a structural fault.
func reconstruct(arena map[string]*nodeState, goal string) (Path, error) {
	st, ok := arena[goal]
	if !ok {
		return Path{}, ErrNoPath
	}
	cost := st.g
	labels := []string{st.label}
	for st.parent != "" {
		if len(labels) > len(arena) {
			return Path{}, &StructuralError{From: st.parent, To: st.label}
		}
		parent, ok := arena[st.parent]
		if !ok {
			return Path{}, &StructuralError{From: st.parent, To: st.label}
		}
		labels = append(labels, parent.label)
		st = parent
	}
	slices.Reverse(labels)

	return Path{Labels: labels, Cost: cost}, nil
}
