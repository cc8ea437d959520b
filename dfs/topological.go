package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/astarlab/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context. A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	space *core.SearchSpace
	opts  topoOptions
	state map[string]int
	order []string
}

// TopologicalSort orders every node of s so that each link's source comes
// before its target. Enabled flags are ignored. Roots are taken in node
// insertion order, so the result is deterministic.
//
// Errors: ErrSpaceNil, ErrCycleDetected (wrapped with the closing node),
// ErrNeighborFetch, or the context error.
//
// Complexity: Time O(V + E), Memory O(V).
func TopologicalSort(s *core.SearchSpace, options ...TopoOption) ([]string, error) {
	if s == nil {
		return nil, ErrSpaceNil
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	nodes := s.Nodes()
	sorter := &topoSorter{
		space: s,
		opts:  opts,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	for _, n := range nodes {
		if sorter.state[n.Label()] == White {
			if err := sorter.visit(n.Label()); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

func (t *topoSorter) visit(label string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	switch t.state[label] {
	case Gray:
		return fmt.Errorf("%w: back link into %q", ErrCycleDetected, label)
	case Black:
		return nil
	}
	t.state[label] = Gray

	children, err := t.space.Children(label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, child := range children {
		if err = t.visit(child.Label()); err != nil {
			return err
		}
	}

	t.state[label] = Black
	t.order = append(t.order, label)

	return nil
}
