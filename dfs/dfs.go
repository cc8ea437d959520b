// Package dfs implements depth-first search (single-source and forest),
// topological ordering and cycle detection over a core.SearchSpace.
//
// DFS follows enabled links into enabled nodes only and reads the flags
// live. TopologicalSort and DetectCycles look at structure and ignore the
// enabled flags: a disabled link is still part of the model.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	space *core.SearchSpace
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on s from start, or over every enabled node
// when WithFullTraversal is given. Children are visited in link-insertion order.
func DFS(s *core.SearchSpace, start string, opts ...Option) (*DFSResult, error) {
	if s == nil {
		return nil, ErrSpaceNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal {
		n, ok := s.FindNode(start)
		if !ok || !n.Enabled() {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
		}
	}

	nodes := s.Nodes()
	res := &DFSResult{
		Order:   make([]string, 0, len(nodes)),
		Depth:   make(map[string]int, len(nodes)),
		Parent:  make(map[string]string, len(nodes)),
		Visited: make(map[string]bool, len(nodes)),
	}
	w := &dfsWalker{space: s, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, n := range nodes {
			if !n.Enabled() || res.Visited[n.Label()] {
				continue
			}
			if err := w.traverse(n.Label(), 0); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits label and recurses into its unvisited enabled children.
func (w *dfsWalker) traverse(label string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[label] = true
	w.res.Depth[label] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(label); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", label, err)
		}
	}

	children, err := w.space.Children(label)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, label, err)
	}

	for _, child := range children {
		to := child.Label()
		if !child.Enabled() {
			continue
		}
		if link, ok := w.space.FindLink(label, to); !ok || !link.Enabled() {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(label, to) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[to] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[to] = label
		if err = w.traverse(to, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(label); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", label, err)
		}
	}

	w.res.Order = append(w.res.Order, label)

	return nil
}
