// Package bfs provides breadth-first search over the enabled part of a
// core.SearchSpace, returning hop distances, parent links, and visit order.
//
// Disabled nodes and disabled links are skipped as if absent; the traversal
// reads flags live, so it reflects the graph at the moment each node is visited.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/astarlab/core"
)

// ErrNeighbors is returned when fetching neighbors from the search space fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node label with its BFS depth and its parent's label.
type queueItem struct {
	label  string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	space   *core.SearchSpace
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on s starting from start,
// applying any number of functional Options.
// Returns ErrSpaceNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for lookup failures,
// or any user-supplied hook error.
func BFS(s *core.SearchSpace, start string, opts ...Option) (*BFSResult, error) {
	if s == nil {
		return nil, ErrSpaceNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n, ok := s.FindNode(start)
	if !ok || !n.Enabled() {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	size := s.NodeCount()
	w := &walker{
		space:   s,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[string]bool, size),
		res: &BFSResult{
			Order:  make([]string, 0, size),
			Depth:  make(map[string]int, size),
			Parent: make(map[string]string, size),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks label visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(label string, d int, parent string) {
	w.visited[label] = true
	w.res.Depth[label] = d
	if parent != "" {
		w.res.Parent[label] = parent
	}
	w.opts.OnEnqueue(label, d)
	w.queue = append(w.queue, queueItem{label: label, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.label, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.label)
	if err := w.opts.OnVisit(item.label, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.label, err)
	}

	return nil
}

// enqueueNeighbors walks the enabled links out of item in insertion order,
// applies filtering and MaxDepth, and enqueues each unseen enabled child.
func (w *walker) enqueueNeighbors(item queueItem) error {
	children, err := w.space.Children(item.label)
	if err != nil {
		return fmt.Errorf("%w: failed to get children of %q: %w", ErrNeighbors, item.label, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, child := range children {
		label := child.Label()
		if w.visited[label] || !child.Enabled() {
			continue
		}
		link, ok := w.space.FindLink(item.label, label)
		if !ok || !link.Enabled() {
			continue
		}
		if !w.opts.FilterNeighbor(item.label, label) {
			continue
		}
		w.enqueue(label, nextDepth, item.label)
	}

	return nil
}
