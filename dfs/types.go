// Package dfs defines types and options for depth-first search over a
// core.SearchSpace, including cancellation, pre-/post-order hooks, depth
// limiting, neighbor filtering, and forest traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation states used by DFS, TopologicalSort and DetectCycles.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrSpaceNil is returned when a nil *core.SearchSpace is passed.
	ErrSpaceNil = errors.New("dfs: search space is nil")

	// ErrStartVertexNotFound indicates that the start node is missing or disabled.
	ErrStartVertexNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that TopologicalSort met a back link.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to list a node's children.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(label string) error

	// OnExit is invoked after all descendants of a node were explored
	// (post-order), before the node is appended to Order.
	OnExit func(label string) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start node. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor is consulted for every enabled link before recursing.
	FilterNeighbor func(from, to string) bool

	// FullTraversal restarts from every unvisited enabled node, in
	// insertion order, covering every component.
	FullTraversal bool

	// SkippedNeighbors counts links rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns background context, no hooks, no depth limit and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(label string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(label string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips links for which fn returns false.
func WithFilterNeighbor(fn func(from, to string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal; the start label is ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []string

	// Depth maps each reached node to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each reached node to the node it was discovered from.
	// Tree roots have no entry.
	Parent map[string]string

	// Visited flags which nodes were reached.
	Visited map[string]bool

	// SkippedNeighbors reports how many links FilterNeighbor rejected.
	SkippedNeighbors int
}
