// Package dijkstra defines configuration options and sentinel errors for the
// uniform-cost reference solver over a core.SearchSpace.
//
// The solver runs on the enabled subgraph (SearchSpace.EnabledView) and
// prices each link through an EdgeCost function over node positions, so it
// answers the same question as an A* run with the matching heuristic and can
// serve as its optimality oracle.
//
// Options:
//
//	– Source:      label of the starting node (must be non-empty and enabled).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap; nodes farther than this are not settled.
//	– EdgeCost:    link pricing; unit cost (hop count) by default.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source label is empty.
//	– ErrNilSpace        if the provided search space is nil.
//	– ErrSourceNotFound  if the source is missing or disabled.
//	– ErrNegativeCost    if EdgeCost returns a negative value.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrUnreachable     from PathTo when the target was never settled.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/astarlab/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source label is empty.
	ErrEmptySource = errors.New("dijkstra: source label is empty")

	// ErrNilSpace indicates that a nil *core.SearchSpace was passed.
	ErrNilSpace = errors.New("dijkstra: search space is nil")

	// ErrSourceNotFound indicates that the source is absent from the enabled subgraph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found or disabled")

	// ErrNegativeCost indicates that the cost function priced a link below zero.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that no path to the requested target exists.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// EdgeCost prices the link between nodes at from and to.
type EdgeCost func(from, to core.Position) float64

// UnitCost prices every link at 1.
func UnitCost(_, _ core.Position) float64 { return 1 }

// EuclideanCost prices a link by the distance between its endpoints.
func EuclideanCost(from, to core.Position) float64 { return from.Distance(to) }

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node label (must be non-empty and enabled).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – cap on distances to settle. Default +Inf (no cap).
// Cost        – link pricing. Default UnitCost.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
	Cost        EdgeCost
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node label.
func Source(label string) Option {
	return func(o *Options) {
		o.Source = label
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative values (ErrBadMaxDistance).
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithEdgeCost sets the link pricing; a nil function keeps the default.
func WithEdgeCost(fn EdgeCost) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// DefaultOptions returns Options initialized with defaults for source.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		Cost:        UnitCost,
	}
}
