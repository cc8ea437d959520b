// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import (
	"fmt"
	"math/rand"
)

// randSource is the subset of *rand.Rand the builders draw from.
type randSource interface {
	Float64() float64
}

// BuilderOption customizes construction by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node label generator: idx -> label. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the plane distance between adjacent nodes. Panics if d <= 0.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic(fmt.Sprintf("builder: WithSpacing(%g): must be > 0", d))
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithBidirectional makes every constructor emit v->u after each u->v.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithDisabledLinks switches off each link with probability p once all
// constructors ran. Requires an RNG when 0 < p < 1. Panics outside [0,1].
func WithDisabledLinks(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithDisabledLinks(%g): must be in [0,1]", p))
	}
	return func(c *builderConfig) {
		c.disableProb = p
	}
}
