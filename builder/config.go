// SPDX-License-Identifier: MIT
// Package: astarlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn          = DefaultIDFn ("0","1","2",...)
//   - rng           = nil (pure unless seeded)
//   - spacing       = 10 (plane units between neighbors)
//   - bidirectional = false (directed links only)
//   - disableProb   = 0 (every link enabled)
package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node label strategy: index -> label.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng randSource
	// Distance between adjacent nodes in Path/Grid and the ring radius unit.
	spacing float64
	// Emit the reverse of every link.
	bidirectional bool
	// Share of links switched off after construction.
	disableProb float64
}

const defaultSpacing = 10.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
