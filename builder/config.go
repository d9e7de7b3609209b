// SPDX-License-Identifier: MIT
// Package: lvqubo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • firstID  = 0
//   • rng      = nil                      (pure unless seeded)
//   • weightFn = constant defaultConstWeight

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// firstID is the vertex ID of index 0.
	firstID int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn func(*rand.Rand) float64
}

// defaultConstWeight is the edge weight emitted on weighted graphs when no
// WithWeightFn is given.
const defaultConstWeight = 1.0

// newBuilderConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		firstID:  0,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a construction index to a vertex ID.
func (c builderConfig) id(i int) int { return c.firstID + i }

// weight returns the weight to pass to core.Graph.AddEdge: 0 on unweighted
// graphs, the configured weight otherwise.
func (c builderConfig) weight(weighted bool) float64 {
	if !weighted {
		return 0
	}
	return c.weightFn(c.rng)
}
