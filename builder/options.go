// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// the adjacency matrix is built.
type BuilderOption func(*builderConfig)

// WithWeight sets the adjacency value written for every edge.
// Panics on zero or non-finite w: a zero weight would silently drop edges.
// Complexity: O(1) time, O(1) space.
func WithWeight(w float64) BuilderOption {
	if w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("builder: WithWeight: weight must be finite and non-zero")
	}

	return func(c *builderConfig) { c.weight = w }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
