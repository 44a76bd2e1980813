// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`; sentinels never carry parameters.
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum the requested
// topology needs (Path ≥ 2, Cycle ≥ 3, Wheel ≥ 4, ...).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1] (RandomSparse).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an adjacency write that the
// matrix layer rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownGraph indicates an unrecognized kind passed to ByName.
var ErrUnknownGraph = errors.New("builder: unknown graph kind")

// ErrBadEdge indicates an edge-list entry with a negative endpoint or one
// outside the declared vertex count.
var ErrBadEdge = errors.New("builder: invalid edge")

// ErrSideMismatch indicates a sized topology (Grid, CompleteBipartite,
// PlatonicSolid) applied to a matrix whose side is not its vertex count.
var ErrSideMismatch = errors.New("builder: matrix side does not match topology")
