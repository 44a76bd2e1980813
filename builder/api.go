// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(n, bopts, cons...). Allocates an n×n zero
//     adjacency, resolves cfg, runs cons in order.
//   - All public factories return Constructor closures implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors to overlay topologies, e.g. BuildMatrix(6, nil, Cycle(), Star())
//     yields a wheel-like graph; edges are written, not summed, so overlays are idempotent.
//   - Every generated matrix is Hermitian and ready for spectral.Decompose.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qwalk/matrix"
)

// Constructor writes a topology into a square zero-initialized adjacency
// matrix using the resolved builderConfig. Constructors MUST:
//   - Validate m.Rows() against their minimum early and return sentinel errors.
//   - Write entries in a stable, documented order.
//   - Keep m Hermitian (every write goes through setEdge).
type Constructor func(m *matrix.CDense, cfg builderConfig) error

// BuildMatrix allocates an n×n complex zero matrix, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildMatrix: %w" and returned
// immediately; no partial matrix is returned.
//
// Complexity:
//   - Allocation O(n²); applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices (n < 1), ErrConstructFailed (nil constructor), and any
//     constructor sentinel, all matchable with errors.Is.
func BuildMatrix(n int, bopts []BuilderOption, cons ...Constructor) (*matrix.CDense, error) {
	if err := validateMin(MethodBuild, n, 1); err != nil {
		return nil, err
	}
	m, err := matrix.NewCDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	return m, nil
}

// ByName builds the n-vertex graph of the given kind (see Kinds), matching
// names case-insensitively. It is the dispatch used by the CLI, the config
// file and the HTTP service.
// Errors: ErrUnknownGraph, plus the constructor's own sentinels.
func ByName(kind string, n int, opts ...BuilderOption) (*matrix.CDense, error) {
	var c Constructor
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindPath:
		c = Path()
	case KindCycle:
		c = Cycle()
	case KindStar:
		c = Star()
	case KindWheel:
		c = Wheel()
	case KindComplete:
		c = Complete()
	case KindCompleteOriented:
		c = CompleteOriented()
	case KindBipartite:
		if n < MinBipartiteNodes {
			return nil, fmt.Errorf("ByName: %s: n=%d < min=%d: %w", kind, n, MinBipartiteNodes, ErrTooFewVertices)
		}
		c = CompleteBipartite(n/2, n-n/2)
	case KindHypercube:
		c = Hypercube()
	default:
		return nil, fmt.Errorf("ByName: %q (want one of %s): %w", kind, strings.Join(Kinds(), ", "), ErrUnknownGraph)
	}

	return BuildMatrix(n, opts, c)
}
