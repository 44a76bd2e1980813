// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i). Fixed seed ⇒ fixed matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(p float64) Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		w := complex(cfg.weight, 0)
		var i, j int
		var keep bool
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cfg.rng == nil {
					keep = p == MaxProbability
				} else {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := setEdge(MethodRandomSparse, m, i, j, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
