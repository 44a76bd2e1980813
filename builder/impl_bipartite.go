// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_bipartite.go — CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices); side must be n1+n2
//     (else ErrSideMismatch).
//   • Left part is 0..n1−1, right part n1..n1+n2−1; every cross pair is an edge.
//   • Spectrum for w = 1: ±√(n1·n2) once each, 0 with multiplicity n1+n2−2.
//
// Complexity:
//   • Time: O(n1·n2) writes. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w",
				MethodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		if err := validateSide(MethodCompleteBipartite, m, n1+n2); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := setEdge(MethodCompleteBipartite, m, i, j, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
