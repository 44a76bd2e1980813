// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_cycle.go — implementation of the Cycle constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges {i, (i+1) mod n} for i = 0..n-1: A[i][j] = w exactly when
//     (i−j) mod n ∈ {1, n−1}.
//   • Emission order: ascending i; the closing edge {n−1, 0} comes last.
//
// Complexity:
//   • Time: O(n) writes. Space: O(1) extra.

package builder

import "github.com/katalvlaran/qwalk/matrix"

// Cycle returns a Constructor that builds the n-vertex ring C_n.
func Cycle() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		for i := 0; i < n; i++ {
			if err := setEdge(MethodCycle, m, i, (i+1)%n, w); err != nil {
				return err
			}
		}

		return nil
	}
}
