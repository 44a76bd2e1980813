// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_path.go — implementation of the Path constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges {i, i+1} for i = 0..n-2, i.e. A[i][j] = w exactly when |i−j| = 1.
//
// Complexity:
//   • Time: O(n) writes. Space: O(1) extra.

package builder

import "github.com/katalvlaran/qwalk/matrix"

// Path returns a Constructor that builds the simple path P_n.
func Path() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		for i := 0; i+1 < n; i++ {
			if err := setEdge(MethodPath, m, i, i+1, w); err != nil {
				return err
			}
		}

		return nil
	}
}
