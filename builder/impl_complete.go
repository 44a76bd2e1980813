// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_complete.go — Complete and CompleteOriented constructors.
//
// Contract:
//   • Complete: n ≥ 2; A[i][j] = w for every i ≠ j. Spectrum {n−1 (×1), −1 (×n−1)}
//     for w = 1.
//   • CompleteOriented: n ≥ 2; the tournament where every vertex p points to
//     each lower vertex q < p, encoded as the Hermitian matrix
//     A[p][q] = +i·w, A[q][p] = −i·w; the single arc between 0 and n−1 is
//     reversed (A[0][n−1] = +i·w) so the orientation closes into a cycle. Its
//     mirror is the conjugate, A[n−1][0] = −i·w, so the result stays Hermitian.
//   • Emission order: rows ascending, then columns ascending (upper triangle).
//
// Complexity:
//   • Time: O(n²) writes. Space: O(1) extra.

package builder

import "github.com/katalvlaran/qwalk/matrix"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := setEdge(MethodComplete, m, i, j, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteOriented returns a Constructor that builds the oriented complete
// graph as a complex Hermitian adjacency (entries ±i·w, zero diagonal).
func CompleteOriented() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodCompleteOriented, n, MinOrientedNodes); err != nil {
			return err
		}
		arc := complex(0, -cfg.weight) // upper triangle: p < q
		var p, q int
		var z complex128
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				z = arc
				if p == 0 && q == n-1 {
					z = -arc // reversed closing arc
				}
				if err := setEdge(MethodCompleteOriented, m, p, q, z); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
