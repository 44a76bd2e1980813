// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_grid.go — lattice constructors: Grid(rows, cols) and Hypercube().
//
// Contract:
//   • Grid: rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices); the matrix side
//     must equal rows·cols (else ErrSideMismatch). Cell (r,c) is vertex r·cols+c
//     and is joined to its right (r,c+1) and bottom (r+1,c) neighbors.
//   • Hypercube: side n = 2^d with d ≥ 1; i ~ j exactly when i XOR j is a
//     power of two. Q_d carries perfect state transfer between antipodes
//     0 and n−1 at t = π/2.
//   • Emission order: row-major cells, right before bottom; hypercube by
//     vertex, then dimension ascending.
//
// Complexity:
//   • Grid O(rows·cols), Hypercube O(n·log n) writes; O(1) extra space.

package builder

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qwalk/matrix"
)

// Grid returns a Constructor for the rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ 1): %w",
				MethodGrid, rows, cols, ErrTooFewVertices)
		}
		if err := validateSide(MethodGrid, m, rows*cols); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := setEdge(MethodGrid, m, u, u+1, w); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := setEdge(MethodGrid, m, u, u+cols, w); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Hypercube returns a Constructor for the d-dimensional hypercube Q_d on
// n = 2^d vertices.
func Hypercube() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodHypercube, n, MinHypercubeNodes); err != nil {
			return err
		}
		if bits.OnesCount(uint(n)) != 1 {
			return fmt.Errorf("%s: n=%d is not a power of two: %w", MethodHypercube, n, ErrSideMismatch)
		}
		w := complex(cfg.weight, 0)
		for u := 0; u < n; u++ {
			for bit := 1; bit < n; bit <<= 1 {
				if v := u ^ bit; u < v {
					if err := setEdge(MethodHypercube, m, u, v, w); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
