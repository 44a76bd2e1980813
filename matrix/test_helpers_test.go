// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qwalk/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels down their materializing fallback path.
type hide struct{ matrix.Matrix }

// chide is the complex counterpart of hide.
type chide struct{ matrix.CMatrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c)
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, d.Set(i, j, vals[i*c+j]))
		}
	}

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustCAt reads complex (i,j) or fails the test.
func MustCAt(t *testing.T, m matrix.CMatrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomHermitian builds a deterministic n×n Hermitian matrix with entries in (-1,1).
func RandomHermitian(t *testing.T, n int, seed int64) *matrix.CDense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewCDense(n, n)
	require.NoError(t, err)
	var i, j int
	var z complex128
	for i = 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, complex(rng.Float64()*2-1, 0)))
		for j = i + 1; j < n; j++ {
			z = complex(rng.Float64()*2-1, rng.Float64()*2-1)
			require.NoError(t, m.Set(i, j, z))
			require.NoError(t, m.Set(j, i, complex(real(z), -imag(z))))
		}
	}

	return m
}

// RandomSymmetric builds a deterministic n×n real symmetric matrix.
func RandomSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = rng.Float64()*2 - 1
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

// CompareClose asserts |a[i,j] − b[i,j]| ≤ tol for every cell.
func CompareClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			require.InDeltaf(t, MustAt(t, a, i, j), MustAt(t, b, i, j), tol, "cell [%d,%d]", i, j)
		}
	}
}

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}

	return m
}
