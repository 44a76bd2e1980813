// SPDX-License-Identifier: MIT
// Package spectral_test - shared fixtures.

package spectral_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/matrix"
	"github.com/katalvlaran/qwalk/spectral"
	"github.com/stretchr/testify/require"
)

const residualTol = 1e-6

// solvers runs every table test against both eigen solvers.
var solvers = []struct {
	name   string
	solver spectral.EigenSolver
}{
	{"gonum", spectral.GonumSolver{}},
	{"jacobi", spectral.JacobiSolver{}},
}

func mustGraph(t testing.TB, kind string, n int) *matrix.CDense {
	t.Helper()
	m, err := builder.ByName(kind, n)
	require.NoError(t, err)

	return m
}

func mustDecompose(t testing.TB, a matrix.CMatrix, opts ...spectral.Option) *spectral.Decomposition {
	t.Helper()
	d, err := spectral.Decompose(a, opts...)
	require.NoError(t, err)

	return d
}

// diag builds a real diagonal matrix.
func diag(t testing.TB, vals ...float64) *matrix.CDense {
	t.Helper()
	m, err := matrix.NewCDense(len(vals), len(vals))
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.Set(i, i, complex(v, 0)))
	}

	return m
}

// randomHermitian builds a deterministic n×n Hermitian matrix.
func randomHermitian(t testing.TB, n int, seed int64) *matrix.CDense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewCDense(n, n)
	require.NoError(t, err)
	var z complex128
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, complex(rng.NormFloat64(), 0)))
		for j := i + 1; j < n; j++ {
			z = complex(rng.NormFloat64(), rng.NormFloat64())
			require.NoError(t, m.Set(i, j, z))
			require.NoError(t, m.Set(j, i, complex(real(z), -imag(z))))
		}
	}

	return m
}

// pauliYBlocks builds diag(σy, σy): Hermitian, complex, spectrum {−1, −1, 1, 1}.
func pauliYBlocks(t testing.TB) *matrix.CDense {
	t.Helper()
	m, err := matrix.NewCDense(4, 4)
	require.NoError(t, err)
	for _, b := range []int{0, 2} {
		require.NoError(t, m.Set(b, b+1, -1i))
		require.NoError(t, m.Set(b+1, b, 1i))
	}

	return m
}

func requireIdentity(t testing.TB, m matrix.CMatrix, tol float64) {
	t.Helper()
	id, err := matrix.NewCIdentity(m.Rows())
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, id, matrix.WithEpsilon(tol))
	require.NoError(t, err)
	require.Truef(t, ok, "not identity within %g:\n%v", tol, m)
}
