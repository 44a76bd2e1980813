// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// solver.go — the EigenSolver leaf and its Hermitian adapter.
//
// Purpose:
//   • Hide the dense symmetric eigensolver behind a small contract: n real
//     eigenvalues plus an n×n complex matrix of orthonormal eigenvector columns.
//   • Let real symmetric kernels (gonum EigenSym, matrix.Eigen) serve complex
//     Hermitian input through the real embedding [[X,−Y],[Y,X]].
//
// Embedding recap:
//   For H = X + iY the 2n×2n matrix E = [[X,−Y],[Y,X]] is real symmetric and
//   (x, y) is an eigenvector of E exactly when x + iy is an eigenvector of H.
//   Every eigenvalue of H appears twice in E (z and i·z realify to two
//   orthogonal real vectors), so each group of copies of one eigenvalue spans
//   a complex space of half its real dimension. A pivoted complex Gram–Schmidt
//   pass over the group picks that many orthonormal complex vectors.

package spectral

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/qwalk/matrix"
	"gonum.org/v1/gonum/mat"
)

// DefaultJacobiTol is the off-diagonal threshold used by a zero JacobiSolver.
const DefaultJacobiTol = 1e-12

const (
	// groupRelTol is the relative gap under which sorted eigenvalues of the
	// embedding are treated as copies of one eigenvalue of H.
	groupRelTol = 1e-8

	// extractTol is the residual norm under which a Gram–Schmidt candidate is
	// linearly dependent on the vectors already picked.
	extractTol = 1e-6

	// jacobiIterPerCell scales the default rotation budget: 100·n².
	jacobiIterPerCell = 100
)

// EigenSolver computes the full eigensystem of a Hermitian matrix.
// Solve returns n eigenvalues in no particular order and an n×n matrix whose
// column j is a unit eigenvector for value j; the columns are orthonormal.
type EigenSolver interface {
	Solve(a matrix.CMatrix) ([]float64, *matrix.CDense, error)
}

// symmetricKernel diagonalizes a real symmetric matrix, returning eigenvalues
// and the matching eigenvectors as columns (cols[k] belongs to vals[k]).
type symmetricKernel func(a *matrix.Dense) (vals []float64, cols [][]float64, err error)

// GonumSolver is the default EigenSolver, backed by gonum's LAPACK-style
// symmetric eigendecomposition (mat.EigenSym).
type GonumSolver struct{}

// Solve implements EigenSolver.
func (GonumSolver) Solve(a matrix.CMatrix) ([]float64, *matrix.CDense, error) {
	return solveHermitian(a, gonumKernel)
}

func gonumKernel(a *matrix.Dense) ([]float64, [][]float64, error) {
	n := a.Rows()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		data = append(data, a.RawRowView(i)...)
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, nil, ErrSolverFailed
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	cols := make([][]float64, n)
	for k := 0; k < n; k++ {
		cols[k] = mat.Col(nil, k, &ev)
	}

	return vals, cols, nil
}

// JacobiSolver runs the classical Jacobi rotation solver of the matrix
// package (matrix.Eigen). Useful as an independent cross-check of GonumSolver.
// Zero fields select DefaultJacobiTol and a budget of 100·n² rotations.
type JacobiSolver struct {
	Tol     float64
	MaxIter int
}

// Solve implements EigenSolver.
func (s JacobiSolver) Solve(a matrix.CMatrix) ([]float64, *matrix.CDense, error) {
	return solveHermitian(a, s.kernel)
}

func (s JacobiSolver) kernel(a *matrix.Dense) ([]float64, [][]float64, error) {
	n := a.Rows()
	tol := s.Tol
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = jacobiIterPerCell * n * n
	}
	vals, q, err := matrix.Eigen(a, tol, maxIter)
	if err != nil {
		return nil, nil, err
	}
	qd, ok := q.(*matrix.Dense)
	if !ok {
		return nil, nil, ErrSolverFailed
	}
	rows := qd.ToRows()
	cols := make([][]float64, n)
	var i, k int
	for k = 0; k < n; k++ {
		cols[k] = make([]float64, n)
		for i = 0; i < n; i++ {
			cols[k][i] = rows[i][k]
		}
	}

	return vals, cols, nil
}

// solveHermitian adapts a real symmetric kernel to Hermitian input.
// Implementation:
//   - Stage 1: replace a by its Hermitian part (A + Aᴴ)/2.
//   - Stage 2: real input goes to the kernel as is.
//   - Stage 3: complex input is embedded, diagonalized, and folded back by
//     foldEmbedded.
//
// Errors:
//   - ErrShapeMismatch (non-square), ErrSolverFailed (kernel failure or an
//     incomplete basis); the kernel's own error stays matchable.
//
// Complexity:
//   - Real: one n×n symmetric eigensolve. Complex: one 2n×2n eigensolve plus
//     O(n³) Gram–Schmidt.
func solveHermitian(a matrix.CMatrix, kernel symmetricKernel) ([]float64, *matrix.CDense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, nil, causeErrorf(opSolve, ErrShapeMismatch, err)
	}
	h, err := matrix.Hermitize(a)
	if err != nil {
		return nil, nil, spectralErrorf(opSolve, err)
	}
	n := h.Rows()

	isReal, err := matrix.IsReal(h)
	if err != nil {
		return nil, nil, spectralErrorf(opSolve, err)
	}
	if isReal {
		re, err := matrix.RealPart(h)
		if err != nil {
			return nil, nil, spectralErrorf(opSolve, err)
		}
		vals, cols, err := kernel(re)
		if err != nil {
			return nil, nil, causeErrorf(opSolve, ErrSolverFailed, err)
		}
		if len(vals) != n || len(cols) != n {
			return nil, nil, spectralErrorf(opSolve, ErrSolverFailed)
		}
		vecs, err := columnsToCDense(n, realColumns(cols))
		if err != nil {
			return nil, nil, spectralErrorf(opSolve, err)
		}

		return vals, vecs, nil
	}

	e, err := matrix.Embed(h)
	if err != nil {
		return nil, nil, spectralErrorf(opSolve, err)
	}
	vals, cols, err := kernel(e)
	if err != nil {
		return nil, nil, causeErrorf(opSolve, ErrSolverFailed, err)
	}
	if len(vals) != 2*n || len(cols) != 2*n {
		return nil, nil, spectralErrorf(opSolve, ErrSolverFailed)
	}

	return foldEmbedded(h, vals, cols)
}

// foldEmbedded recovers n complex eigenpairs of h from the 2n eigenpairs of
// its real embedding.
// Implementation:
//   - Stage 1: sort the 2n eigenvalues and group neighbours closer than
//     groupRelTol·max(1, |λ|max).
//   - Stage 2: per group, map each real vector (x, y) to x + iy and run a pivoted
//     complex Gram–Schmidt against every vector picked so far, keeping at most
//     ⌈g/2⌉ candidates whose residual exceeds extractTol.
//   - Stage 3: each picked vector gets its Rayleigh quotient Re(zᴴ h z) as value.
//
// Errors:
//   - ErrSolverFailed when the picked vectors do not number exactly n.
func foldEmbedded(h *matrix.CDense, vals []float64, cols [][]float64) ([]float64, *matrix.CDense, error) {
	n := h.Rows()
	m := len(vals)
	order := sortedOrder(vals)
	scale := math.Max(1, math.Max(math.Abs(vals[order[0]]), math.Abs(vals[order[m-1]])))
	gap := groupRelTol * scale

	basis := make([][]complex128, 0, n)
	outVals := make([]float64, 0, n)
	var lo, hi int
	for lo = 0; lo < m; lo = hi {
		hi = lo + 1
		for hi < m && vals[order[hi]]-vals[order[hi-1]] <= gap {
			hi++
		}
		cands := make([][]complex128, 0, hi-lo)
		for _, k := range order[lo:hi] {
			cands = append(cands, complexFromEmbedded(cols[k], n))
		}
		picked := pivotedGramSchmidt(basis, cands, (hi-lo+1)/2)
		for _, z := range picked {
			if len(basis) == n {
				return nil, nil, spectralErrorf(opSolve, ErrSolverFailed)
			}
			hz, err := matrix.CMatVec(h, z)
			if err != nil {
				return nil, nil, spectralErrorf(opSolve, err)
			}
			basis = append(basis, z)
			outVals = append(outVals, real(dot(z, hz)))
		}
	}
	if len(basis) != n {
		return nil, nil, spectralErrorf(opSolve, ErrSolverFailed)
	}
	vecs, err := columnsToCDense(n, basis)
	if err != nil {
		return nil, nil, spectralErrorf(opSolve, err)
	}

	return outVals, vecs, nil
}

// pivotedGramSchmidt picks up to want orthonormal vectors from cands, all
// orthogonal to basis. At each step the candidate with the largest residual
// wins; the pass stops early once every residual is below extractTol.
// cands are consumed (modified in place).
func pivotedGramSchmidt(basis, cands [][]complex128, want int) [][]complex128 {
	for _, c := range cands {
		for _, q := range basis {
			axpyProject(c, q)
		}
	}

	picked := make([][]complex128, 0, want)
	var best int
	var bestNorm, nrm float64
	for len(picked) < want {
		best, bestNorm = -1, extractTol
		for i, c := range cands {
			if c == nil {
				continue
			}
			if nrm = norm(c); nrm > bestNorm {
				best, bestNorm = i, nrm
			}
		}
		if best < 0 {
			break
		}
		q := cands[best]
		cands[best] = nil
		// Second projection pass keeps orthogonality at machine precision.
		for _, b := range basis {
			axpyProject(q, b)
		}
		for _, b := range picked {
			axpyProject(q, b)
		}
		nrm = norm(q)
		for i := range q {
			q[i] /= complex(nrm, 0)
		}
		picked = append(picked, q)
		for _, c := range cands {
			if c != nil {
				axpyProject(c, q)
			}
		}
	}

	return picked
}

// axpyProject removes from c its component along the unit vector q: c -= ⟨q,c⟩·q.
func axpyProject(c, q []complex128) {
	p := dot(q, c)
	for i := range c {
		c[i] -= p * q[i]
	}
}

// dot returns ⟨a,b⟩ = Σ conj(a[i])·b[i].
func dot(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}

	return s
}

func norm(v []complex128) float64 {
	return math.Sqrt(real(dot(v, v)))
}

// complexFromEmbedded maps a real 2n-vector (x, y) to x + iy.
func complexFromEmbedded(w []float64, n int) []complex128 {
	z := make([]complex128, n)
	for i := 0; i < n; i++ {
		z[i] = complex(w[i], w[n+i])
	}

	return z
}

func realColumns(cols [][]float64) [][]complex128 {
	out := make([][]complex128, len(cols))
	for k, c := range cols {
		out[k] = make([]complex128, len(c))
		for i, v := range c {
			out[k][i] = complex(v, 0)
		}
	}

	return out
}

// columnsToCDense packs column vectors into an n×len(cols) matrix.
func columnsToCDense(n int, cols [][]complex128) (*matrix.CDense, error) {
	out, err := matrix.NewCDense(n, len(cols))
	if err != nil {
		return nil, err
	}
	var i, k int
	for k = 0; k < len(cols); k++ {
		for i = 0; i < n; i++ {
			if err = out.Set(i, k, cols[k][i]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// sortedOrder returns the indices of vals in ascending value order; equal
// values keep their original relative order.
func sortedOrder(vals []float64) []int {
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })

	return order
}
