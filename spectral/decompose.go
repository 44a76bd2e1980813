// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// decompose.go — eigenvalue clustering and eigenprojector accumulation.

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qwalk/matrix"
)

// Decomposition is the spectral form A = Σ Values[i]·Projectors[i].
// The three slices are index-aligned and ordered by ascending eigenvalue;
// Multiplicities[i] is the number of eigenpairs folded into Projectors[i]
// (the rank of that projector). A Decomposition is created fresh by
// Decompose and never mutated by this package afterwards, so it is safe to
// share between goroutines evaluating different times t.
type Decomposition struct {
	Values         []float64
	Projectors     []*matrix.CDense
	Multiplicities []int
}

// Len returns the number of eigenvalue clusters.
func (d *Decomposition) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Values)
}

// Dim returns the side n of the projectors, 0 for an empty decomposition.
func (d *Decomposition) Dim() int {
	if d == nil || len(d.Projectors) == 0 || d.Projectors[0] == nil {
		return 0
	}

	return d.Projectors[0].Rows()
}

// validate reports ErrInvariantViolation for a nil or empty decomposition,
// misaligned slices, or a nil / non-square / differently sized projector.
func (d *Decomposition) validate(tag string) error {
	if d == nil || len(d.Values) == 0 {
		return spectralErrorf(tag, ErrInvariantViolation)
	}
	if len(d.Values) != len(d.Projectors) {
		return fmt.Errorf("%s: %d eigenvalues vs %d projectors: %w", tag, len(d.Values), len(d.Projectors), ErrInvariantViolation)
	}
	if d.Multiplicities != nil && len(d.Multiplicities) != len(d.Values) {
		return fmt.Errorf("%s: %d multiplicities vs %d eigenvalues: %w", tag, len(d.Multiplicities), len(d.Values), ErrInvariantViolation)
	}
	n := d.Dim()
	for i, p := range d.Projectors {
		if p == nil || p.Rows() != n || p.Cols() != n {
			return fmt.Errorf("%s: projector %d: %w", tag, i, ErrInvariantViolation)
		}
	}

	return nil
}

// Decompose computes the spectral decomposition of a Hermitian matrix.
// Implementation:
//   - Stage 1: reject nil (matrix.ErrNilMatrix) and non-square input
//     (ErrShapeMismatch) before any solver work.
//   - Stage 2: unless disabled, check A ≈ Aᴴ within the Hermitian epsilon.
//   - Stage 3: run the EigenSolver, sort eigenpairs ascending (stable).
//   - Stage 4: single pass: an eigenpair joins the open cluster when
//     |λ − rep| < tolerance, rep being the first (smallest) eigenvalue of that
//     cluster; otherwise it opens a new cluster. The pair's outer product v·vᴴ
//     is accumulated into the cluster projector.
//
// Behavior highlights:
//   - Each eigenpair lands in exactly one cluster, so Σ Multiplicities = n and
//     the projectors partition the identity.
//   - rep is never re-averaged: a run of eigenvalues spaced just under the
//     tolerance is split once it drifts a full tolerance away from its first member.
//
// Inputs:
//   - a: square Hermitian matrix (real symmetric is the common case).
//   - opts: WithTolerance, WithSolver, WithoutHermitianCheck, WithHermitianEpsilon.
//
// Returns:
//   - *Decomposition with ascending Values.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch, ErrNotHermitian, ErrSolverFailed.
//     No partial result is returned on failure.
//
// Determinism:
//   - For a deterministic solver the output is bitwise reproducible.
//
// Complexity:
//   - Time O(n³) (solver + n rank-one updates of O(n²)), Space O(k·n²) for k clusters.
func Decompose(a matrix.CMatrix, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, spectralErrorf(opDecompose, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, causeErrorf(opDecompose, ErrShapeMismatch, err)
	}
	n := a.Rows()

	if o.checkHermitian {
		eps := o.hermitianEps
		if !o.hermitianEpsOK {
			maxAbs, err := maxModulus(a)
			if err != nil {
				return nil, spectralErrorf(opDecompose, err)
			}
			eps = DefaultHermitianEps * math.Max(1, maxAbs)
		}
		if err := matrix.ValidateHermitian(a, eps); err != nil {
			return nil, causeErrorf(opDecompose, ErrNotHermitian, err)
		}
	}

	vals, vecs, err := o.solver.Solve(a)
	if err != nil {
		return nil, spectralErrorf(opDecompose, err)
	}
	if len(vals) != n || vecs == nil || vecs.Rows() != n || vecs.Cols() != n {
		return nil, spectralErrorf(opDecompose, ErrSolverFailed)
	}

	d := &Decomposition{}
	var (
		rep float64
		cur *matrix.CDense
	)
	for _, k := range sortedOrder(vals) {
		if cur == nil || !(math.Abs(vals[k]-rep) < o.tolerance) {
			if cur, err = matrix.NewCDense(n, n); err != nil {
				return nil, spectralErrorf(opDecompose, err)
			}
			rep = vals[k]
			d.Values = append(d.Values, rep)
			d.Projectors = append(d.Projectors, cur)
			d.Multiplicities = append(d.Multiplicities, 0)
		}
		if err = matrix.AddOuterInPlace(cur, 1, vecs.Col(k)); err != nil {
			return nil, spectralErrorf(opDecompose, err)
		}
		d.Multiplicities[len(d.Multiplicities)-1]++
	}

	return d, nil
}

// maxModulus returns max |a[i,j]|.
func maxModulus(a matrix.CMatrix) (float64, error) {
	var best float64
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			if err != nil {
				return 0, err
			}
			best = math.Max(best, cmplx.Abs(v))
		}
	}

	return best, nil
}
