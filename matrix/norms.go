// SPDX-License-Identifier: MIT
// Package matrix - norms and closeness checks.
//
// Purpose:
//   - Norm2: spectral (operator 2-) norm, the largest singular value, computed by
//     gonum's SVD. This is the norm used by every residual check in the module.
//   - CNorm2: the same norm for complex matrices via the real embedding, whose
//     singular values are those of M, each doubled.
//   - FrobeniusNorm and AllClose for cheap element-wise comparisons.

package matrix

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Norm2 returns ‖M‖₂ = σ_max(M).
// Implementation:
//   - Stage 1: validate non-nil; materialize as a gonum *mat.Dense copy.
//   - Stage 2: factorize with SVDNone (values only) and return the first
//     (largest) singular value.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed (factorization did not converge).
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r*c).
//
// AI-Hints:
//   - For a residual R = X − Y, Norm2(R) bounds ‖X·v − Y·v‖ for every unit v.
func Norm2(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm2, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm2, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(d.r, d.c, buf), mat.SVDNone); !ok {
		return 0, matrixErrorf(opNorm2, ErrSVDFailed)
	}
	vals := svd.Values(nil)
	if len(vals) == 0 {
		return NormZero, nil
	}

	return vals[0], nil
}

// CNorm2 returns ‖M‖₂ for a complex matrix.
// The embedding [[X,−Y],[Y,X]] is an isometry of C^n onto R^{2n}, so its largest
// singular value equals that of M.
// Errors: ErrNilMatrix, ErrSVDFailed. Complexity: O(8·min(r,c)·r·c).
func CNorm2(m CMatrix) (float64, error) {
	e, err := Embed(m)
	if err != nil {
		return 0, matrixErrorf(opCNorm2, err)
	}
	v, err := Norm2(e)
	if err != nil {
		return 0, matrixErrorf(opCNorm2, err)
	}

	return v, nil
}

// FrobeniusNorm returns sqrt(Σ|m[i,j]|²). Errors: ErrNilMatrix. Complexity: O(r*c).
func FrobeniusNorm(m CMatrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	d, err := asCDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	var s, a float64
	for _, v := range d.data {
		a = cmplx.Abs(v)
		s += a * a
	}

	return math.Sqrt(s), nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ eps for every cell.
// eps comes from WithEpsilon (DefaultEpsilon otherwise).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func AllClose(a, b CMatrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := asCDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := asCDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range ad.data {
		if cmplx.Abs(ad.data[k]-bd.data[k]) > o.eps {
			return false, nil
		}
	}

	return true, nil
}
