// SPDX-License-Identifier: MIT
// Package matrix - complex kernels.
//
// Purpose:
//   - Element-wise sums, scaling, products and conjugate transpose over CMatrix.
//   - Rank-one outer products v·vᴴ and in-place accumulation, the building blocks
//     of eigenprojectors.
//   - Explicit complex→real projections (RealPart, ImagPart) and the real
//     symmetric embedding used to feed Hermitian matrices to real solvers.
//
// Notes:
//   - Every result is a fresh *CDense unless the name ends in InPlace.
//   - Loops run in fixed row-major order; outputs are bitwise reproducible.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// caddSub computes out = a + sign*b element-wise. Shared by CAdd/CSub.
func caddSub(a, b CMatrix, sign complex128, tag string) (*CDense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	ad, err := asCDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	bd, err := asCDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewCDense(ad.r, ad.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for k := range out.data {
		out.data[k] = ad.data[k] + sign*bd.data[k]
	}

	return out, nil
}

// CAdd returns A + B. Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func CAdd(a, b CMatrix) (*CDense, error) { return caddSub(a, b, 1, opCAdd) }

// CSub returns A − B. Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func CSub(a, b CMatrix) (*CDense, error) { return caddSub(a, b, -1, opCSub) }

// CScale returns alpha·M. Errors: ErrNilMatrix. Complexity: O(r*c).
func CScale(m CMatrix, alpha complex128) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCScale, err)
	}
	d, err := asCDense(m)
	if err != nil {
		return nil, matrixErrorf(opCScale, err)
	}
	out := d.clone()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}

// CMul performs C = A × B over complex128.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: Time O(n·m·p), Space O(n·p).
func CMul(a, b CMatrix) (*CDense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opCMul, err)
	}
	ad, err := asCDense(a)
	if err != nil {
		return nil, matrixErrorf(opCMul, err)
	}
	bd, err := asCDense(b)
	if err != nil {
		return nil, matrixErrorf(opCMul, err)
	}
	n, m, p := ad.r, ad.c, bd.c
	out, err := NewCDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opCMul, err)
	}

	var i, k, j int
	var aik complex128
	for i = 0; i < n; i++ {
		for k = 0; k < m; k++ {
			aik = ad.data[i*m+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < p; j++ {
				out.data[i*p+j] += aik * bd.data[k*p+j]
			}
		}
	}

	return out, nil
}

// ConjTranspose returns Mᴴ (conjugate transpose). Complexity: O(r*c).
func ConjTranspose(m CMatrix) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	d, err := asCDense(m)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	out, err := NewCDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*d.r+i] = cmplx.Conj(d.data[i*d.c+j])
		}
	}

	return out, nil
}

// CMatVec computes y = M·x.
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch. Complexity: O(r*c).
func CMatVec(m CMatrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCMatVec, err)
	}
	if err := ValidateVecLen(len(x), m.Cols(), x == nil); err != nil {
		return nil, matrixErrorf(opCMatVec, err)
	}
	d, err := asCDense(m)
	if err != nil {
		return nil, matrixErrorf(opCMatVec, err)
	}
	y := make([]complex128, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			y[i] += d.data[i*d.c+j] * x[j]
		}
	}

	return y, nil
}

// OuterProduct returns the rank-one matrix v·vᴴ, entry (i,j) = v[i]·conj(v[j]).
// For a unit vector the result is the orthogonal projector onto span{v}.
// Errors: ErrInvalidDimensions for an empty v. Complexity: O(n²).
func OuterProduct(v []complex128) (*CDense, error) {
	out, err := NewCDense(len(v), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if err = AddOuterInPlace(out, 1, v); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	return out, nil
}

// AddOuterInPlace accumulates dst += w·v·vᴴ.
// Implementation:
//   - Stage 1: require a square dst with side len(v).
//   - Stage 2: fill the upper triangle and mirror the conjugate, so a Hermitian
//     dst stays exactly Hermitian after every accumulation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - Use w = 1 for eigenprojector accumulation; w = ½ folds doubled real-embedding
//     eigenvectors back into complex projectors.
func AddOuterInPlace(dst *CDense, w float64, v []complex128) error {
	if dst == nil {
		return matrixErrorf(opAddOuter, ErrNilMatrix)
	}
	n := len(v)
	if dst.r != n || dst.c != n {
		return matrixErrorf(opAddOuter, ErrDimensionMismatch)
	}
	var i, j int
	var x complex128
	for i = 0; i < n; i++ {
		dst.data[i*n+i] += complex(w*real(v[i]*cmplx.Conj(v[i])), 0)
		for j = i + 1; j < n; j++ {
			x = complex(w, 0) * v[i] * cmplx.Conj(v[j])
			dst.data[i*n+j] += x
			dst.data[j*n+i] += cmplx.Conj(x)
		}
	}

	return nil
}

// AddScaledInPlace accumulates dst += alpha·src.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func AddScaledInPlace(dst *CDense, alpha complex128, src CMatrix) error {
	if dst == nil {
		return matrixErrorf(opAddScaled, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	sd, err := asCDense(src)
	if err != nil {
		return matrixErrorf(opAddScaled, err)
	}
	for k := range dst.data {
		dst.data[k] += alpha * sd.data[k]
	}

	return nil
}

// RealPart returns Re(M) as a real Dense. Complexity: O(r*c).
func RealPart(m CMatrix) (*Dense, error) {
	return project(m, opRealPart, func(z complex128) float64 { return real(z) })
}

// ImagPart returns Im(M) as a real Dense. Complexity: O(r*c).
func ImagPart(m CMatrix) (*Dense, error) {
	return project(m, opImagPart, func(z complex128) float64 { return imag(z) })
}

func project(m CMatrix, tag string, part func(complex128) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	d, err := asCDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for k, v := range d.data {
		out.data[k] = part(v)
	}

	return out, nil
}

// IsReal reports whether every imaginary component is exactly zero.
func IsReal(m CMatrix) (bool, error) {
	d, err := asCDense(m)
	if err != nil {
		return false, err
	}
	for _, v := range d.data {
		if imag(v) != 0 {
			return false, nil
		}
	}

	return true, nil
}

// Embed returns the real 2r×2c block matrix [[X, −Y], [Y, X]] for M = X + iY.
// Implementation:
//   - Stage 1: validate non-nil.
//   - Stage 2: write the four blocks in one pass over M.
//
// Behavior highlights:
//   - z ↦ (Re z, Im z) maps M·z to Embed(M)·(Re z, Im z); a Hermitian M therefore
//     becomes a real symmetric matrix with the same spectrum, each eigenvalue
//     doubled, and the same singular values, each doubled.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(4·r*c).
//
// AI-Hints:
//   - This is the bridge that lets real symmetric eigen solvers handle
//     Hermitian input without a complex LAPACK.
func Embed(m CMatrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	d, err := asCDense(m)
	if err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	r, c := d.r, d.c
	out, err := NewDense(2*r, 2*c)
	if err != nil {
		return nil, matrixErrorf(opEmbed, err)
	}
	w := 2 * c
	var i, j int
	var x, y float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			x, y = real(d.data[i*c+j]), imag(d.data[i*c+j])
			out.data[i*w+j] = x       // top-left X
			out.data[i*w+c+j] = 0 - y // top-right −Y; 0−y keeps +0 for zero parts
			out.data[(r+i)*w+j] = y   // bottom-left Y
			out.data[(r+i)*w+c+j] = x // bottom-right X
		}
	}

	return out, nil
}

// Hermitize returns (M + Mᴴ)/2, the nearest Hermitian matrix in Frobenius norm.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n²).
func Hermitize(m CMatrix) (*CDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Hermitize: %w", err)
	}
	d, err := asCDense(m)
	if err != nil {
		return nil, fmt.Errorf("Hermitize: %w", err)
	}
	n := d.r
	out, err := NewCDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Hermitize: %w", err)
	}
	var i, j int
	var x complex128
	for i = 0; i < n; i++ {
		out.data[i*n+i] = complex(real(d.data[i*n+i]), 0)
		for j = i + 1; j < n; j++ {
			x = (d.data[i*n+j] + cmplx.Conj(d.data[j*n+i])) / 2
			out.data[i*n+j] = x
			out.data[j*n+i] = cmplx.Conj(x)
		}
	}

	return out, nil
}
