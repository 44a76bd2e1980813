// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// reconstruct.go — f(A) = Σ f(λᵢ)·Pᵢ from a Decomposition.

package spectral

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qwalk/matrix"
)

// ReconstructFunc returns Σ f(Values[i])·Projectors[i] as a fresh complex matrix.
// Implementation:
//   - Stage 1: validate the decomposition (aligned, non-empty, square projectors).
//   - Stage 2: accumulate in cluster order into one zeroed n×n complex buffer.
//
// Errors:
//   - ErrInvariantViolation for a malformed decomposition or a nil f.
//
// Complexity:
//   - Time O(k·n²) for k clusters, Space O(n²).
//
// AI-Hints:
//   - f(λ) = 1 gives Σ P (≈ I); f(λ) = λ gives A; f(λ) = exp(−itλ) gives U(t).
func ReconstructFunc(d *Decomposition, f func(lambda float64) complex128) (*matrix.CDense, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: nil weight function: %w", opReconstruct, ErrInvariantViolation)
	}
	if err := d.validate(opReconstruct); err != nil {
		return nil, err
	}
	n := d.Dim()
	out, err := matrix.NewCDense(n, n)
	if err != nil {
		return nil, spectralErrorf(opReconstruct, err)
	}
	for i, p := range d.Projectors {
		if err = matrix.AddScaledInPlace(out, f(d.Values[i]), p); err != nil {
			return nil, spectralErrorf(opReconstruct, err)
		}
	}

	return out, nil
}

// Reconstruct returns the walk operator U(t) = Σ exp(−i·t·λ)·P.
// U(0) = Σ P, which equals the identity for a complete decomposition.
// Errors: ErrInvariantViolation.
func Reconstruct(d *Decomposition, t float64) (*matrix.CDense, error) {
	return ReconstructFunc(d, func(lambda float64) complex128 {
		return cmplx.Exp(complex(0, -t*lambda))
	})
}

// Weighted returns Σ λ·P, the matrix the decomposition was built from.
func Weighted(d *Decomposition) (*matrix.CDense, error) {
	return ReconstructFunc(d, func(lambda float64) complex128 { return complex(lambda, 0) })
}

// Walk computes U(t) = exp(−i·t·A) in one call: Decompose then Reconstruct.
// Callers evaluating many times t should decompose once and call Reconstruct.
func Walk(a matrix.CMatrix, t float64, opts ...Option) (*matrix.CDense, error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(d, t)
}
