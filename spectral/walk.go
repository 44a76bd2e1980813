// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// walk.go — reading a quantum walk out of U(t).

package spectral

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// BasisState returns the standard basis vector e_v of length n, the state of
// a walker localized on vertex v.
// Errors: ErrShapeMismatch (n <= 0), ErrVertexOutOfRange.
func BasisState(n, v int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", opBasisState, n, ErrShapeMismatch)
	}
	if v < 0 || v >= n {
		return nil, fmt.Errorf("%s: vertex %d not in [0,%d): %w", opBasisState, v, n, ErrVertexOutOfRange)
	}
	psi := make([]complex128, n)
	psi[v] = 1

	return psi, nil
}

// Amplitudes returns U·e_start, i.e. column start of U: the amplitude on each
// vertex of a walker that started on vertex start.
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch, ErrVertexOutOfRange.
func Amplitudes(u matrix.CMatrix, start int) ([]complex128, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return nil, spectralErrorf(opAmplitudes, err)
	}
	if err := matrix.ValidateSquare(u); err != nil {
		return nil, causeErrorf(opAmplitudes, ErrShapeMismatch, err)
	}
	n := u.Rows()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%s: vertex %d not in [0,%d): %w", opAmplitudes, start, n, ErrVertexOutOfRange)
	}
	amps := make([]complex128, n)
	for i := 0; i < n; i++ {
		v, err := u.At(i, start)
		if err != nil {
			return nil, spectralErrorf(opAmplitudes, err)
		}
		amps[i] = v
	}

	return amps, nil
}

// Propagate returns U·ψ for an arbitrary initial state ψ.
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch.
func Propagate(u matrix.CMatrix, psi []complex128) ([]complex128, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return nil, spectralErrorf(opPropagate, err)
	}
	if u.Cols() != len(psi) {
		return nil, fmt.Errorf("%s: operator has %d columns, state has %d entries: %w", opPropagate, u.Cols(), len(psi), ErrShapeMismatch)
	}
	out, err := matrix.CMatVec(u, psi)
	if err != nil {
		return nil, spectralErrorf(opPropagate, err)
	}

	return out, nil
}

// Probabilities maps amplitudes to measurement probabilities |a|².
func Probabilities(amps []complex128) []float64 {
	p := make([]float64, len(amps))
	for i, a := range amps {
		p[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return p
}
