// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// errors.go — sentinel errors for the spectral engine.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached at the detection site with fmt.Errorf("%s: %w", ...).
//   • When a lower layer (matrix) detected the problem, both sentinels stay
//     matchable: fmt.Errorf("%s: %w: %w", tag, ErrX, cause).
//   • Nothing in this package panics on user input; only the WithX option
//     constructors panic on nonsensical values.

package spectral

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch indicates a non-square input matrix, or operands whose
// dimensions disagree (matrix vs projectors, operator vs state vector).
// Always reported before any solver work is done.
var ErrShapeMismatch = errors.New("spectral: shape mismatch")

// ErrNotHermitian is the precondition violation raised when the input differs
// from its conjugate transpose by more than the Hermitian epsilon.
// Disabled with WithoutHermitianCheck.
var ErrNotHermitian = errors.New("spectral: input is not hermitian")

// ErrInvariantViolation reports a malformed decomposition (empty, nil
// projector, eigenvalue/projector length mismatch) or a consistency residual
// above the configured threshold. It is never silently mapped to a zero norm.
var ErrInvariantViolation = errors.New("spectral: invariant violation")

// ErrSolverFailed indicates the eigen solver did not converge or did not
// return a complete orthonormal basis.
var ErrSolverFailed = errors.New("spectral: eigen solver failed")

// ErrVertexOutOfRange indicates a start vertex outside [0, n).
var ErrVertexOutOfRange = errors.New("spectral: vertex out of range")

// Operation tags used when wrapping.
const (
	opDecompose      = "Decompose"
	opSolve          = "Solve"
	opReconstruct    = "ReconstructFunc"
	opCompleteness   = "CheckCompleteness"
	opReconstruction = "CheckReconstruction"
	opUnitarity      = "CheckUnitarity"
	opVerify         = "Verify"
	opBasisState     = "BasisState"
	opAmplitudes     = "Amplitudes"
	opPropagate      = "Propagate"
)

// spectralErrorf wraps err with an operation tag. Use only when err != nil.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// causeErrorf keeps both the package sentinel and the lower-level cause matchable.
func causeErrorf(tag string, sentinel, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, sentinel, cause)
}
