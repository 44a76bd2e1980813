// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// check.go — consistency checks over a Decomposition.
//
// Every check returns a non-negative 2-norm of a residual matrix; values near
// zero mean the identity holds. CheckCompleteness and CheckReconstruction
// measure the real part of the residual, as the reference tooling did;
// Verify and CheckUnitarity use the full complex residual.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// Report carries the complex residual norms computed by Verify.
type Report struct {
	Completeness   float64 // ‖Σ P − I‖₂
	Reconstruction float64 // ‖Σ λ·P − A‖₂
}

// CheckCompleteness returns ‖Re(Σ Pᵢ − I)‖₂.
// Errors: ErrInvariantViolation (malformed decomposition).
func CheckCompleteness(d *Decomposition) (float64, error) {
	r, err := completenessResidual(d, opCompleteness)
	if err != nil {
		return 0, err
	}

	return realNorm(r, opCompleteness)
}

// CheckReconstruction returns ‖Re(Σ λᵢ·Pᵢ − A)‖₂.
// Implementation:
//   - Stage 1: a must be non-nil; d must be well formed. An eigenvalue/projector
//     length mismatch is reported as ErrInvariantViolation, never as a zero norm.
//   - Stage 2: a and the projectors must share the side n (ErrShapeMismatch).
//   - Stage 3: Weighted(d) − a, real part, spectral norm.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrInvariantViolation, ErrShapeMismatch.
//
// Complexity:
//   - Time O(k·n² + n³), Space O(n²).
func CheckReconstruction(a matrix.CMatrix, d *Decomposition) (float64, error) {
	r, err := reconstructionResidual(a, d, opReconstruction)
	if err != nil {
		return 0, err
	}

	return realNorm(r, opReconstruction)
}

// CheckUnitarity returns ‖U·Uᴴ − I‖₂ for a square complex matrix.
// Errors: matrix.ErrNilMatrix, ErrShapeMismatch.
func CheckUnitarity(u matrix.CMatrix) (float64, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return 0, spectralErrorf(opUnitarity, err)
	}
	if err := matrix.ValidateSquare(u); err != nil {
		return 0, causeErrorf(opUnitarity, ErrShapeMismatch, err)
	}
	uh, err := matrix.ConjTranspose(u)
	if err != nil {
		return 0, spectralErrorf(opUnitarity, err)
	}
	prod, err := matrix.CMul(u, uh)
	if err != nil {
		return 0, spectralErrorf(opUnitarity, err)
	}
	id, err := matrix.NewCIdentity(u.Rows())
	if err != nil {
		return 0, spectralErrorf(opUnitarity, err)
	}
	r, err := matrix.CSub(prod, id)
	if err != nil {
		return 0, spectralErrorf(opUnitarity, err)
	}
	v, err := matrix.CNorm2(r)
	if err != nil {
		return 0, spectralErrorf(opUnitarity, err)
	}

	return v, nil
}

// Verify runs both resolution checks on the full complex residuals and fails
// with ErrInvariantViolation when either exceeds threshold. A non-positive
// threshold selects DefaultVerifyThreshold. The Report is filled whenever both
// norms could be computed, including on a threshold failure.
func Verify(a matrix.CMatrix, d *Decomposition, threshold float64) (Report, error) {
	var rep Report
	if threshold <= 0 {
		threshold = DefaultVerifyThreshold
	}
	rc, err := completenessResidual(d, opVerify)
	if err != nil {
		return rep, err
	}
	rr, err := reconstructionResidual(a, d, opVerify)
	if err != nil {
		return rep, err
	}
	if rep.Completeness, err = matrix.CNorm2(rc); err != nil {
		return rep, spectralErrorf(opVerify, err)
	}
	if rep.Reconstruction, err = matrix.CNorm2(rr); err != nil {
		return rep, spectralErrorf(opVerify, err)
	}
	if rep.Completeness > threshold {
		return rep, fmt.Errorf("%s: completeness residual %.3g > %.3g: %w", opVerify, rep.Completeness, threshold, ErrInvariantViolation)
	}
	if rep.Reconstruction > threshold {
		return rep, fmt.Errorf("%s: reconstruction residual %.3g > %.3g: %w", opVerify, rep.Reconstruction, threshold, ErrInvariantViolation)
	}

	return rep, nil
}

func completenessResidual(d *Decomposition, tag string) (*matrix.CDense, error) {
	if err := d.validate(tag); err != nil {
		return nil, err
	}
	sum, err := ReconstructFunc(d, func(float64) complex128 { return 1 })
	if err != nil {
		return nil, spectralErrorf(tag, err)
	}
	id, err := matrix.NewCIdentity(d.Dim())
	if err != nil {
		return nil, spectralErrorf(tag, err)
	}
	r, err := matrix.CSub(sum, id)
	if err != nil {
		return nil, spectralErrorf(tag, err)
	}

	return r, nil
}

func reconstructionResidual(a matrix.CMatrix, d *Decomposition, tag string) (*matrix.CDense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, spectralErrorf(tag, err)
	}
	if err := d.validate(tag); err != nil {
		return nil, err
	}
	if a.Rows() != d.Dim() || a.Cols() != d.Dim() {
		return nil, fmt.Errorf("%s: matrix %dx%d vs projectors %dx%d: %w", tag, a.Rows(), a.Cols(), d.Dim(), d.Dim(), ErrShapeMismatch)
	}
	w, err := Weighted(d)
	if err != nil {
		return nil, spectralErrorf(tag, err)
	}
	r, err := matrix.CSub(w, a)
	if err != nil {
		return nil, spectralErrorf(tag, err)
	}

	return r, nil
}

func realNorm(r *matrix.CDense, tag string) (float64, error) {
	re, err := matrix.RealPart(r)
	if err != nil {
		return 0, spectralErrorf(tag, err)
	}
	v, err := matrix.Norm2(re)
	if err != nil {
		return 0, spectralErrorf(tag, err)
	}

	return v, nil
}
