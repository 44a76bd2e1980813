// SPDX-License-Identifier: MIT
// Package: qwalk/spectral
//
// options.go — functional options for Decompose and Walk.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Decompose itself never panics; defaults come from the constants below.

package spectral

import "math"

const (
	// DefaultTolerance is the absolute eigenvalue gap under which two
	// eigenpairs belong to the same eigenspace.
	DefaultTolerance = 1e-4

	// DefaultHermitianEps is the base tolerance of the Hermitian precondition
	// check; the effective value is DefaultHermitianEps·max(1, max|aᵢⱼ|).
	DefaultHermitianEps = 1e-9

	// DefaultVerifyThreshold bounds the residual norms accepted by Verify.
	DefaultVerifyThreshold = 1e-6
)

const (
	panicToleranceInvalid = "spectral: WithTolerance: tolerance must be finite, non-negative"
	panicHermEpsInvalid   = "spectral: WithHermitianEpsilon: eps must be finite, non-negative"
	panicSolverNil        = "spectral: WithSolver(nil)"
)

// Option customizes a Decompose call.
type Option func(*options)

type options struct {
	tolerance      float64
	solver         EigenSolver
	checkHermitian bool
	hermitianEps   float64
	hermitianEpsOK bool // hermitianEps set explicitly; otherwise scaled default
}

// WithTolerance sets the clustering tolerance. Zero puts every eigenpair in
// its own cluster. Panics on negative or non-finite input.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = eps }
}

// WithSolver swaps the eigen solver (GonumSolver by default). Panics on nil.
func WithSolver(s EigenSolver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *options) { o.solver = s }
}

// WithoutHermitianCheck skips the precondition check. Non-Hermitian input is
// then silently replaced by its Hermitian part (A + Aᴴ)/2 inside the solver.
func WithoutHermitianCheck() Option {
	return func(o *options) { o.checkHermitian = false }
}

// WithHermitianEpsilon fixes the absolute tolerance of the Hermitian check,
// disabling the magnitude scaling of DefaultHermitianEps.
func WithHermitianEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicHermEpsInvalid)
	}

	return func(o *options) {
		o.checkHermitian = true
		o.hermitianEps = eps
		o.hermitianEpsOK = true
	}
}

func gatherOptions(user ...Option) options {
	o := options{
		tolerance:      DefaultTolerance,
		solver:         GonumSolver{},
		checkHermitian: true,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
