// Package spectral computes continuous-time quantum walks U(t) = exp(−i·t·A)
// through an explicit spectral decomposition of a Hermitian matrix A.
//
// Pipeline:
//
//	EigenSolver → Decompose → {Reconstruct, CheckCompleteness, CheckReconstruction}
//
// Decompose groups eigenvalues closer than a tolerance (1e-4 by default) and
// sums v·vᴴ over each group into an orthogonal eigenprojector P. Any scalar
// function f of A is then Σ f(λ)·P; the walk operator uses f(λ) = exp(−i·t·λ).
//
// A Decomposition is immutable once returned, so one decomposition can serve
// many times t concurrently:
//
//	d, err := spectral.Decompose(a)
//	if err != nil { ... }
//	u, err := spectral.Reconstruct(d, 0.5)
//	amps, err := spectral.Amplitudes(u, 0)
//	probs := spectral.Probabilities(amps)
//
// Complex input is handled natively: Hermitian matrices such as oriented
// complete graphs (±i entries) go through the same path as real symmetric ones.
//
// Errors are package sentinels matched with errors.Is: ErrShapeMismatch,
// ErrNotHermitian, ErrInvariantViolation, ErrSolverFailed, ErrVertexOutOfRange.
package spectral
