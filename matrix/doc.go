// Package matrix offers the dense real and complex storage behind the spectral
// engine.
//
// The matrix package provides:
//
//   - Dense (float64) and CDense (complex128) row-major matrices with
//     bounds-checked accessors and an explicit finite-value policy.
//   - Real kernels (Mul, Transpose, MatVec) and the Jacobi symmetric eigen solver.
//   - Complex kernels (CAdd, CSub, CMul, CScale, ConjTranspose, CMatVec) plus
//     rank-one outer products for projector accumulation.
//   - The real embedding [[X,−Y],[Y,X]] that lets real symmetric solvers and SVD
//     handle Hermitian and complex input.
//   - Spectral 2-norms (gonum SVD) used by residual checks.
//
// Matrices are best for dense or small graphs where O(n²) memory and O(n³)
// factorizations are acceptable.
//
// Errors are package-level sentinels matched with errors.Is.
package matrix
