// SPDX-License-Identifier: MIT

// Package qwalk is a spectral decomposition engine for continuous-time
// quantum walks.
//
// Given a Hermitian adjacency matrix A (a graph Hamiltonian), qwalk groups
// its eigenvalues into clusters λ₁ < … < λ_k and builds the orthogonal
// projector P_j onto each eigenspace, so that
//
//	A    = Σ_j λ_j · P_j
//	U(t) = Σ_j exp(-i·t·λ_j) · P_j
//
// Once decomposed, U(t) for any t is a weighted sum of k matrices; no
// matrix exponential is ever computed.
//
// Layout:
//
//	matrix/     — dense complex matrices, Hermitian checks, norms, eigen kernels
//	builder/    — adjacency generators (path, cycle, star, wheel, complete, oriented)
//	spectral/   — Decompose, Reconstruct, consistency checks, walk read-out
//	internal/   — config, logging, metrics, matrix I/O, time sweeps, HTTP, CLI
//	cmd/qwalk/  — the command-line entry point
//
// Quick example:
//
//	a, _ := builder.ByName(builder.KindPath, 3)
//	d, _ := spectral.Decompose(a)
//	u, _ := spectral.Reconstruct(d, math.Pi/math.Sqrt2)
//	amps, _ := spectral.Amplitudes(u, 0)
//	fmt.Println(spectral.Probabilities(amps)) // [0 0 1]: perfect state transfer
package qwalk
