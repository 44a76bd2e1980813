// Package builder generates adjacency matrices of standard graphs for the
// spectral engine, in the same functional-options style as the rest of the
// module.
//
// The package offers:
//
//   - Orchestration:
//     – Constructor:  closure writing a topology into an n×n adjacency.
//     – BuildMatrix:  allocates the matrix and applies constructors in order.
//     – ByName:       "path", "cycle", "star", "wheel", "complete", "oriented",
//       "bipartite" (balanced K_{⌊n/2⌋,⌈n/2⌉}), "hypercube" (n a power of two).
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteOriented
//     (complex Hermitian tournament with ±i entries), RandomSparse (G(n,p)),
//     Grid, Hypercube, CompleteBipartite, PlatonicSolid.
//   - Conversion: ToEdgeList / FromEdgeList / Edges.
//   - Options: WithWeight, WithSeed, WithRand (panic on nonsensical values).
//
// Guarantees:
//
//   - Every generated matrix is Hermitian (real symmetric unless oriented),
//     so it satisfies the precondition of spectral.Decompose.
//   - Deterministic output for equal inputs, options and seed.
//   - Constructors never panic; errors are sentinels matched with errors.Is.
package builder
