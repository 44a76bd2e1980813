// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// edgelist.go — adjacency matrix ↔ edge list conversion.
//
// Contract:
//   • ToEdgeList lists every nonzero entry (u,v) in row-major order, so an
//     undirected edge appears twice: (u,v) and (v,u).
//   • FromEdgeList writes the edge weight at (u,v) and its conjugate at (v,u);
//     the result is always Hermitian and FromEdgeList(ToEdgeList(A)) == A for
//     any 0/1 symmetric A.
//   • n == 0 infers the vertex count as max endpoint + 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// Edge is one adjacency entry between vertices U and V (0-based).
type Edge struct {
	U, V int
}

// ToEdgeList returns every (u,v) with m[u][v] ≠ 0, rows then columns ascending.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare. Complexity: O(n²).
func ToEdgeList(m matrix.CMatrix) ([]Edge, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodToEdgeList, err)
	}
	n := m.Rows()
	var edges []Edge
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			z, err := m.At(u, v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", MethodToEdgeList, err)
			}
			if z != 0 {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}

	return edges, nil
}

// Edges returns a Constructor that writes the given edges (weight from cfg).
// Errors: ErrBadEdge for an endpoint outside [0, n).
func Edges(edges []Edge) Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		w := complex(cfg.weight, 0)
		for i, e := range edges {
			if e.U < 0 || e.V < 0 || e.U >= n || e.V >= n {
				return fmt.Errorf("%s: edge %d (%d,%d) outside [0,%d): %w", MethodFromEdgeList, i, e.U, e.V, n, ErrBadEdge)
			}
			if err := setEdge(MethodFromEdgeList, m, e.U, e.V, w); err != nil {
				return err
			}
		}

		return nil
	}
}

// FromEdgeList builds the n×n adjacency of an edge list. With n == 0 the size
// is inferred from the largest endpoint.
// Errors: ErrBadEdge, ErrTooFewVertices (no edges and n == 0).
func FromEdgeList(edges []Edge, n int, opts ...BuilderOption) (*matrix.CDense, error) {
	if n == 0 {
		for _, e := range edges {
			if e.U+1 > n {
				n = e.U + 1
			}
			if e.V+1 > n {
				n = e.V + 1
			}
		}
	}

	return BuildMatrix(n, opts, Edges(edges))
}
