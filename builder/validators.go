// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
package builder

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/qwalk/matrix"
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// setEdge writes z at (u,v) and conj(z) at (v,u), keeping m Hermitian.
// A real z yields an ordinary undirected edge.
func setEdge(method string, m *matrix.CDense, u, v int, z complex128) error {
	if err := m.Set(u, v, z); err != nil {
		return fmt.Errorf("%s: Set(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}
	if err := m.Set(v, u, cmplx.Conj(z)); err != nil {
		return fmt.Errorf("%s: Set(%d,%d): %w: %w", method, v, u, ErrConstructFailed, err)
	}

	return nil
}

// validateSide ensures a sized topology fills m exactly.
func validateSide(method string, m *matrix.CDense, want int) error {
	if m.Rows() != want {
		return fmt.Errorf("%s: side %d, topology has %d vertices: %w", method, m.Rows(), want, ErrSideMismatch)
	}

	return nil
}
