// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_platonic.go — adjacency of the five Platonic solids.
//
// Contract:
//   • PlatonicSolid(name) needs a matrix of side PlatonicVertices(name)
//     (else ErrSideMismatch); an unknown name is ErrUnknownGraph.
//   • Edge sets are fixed, listed with u < v in lexicographic order, and part
//     of the public contract: vertex labels never change.
//
// Complexity:
//   • Time: O(E) writes (E ≤ 30). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// PlatonicName enumerates the Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  K4
	Cube                             // V=8,  E=12, Q3
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return fmt.Sprintf("PlatonicName(%d)", int(p))
	}
}

type chord struct{ u, v int }

var platonic = map[PlatonicName]struct {
	n     int
	edges []chord
}{
	Tetrahedron: {4, []chord{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	}},
	// Faces 0-1-2-3 and 4-5-6-7 joined by verticals i ~ i+4.
	Cube: {8, []chord{
		{0, 1}, {0, 3}, {0, 4}, {1, 2}, {1, 5}, {2, 3},
		{2, 6}, {3, 7}, {4, 5}, {4, 7}, {5, 6}, {6, 7},
	}},
	// Poles 0 and 1, equator 2-4-3-5 (2 and 3 opposite, 4 and 5 opposite).
	Octahedron: {6, []chord{
		{0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 3},
		{1, 4}, {1, 5}, {2, 4}, {2, 5}, {3, 4}, {3, 5},
	}},
	// Pentagons 0..4 and 5..9, a 10-ring 10..19; top spokes to even ring
	// vertices, bottom spokes to odd ones.
	Dodecahedron: {20, []chord{
		{0, 1}, {0, 4}, {0, 10}, {1, 2}, {1, 12}, {2, 3}, {2, 14}, {3, 4},
		{3, 16}, {4, 18}, {5, 6}, {5, 9}, {5, 11}, {6, 7}, {6, 13}, {7, 8},
		{7, 15}, {8, 9}, {8, 17}, {9, 19}, {10, 11}, {10, 19}, {11, 12}, {12, 13},
		{13, 14}, {14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
	}},
	// Pole 0 over ring 1..5, ring 6..10 over pole 11; top i touches bottom i+5
	// and i+6 (cyclically).
	Icosahedron: {12, []chord{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {1, 5}, {1, 6},
		{1, 7}, {2, 3}, {2, 7}, {2, 8}, {3, 4}, {3, 8}, {3, 9}, {4, 5},
		{4, 9}, {4, 10}, {5, 6}, {5, 10}, {6, 7}, {6, 10}, {6, 11}, {7, 8},
		{7, 11}, {8, 9}, {8, 11}, {9, 10}, {9, 11}, {10, 11},
	}},
}

// PlatonicVertices reports the vertex count of a solid.
func PlatonicVertices(name PlatonicName) (int, error) {
	s, ok := platonic[name]
	if !ok {
		return 0, fmt.Errorf("%s: %v: %w", MethodPlatonicSolid, name, ErrUnknownGraph)
	}

	return s.n, nil
}

// PlatonicSolid returns a Constructor for the skeleton of the named solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		s, ok := platonic[name]
		if !ok {
			return fmt.Errorf("%s: %v: %w", MethodPlatonicSolid, name, ErrUnknownGraph)
		}
		if err := validateSide(MethodPlatonicSolid, m, s.n); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		for _, e := range s.edges {
			if err := setEdge(MethodPlatonicSolid, m, e.u, e.v, w); err != nil {
				return err
			}
		}

		return nil
	}
}
