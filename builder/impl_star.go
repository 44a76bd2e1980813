// SPDX-License-Identifier: MIT
// Package: qwalk/builder
//
// impl_star.go - implementation of the Star and Wheel constructors.
//
// Contract:
//   - Star: n ≥ 2; hub is vertex HubVertex (0), leaves 1..n-1, spokes {0, i}.
//   - Wheel: n ≥ 4; the Star spokes plus the rim cycle 1→2→…→n-1→1.
//   - Emission order: spokes by ascending leaf, then rim by ascending leaf.
//
// Complexity:
//   - Star O(n), Wheel O(2n) writes; O(1) extra space.

package builder

import "github.com/katalvlaran/qwalk/matrix"

// Star returns a Constructor that builds the star K_{1,n-1} centered on vertex 0.
func Star() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		return spokes(MethodStar, m, complex(cfg.weight, 0))
	}
}

// Wheel returns a Constructor that builds W_n: a hub on vertex 0 joined to a
// rim cycle over vertices 1..n-1.
func Wheel() Constructor {
	return func(m *matrix.CDense, cfg builderConfig) error {
		n := m.Rows()
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		w := complex(cfg.weight, 0)
		if err := spokes(MethodWheel, m, w); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := setEdge(MethodWheel, m, 1+i, 1+(i+1)%rim, w); err != nil {
				return err
			}
		}

		return nil
	}
}

func spokes(method string, m *matrix.CDense, w complex128) error {
	for leaf := HubVertex + 1; leaf < m.Rows(); leaf++ {
		if err := setEdge(method, m, HubVertex, leaf, w); err != nil {
			return err
		}
	}

	return nil
}
