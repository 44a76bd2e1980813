package spectral_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/spectral"
)

// ExampleDecompose groups the triangle K3 into its two eigenspaces.
func ExampleDecompose() {
	a, _ := builder.ByName(builder.KindComplete, 3)
	d, _ := spectral.Decompose(a)
	for i := range d.Values {
		fmt.Printf("λ=%.3f rank=%d\n", d.Values[i], d.Multiplicities[i])
	}
	// Output:
	// λ=-1.000 rank=2
	// λ=2.000 rank=1
}

// ExampleReconstruct shows perfect state transfer across the path P3.
func ExampleReconstruct() {
	a, _ := builder.ByName(builder.KindPath, 3)
	d, _ := spectral.Decompose(a)
	u, _ := spectral.Reconstruct(d, math.Pi/math.Sqrt2)
	amps, _ := spectral.Amplitudes(u, 0)
	for v, p := range spectral.Probabilities(amps) {
		fmt.Printf("vertex %d: %.3f\n", v, p)
	}
	// Output:
	// vertex 0: 0.000
	// vertex 1: 0.000
	// vertex 2: 1.000
}

// ExampleVerify checks a complex (oriented) adjacency.
func ExampleVerify() {
	a, _ := builder.ByName(builder.KindCompleteOriented, 4)
	d, _ := spectral.Decompose(a)
	_, err := spectral.Verify(a, d, 1e-9)
	fmt.Println(err)
	// Output:
	// <nil>
}
