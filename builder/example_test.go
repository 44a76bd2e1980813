package builder_test

import (
	"fmt"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/matrix"
)

// ExampleByName builds the path P_3 and prints its real adjacency.
func ExampleByName() {
	m, _ := builder.ByName("path", 3)
	re, _ := matrix.RealPart(m)
	fmt.Print(re)
	// Output:
	// [0, 1, 0]
	// [1, 0, 1]
	// [0, 1, 0]
}

// ExampleToEdgeList lists the nonzero entries of a 3-cycle.
func ExampleToEdgeList() {
	m, _ := builder.ByName("cycle", 3)
	edges, _ := builder.ToEdgeList(m)
	fmt.Println(edges)
	// Output:
	// [{0 1} {0 2} {1 0} {1 2} {2 0} {2 1}]
}
