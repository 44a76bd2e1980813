package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/qwalk/matrix"
)

// ExampleEmbed shows the real block form of a complex matrix.
func ExampleEmbed() {
	m, _ := matrix.NewCDenseFrom(
		[][]float64{{0, 1}, {1, 0}},
		[][]float64{{0, -1}, {1, 0}},
	)
	e, _ := matrix.Embed(m)
	fmt.Print(e)
	// Output:
	// [0, 1, 0, 1]
	// [1, 0, -1, 0]
	// [0, -1, 0, 1]
	// [1, 0, 1, 0]
}

// ExampleOuterProduct builds the projector onto e₀.
func ExampleOuterProduct() {
	p, _ := matrix.OuterProduct([]complex128{1, 0})
	fmt.Println(p.Trace())
	// Output:
	// (1+0i)
}

// ExampleCNorm2 measures the operator norm of a diagonal complex matrix.
func ExampleCNorm2() {
	m, _ := matrix.NewCDenseFrom([][]float64{{0, 0}, {0, 1}}, [][]float64{{2, 0}, {0, 0}})
	n, _ := matrix.CNorm2(m)
	fmt.Printf("%.3f\n", n)
	// Output:
	// 2.000
}
