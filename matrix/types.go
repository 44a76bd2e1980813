// SPDX-License-Identifier: MIT

// Package matrix: public matrix interfaces.
// The package keeps two storage families side by side: real (float64) matrices
// used for graph adjacency and real kernels, and complex (complex128) matrices
// used by spectral projectors and evolution operators. complex128 is the only
// complex scalar type in the module; real data is promoted explicitly via
// Complexify, never implicitly.
package matrix

// Shaped is the minimal surface shared by real and complex matrices.
// Shape validators accept it so one guard serves both families.
type Shaped interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Shaped

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf under the numeric policy.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// CMatrix represents a two-dimensional mutable array of complex128 values.
// It mirrors Matrix one to one; the contracts of each method are identical.
type CMatrix interface {
	Shaped

	// At retrieves the element at position (i, j) or ErrOutOfRange.
	At(i, j int) (complex128, error)

	// Set assigns v at (i, j); ErrOutOfRange / ErrNaNInf on violation.
	Set(i, j int, v complex128) error

	// Clone returns a deep copy of the matrix.
	Clone() CMatrix
}
