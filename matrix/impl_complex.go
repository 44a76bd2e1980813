// SPDX-License-Identifier: MIT

// Package matrix - CDense: complex128 row-major storage.
//
// Purpose:
//   - Hold spectral projectors and evolution operators, whose entries are complex
//     even when the generating adjacency matrix is real.
//   - Mirror Dense exactly (offset formula, bounds policy, numeric policy) so the
//     two families stay interchangeable at the call site.
//
// Complexity quicksheet:
//   - NewCDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// cdenseErrorf wraps an error with a uniform CDense context and coordinates.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// CDense is a concrete row-major complex matrix (offset = i*c + j).
type CDense struct {
	r, c           int          // row and column counts (>0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // reject NaN/Inf in either component when true
}

var (
	_ CMatrix      = (*CDense)(nil)
	_ fmt.Stringer = (*CDense)(nil)
)

// cIsNonFinite reports NaN or ±Inf in either component.
func cIsNonFinite(v complex128) bool { return cmplx.IsNaN(v) || cmplx.IsInf(v) }

// NewCDense creates an r×c complex zero matrix.
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: Time O(r*c), Space O(r*c).
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CDense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewCIdentity returns the n×n complex identity.
func NewCIdentity(n int) (*CDense, error) {
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewCDenseFrom assembles a complex matrix from real and imaginary parts.
// Implementation:
//   - Stage 1: validate re is non-empty and rectangular; im may be nil (purely real).
//   - Stage 2: when im is given it must have exactly the shape of re.
//   - Stage 3: enforce the finite-value policy, copy re[i][j] + i·im[i][j].
//
// Errors:
//   - ErrInvalidDimensions (empty re), ErrBadShape (ragged rows or im shape
//     differs from re), ErrNaNInf (non-finite input under the policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the natural ingestion point for JSON/YAML matrices that carry
//     separate "real" and "imag" grids.
func NewCDenseFrom(re, im [][]float64, opts ...Option) (*CDense, error) {
	o := gatherOptions(opts...)
	if len(re) == 0 || len(re[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(re), len(re[0])
	if im != nil && len(im) != r {
		return nil, fmt.Errorf("CDense.%s: imag has %d rows, want %d: %w", ctxFrom, len(im), r, ErrBadShape)
	}
	m, err := NewCDense(r, c)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	var x, y float64
	for i = 0; i < r; i++ {
		if len(re[i]) != c {
			return nil, fmt.Errorf("CDense.%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(re[i]), c, ErrBadShape)
		}
		if im != nil && len(im[i]) != c {
			return nil, fmt.Errorf("CDense.%s: imag row %d has %d cols, want %d: %w", ctxFrom, i, len(im[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			x, y = re[i][j], 0
			if im != nil {
				y = im[i][j]
			}
			if m.validateNaNInf && (isNonFinite(x) || isNonFinite(y)) {
				return nil, cdenseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = complex(x, y)
		}
	}

	return m, nil
}

// Complexify promotes a real matrix to complex128 (imaginary parts zero).
// This is the only real→complex conversion in the module.
// Errors: ErrNilMatrix; errors from m.At. Complexity: O(r*c).
func Complexify(m Matrix) (*CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opComplexify, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opComplexify, err)
	}
	out, err := NewCDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opComplexify, err)
	}
	for k, v := range d.data {
		out.data[k] = complex(v, 0)
	}

	return out, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *CDense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *CDense) Cols() int { return m.c }

func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *CDense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cdenseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col); ErrOutOfRange or ErrNaNInf on violation.
func (m *CDense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cdenseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && cIsNonFinite(v) {
		return cdenseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *CDense) Clone() CMatrix {
	return m.clone()
}

func (m *CDense) clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Col returns a copy of column j; nil when j is out of range.
// Complexity: O(r).
func (m *CDense) Col(j int) []complex128 {
	if j < 0 || j >= m.c {
		return nil
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Trace returns Σ m[i,i] over the main diagonal (min(r,c) terms).
func (m *CDense) Trace() complex128 {
	var s complex128
	n := m.r
	if m.c < n {
		n = m.c
	}
	for i := 0; i < n; i++ {
		s += m.data[i*m.c+i]
	}

	return s
}

// String renders rows for diagnostics using %g on both components.
func (m *CDense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asCDense returns m itself when it is a *CDense, otherwise a materialized copy.
// Complexity: O(1) fast-path, O(r*c) fallback.
func asCDense(m CMatrix) (*CDense, error) {
	if d, ok := m.(*CDense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewCDense(r, c)
	if err != nil {
		return nil, err
	}
	out.validateNaNInf = false
	var i, j int
	var v complex128
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
