package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qwalk/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCDenseFrom_Shapes(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCDenseFrom([][]float64{{0, 1}, {1, 0}}, [][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, complex(1, -1), MustCAt(t, m, 0, 1))
	assert.Equal(t, complex(1, 1), MustCAt(t, m, 1, 0))

	// nil imaginary part means a purely real matrix.
	m, err = matrix.NewCDenseFrom([][]float64{{2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 0), MustCAt(t, m, 0, 0))

	_, err = matrix.NewCDenseFrom([][]float64{{0, 1}, {1, 0}}, [][]float64{{0}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewCDenseFrom([][]float64{{0, 1}, {1, 0}}, [][]float64{{0, 0}, {0}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewCDenseFrom([][]float64{{1}}, [][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewCDenseFrom(nil, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestCDense_AccessorsAndClone(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1i))
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, complex(math.Inf(1), 0)), matrix.ErrNaNInf)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 0))
	assert.Equal(t, 1i, MustCAt(t, m, 0, 1))

	assert.Equal(t, []complex128{1i, 0}, m.Col(1))
	assert.Nil(t, m.Col(5))

	id, err := matrix.NewCIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, complex(3, 0), id.Trace())
}

func TestComplexify(t *testing.T) {
	t.Parallel()

	r := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	c, err := matrix.Complexify(hide{r})
	require.NoError(t, err)
	assert.Equal(t, complex(3, 0), MustCAt(t, c, 1, 0))

	_, err = matrix.Complexify(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCAddSubScale(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewCDenseFrom([][]float64{{1, 2}}, [][]float64{{1, 0}})
	require.NoError(t, err)
	b, err := matrix.NewCDenseFrom([][]float64{{3, 4}}, [][]float64{{0, 1}})
	require.NoError(t, err)

	s, err := matrix.CAdd(a, chide{b})
	require.NoError(t, err)
	assert.Equal(t, complex(4, 1), MustCAt(t, s, 0, 0))
	assert.Equal(t, complex(6, 1), MustCAt(t, s, 0, 1))

	d, err := matrix.CSub(a, b)
	require.NoError(t, err)
	assert.Equal(t, complex(-2, 1), MustCAt(t, d, 0, 0))

	sc, err := matrix.CScale(a, 1i)
	require.NoError(t, err)
	assert.Equal(t, complex(-1, 1), MustCAt(t, sc, 0, 0))
	assert.Equal(t, complex(1, 1), MustCAt(t, a, 0, 0), "input must not be mutated")

	c, err := matrix.NewCDense(2, 1)
	require.NoError(t, err)
	_, err = matrix.CAdd(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.CSub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCMul_ConjTranspose(t *testing.T) {
	t.Parallel()

	// σy = [[0, −i], [i, 0]]; σy² = I.
	sy, err := matrix.NewCDenseFrom([][]float64{{0, 0}, {0, 0}}, [][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	sq, err := matrix.CMul(sy, sy)
	require.NoError(t, err)
	id, err := matrix.NewCIdentity(2)
	require.NoError(t, err)
	ok, err := matrix.AllClose(sq, id)
	require.NoError(t, err)
	assert.True(t, ok)

	h, err := matrix.ConjTranspose(sy)
	require.NoError(t, err)
	ok, err = matrix.AllClose(h, sy)
	require.NoError(t, err)
	assert.True(t, ok, "σy is Hermitian")

	rect, err := matrix.NewCDenseFrom([][]float64{{1, 2, 3}}, [][]float64{{1, 0, -1}})
	require.NoError(t, err)
	rt, err := matrix.ConjTranspose(rect)
	require.NoError(t, err)
	assert.Equal(t, 3, rt.Rows())
	assert.Equal(t, complex(3, 1), MustCAt(t, rt, 2, 0))

	_, err = matrix.CMul(rect, rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCMatVec(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCDenseFrom([][]float64{{0, 1}, {1, 0}}, nil)
	require.NoError(t, err)
	y, err := matrix.CMatVec(m, []complex128{1i, 2})
	require.NoError(t, err)
	assert.Equal(t, []complex128{2, 1i}, y)

	_, err = matrix.CMatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.CMatVec(m, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestOuterProduct_IsProjector(t *testing.T) {
	t.Parallel()

	inv := 1 / math.Sqrt(2)
	v := []complex128{complex(inv, 0), complex(0, inv)}
	p, err := matrix.OuterProduct(v)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, real(MustCAt(t, p, 0, 0)), 1e-15)
	assert.InDelta(t, -0.5, imag(MustCAt(t, p, 0, 1)), 1e-15)
	assert.InDelta(t, 0.5, imag(MustCAt(t, p, 1, 0)), 1e-15)

	pp, err := matrix.CMul(p, p)
	require.NoError(t, err)
	ok, err := matrix.AllClose(pp, p, matrix.WithEpsilon(1e-12))
	require.NoError(t, err)
	assert.True(t, ok, "P² = P")

	_, err = matrix.OuterProduct(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAddOuterAndScaledInPlace(t *testing.T) {
	t.Parallel()

	dst, err := matrix.NewCDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.AddOuterInPlace(dst, 1, []complex128{1, 0}))
	require.NoError(t, matrix.AddOuterInPlace(dst, 1, []complex128{0, 1}))
	id, err := matrix.NewCIdentity(2)
	require.NoError(t, err)
	ok, err := matrix.AllClose(dst, id)
	require.NoError(t, err)
	assert.True(t, ok)

	require.ErrorIs(t, matrix.AddOuterInPlace(dst, 1, []complex128{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.AddOuterInPlace(nil, 1, []complex128{1}), matrix.ErrNilMatrix)

	require.NoError(t, matrix.AddScaledInPlace(dst, -1i, id))
	assert.Equal(t, complex(1, -1), MustCAt(t, dst, 0, 0))
	require.ErrorIs(t, matrix.AddScaledInPlace(nil, 1, id), matrix.ErrNilMatrix)
}

func TestRealImagParts_IsReal(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCDenseFrom([][]float64{{1, 2}}, [][]float64{{3, 4}})
	require.NoError(t, err)
	re, err := matrix.RealPart(m)
	require.NoError(t, err)
	im, err := matrix.ImagPart(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, re.ToRows())
	assert.Equal(t, [][]float64{{3, 4}}, im.ToRows())

	isReal, err := matrix.IsReal(m)
	require.NoError(t, err)
	assert.False(t, isReal)

	c, err := matrix.Complexify(re)
	require.NoError(t, err)
	isReal, err = matrix.IsReal(c)
	require.NoError(t, err)
	assert.True(t, isReal)
}

func TestEmbed_BlockLayout(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCDenseFrom([][]float64{{1, 2}, {3, 4}}, [][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)
	e, err := matrix.Embed(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 2, -5, -6},
		{3, 4, -7, -8},
		{5, 6, 1, 2},
		{7, 8, 3, 4},
	}, e.ToRows())

	h := RandomHermitian(t, 4, 7)
	eh, err := matrix.Embed(h)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(eh, 0), "Hermitian embeds to symmetric")
}

func TestHermitize(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewCDenseFrom([][]float64{{1, 2}, {0, 3}}, [][]float64{{1, 2}, {0, 0}})
	require.NoError(t, err)
	h, err := matrix.Hermitize(m)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateHermitian(h, 0))
	assert.Equal(t, complex(1, 0), MustCAt(t, h, 0, 0))
	assert.Equal(t, complex(1, 1), MustCAt(t, h, 0, 1))
	assert.Equal(t, complex(1, -1), MustCAt(t, h, 1, 0))

	rect, err := matrix.NewCDense(1, 2)
	require.NoError(t, err)
	_, err = matrix.Hermitize(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
