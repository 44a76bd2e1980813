package matrixio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/internal/matrixio"
	"github.com/katalvlaran/qwalk/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMatrix(t *testing.T, src string, maxN int) (*matrix.CDense, error) {
	t.Helper()
	doc, err := matrixio.Decode(strings.NewReader(src))
	require.NoError(t, err)

	return doc.Matrix(maxN)
}

func TestDecode_DenseYAML(t *testing.T) {
	m, err := decodeMatrix(t, "real: [[0, 1], [1, 0]]\nimag: [[0, 1], [-1, 0]]\n", 0)
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 1), v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, -1), v)
}

func TestDecode_JSON(t *testing.T) {
	m, err := decodeMatrix(t, `{"vertices": 4, "edges": [[0, 1], [1, 2], [2, 3]]}`, 0)
	require.NoError(t, err)
	p4, err := builder.ByName(builder.KindPath, 4)
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, p4, matrix.WithEpsilon(0))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDecode_Generator(t *testing.T) {
	m, err := decodeMatrix(t, "graph: complete\nvertices: 5\nweight: 0.5\n", 0)
	require.NoError(t, err)
	v, err := m.At(3, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(0.5, 0), v)
}

func TestDocument_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"ambiguous", "real: [[0]]\ngraph: path\nvertices: 2\n", matrixio.ErrAmbiguous},
		{"badEdge", "edges: [[0, 1, 2]]\n", matrixio.ErrBadEdge},
		{"tooLarge", "graph: path\nvertices: 50\n", matrixio.ErrTooLarge},
		{"badWeight", "graph: path\nvertices: 3\nweight: .nan\n", matrixio.ErrBadWeight},
		{"unknownGraph", "graph: petersen\nvertices: 10\n", builder.ErrUnknownGraph},
		{"edgeOutOfRange", "vertices: 2\nedges: [[0, 5]]\n", builder.ErrBadEdge},
		{"ragged", "real: [[0, 1], [1]]\n", matrix.ErrBadShape},
		{"nothing", "weight: 2\n", matrixio.ErrEmptyDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeMatrix(t, tc.src, 16)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_Rejects(t *testing.T) {
	_, err := matrixio.Decode(strings.NewReader("reals: [[0]]\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = matrixio.Decode(strings.NewReader(""))
	require.ErrorIs(t, err, matrixio.ErrEmptyDocument)
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, kind := range []string{builder.KindCycle, builder.KindCompleteOriented} {
		m, err := builder.ByName(kind, 4)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, matrixio.Encode(&buf, m))
		if kind == builder.KindCycle {
			assert.NotContains(t, buf.String(), "imag")
		}

		path := filepath.Join(t.TempDir(), "m.yaml")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
		back, err := matrixio.ReadFile(path, 0)
		require.NoError(t, err)
		ok, err := matrix.AllClose(m, back, matrix.WithEpsilon(0))
		require.NoError(t, err)
		assert.Truef(t, ok, "%s round trip", kind)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := matrixio.ReadFile(filepath.Join(t.TempDir(), "nope.yaml"), 0)
	require.ErrorIs(t, err, os.ErrNotExist)
}
