package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/sweep"
	"github.com/katalvlaran/qwalk/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error", "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func decodeResult(t *testing.T, out string) decomposeResult {
	t.Helper()
	var res decomposeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)

	return res
}

func TestDecompose_JSON(t *testing.T) {
	out, err := run(t, "decompose", "--graph", "complete", "-n", "4", "--format", "json")
	require.NoError(t, err)

	res := decodeResult(t, out)
	assert.Equal(t, "complete graph on 4 vertices", res.Input)
	assert.Equal(t, 4, res.Vertices)
	require.Len(t, res.Values, 2)
	assert.InDelta(t, -1, res.Values[0], 1e-9)
	assert.InDelta(t, 3, res.Values[1], 1e-9)
	assert.Equal(t, []int{3, 1}, res.Multiplicities)
	assert.True(t, res.Consistent)
}

func TestDecompose_Text(t *testing.T) {
	out, err := run(t, "decompose", "--graph", "cycle", "-n", "6", "--projectors")
	require.NoError(t, err)

	assert.Contains(t, out, "cycle graph on 6 vertices: 4 distinct eigenvalues")
	assert.Contains(t, out, "-2.000000")
	assert.Contains(t, out, "consistent")
	assert.NotContains(t, out, "inconsistent")
	assert.Contains(t, out, "# projector 3, lambda = 2.000000")
	assert.Contains(t, out, "real:")
}

func TestDecompose_CSV(t *testing.T) {
	out, err := run(t, "decompose", "--graph", "path", "-n", "2", "--format", "csv", "--solver", "jacobi")
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"lambda", "multiplicity"}, recs[0])
	for i, want := range []float64{-1, 1} {
		v, err := strconv.ParseFloat(recs[i+1][0], 64)
		require.NoError(t, err)
		assert.InDelta(t, want, v, 1e-9)
		assert.Equal(t, "1", recs[i+1][1])
	}
}

func TestDecompose_ConfigFile(t *testing.T) {
	path := writeFile(t, "qwalk.yaml", `
walk:
  graph: star
  vertices: 5
  format: json
`)
	out, err := run(t, "decompose", "--config", path)
	require.NoError(t, err)

	res := decodeResult(t, out)
	assert.Equal(t, 5, res.Vertices)
	require.Len(t, res.Values, 3)
	assert.InDelta(t, -2, res.Values[0], 1e-9)
	assert.InDelta(t, 0, res.Values[1], 1e-9)
	assert.InDelta(t, 2, res.Values[2], 1e-9)
	assert.Equal(t, []int{1, 3, 1}, res.Multiplicities)
}

func TestDecompose_EnvAndFlagPrecedence(t *testing.T) {
	t.Setenv("QWALK_WALK_VERTICES", "5")

	out, err := run(t, "decompose", "--graph", "complete", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1}, decodeResult(t, out).Multiplicities)

	out, err = run(t, "decompose", "--graph", "complete", "-n", "3", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, decodeResult(t, out).Multiplicities, "flag wins over env")
}

func TestDecompose_MatrixFile(t *testing.T) {
	path := writeFile(t, "h.yaml", `
real: [[0, 0], [0, 0]]
imag: [[0, 1], [-1, 0]]
`)
	out, err := run(t, "decompose", "--matrix", path, "--format", "json")
	require.NoError(t, err)

	res := decodeResult(t, out)
	assert.Equal(t, path, res.Input)
	require.Len(t, res.Values, 2)
	assert.InDelta(t, -1, res.Values[0], 1e-9)
	assert.InDelta(t, 1, res.Values[1], 1e-9)
}

func TestDecompose_SkipHermitianCheck(t *testing.T) {
	path := writeFile(t, "a.yaml", "real: [[0, 2], [0, 0]]\n")

	_, err := run(t, "decompose", "--matrix", path)
	require.ErrorIs(t, err, spectral.ErrNotHermitian)

	out, err := run(t, "decompose", "--matrix", path, "--skip-hermitian-check")
	require.ErrorIs(t, err, spectral.ErrInvariantViolation)
	assert.Contains(t, out, "inconsistent")
}

func TestWalk_CSV(t *testing.T) {
	out, err := run(t, "walk", "--graph", "path", "-n", "3", "--t-end", "0.2", "--step", "0.1", "--format", "csv")
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"t", "p0", "p1", "p2", "total"}, recs[0])
	assert.Equal(t, "0", recs[1][0])
	p0, err := strconv.ParseFloat(recs[1][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1, p0, 1e-12)
}

func TestWalk_JSONPerfectStateTransfer(t *testing.T) {
	tPST := fmt.Sprint(math.Pi / math.Sqrt2)
	out, err := run(t, "walk", "--graph", "path", "-n", "3",
		"--t-start", tPST, "--t-end", tPST, "--step", "1", "--format", "json", "--workers", "2")
	require.NoError(t, err)

	var frames []sweep.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frames))
	require.Len(t, frames, 1)
	assert.InDelta(t, 1, frames[0].Probabilities[2], 1e-9)
	assert.InDelta(t, 1, frames[0].Total, 1e-9)
}

func TestWalk_Text(t *testing.T) {
	out, err := run(t, "walk", "--graph", "cycle", "-n", "4", "--t-end", "0.5", "--step", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "1.000000")
	assert.Contains(t, out, "0.5000")
}

func TestErrors(t *testing.T) {
	_, err := run(t, "decompose", "--graph", "moebius")
	require.ErrorIs(t, err, config.ErrConfigValidation)

	_, err = run(t, "decompose", "--format", "xml")
	require.ErrorIs(t, err, config.ErrConfigValidation)

	_, err = run(t, "decompose", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeFile(t, "p.yaml", "graph: path\nvertices: 3\n")
	_, err = run(t, "walk", "--matrix", path, "--start", "7", "--t-end", "1", "--step", "1")
	require.ErrorIs(t, err, spectral.ErrVertexOutOfRange)

	_, err = run(t, "walk", "--step", "-1")
	require.ErrorIs(t, err, config.ErrConfigValidation)
}

func TestServe_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--log-level", "error", "serve", "--addr", "127.0.0.1:0", "--mode", "test"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}
