package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/internal/metrics"
	"github.com/katalvlaran/qwalk/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T) (*server.Server, *metrics.Collector, *observer.ObservedLogs) {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.Server.MaxVertices = 16
	core, logs := observer.New(zap.DebugLevel)
	m := metrics.New(false)

	return server.New(cfg, logging.NewLoggerFromCore(core), m), m, logs
}

func post(t *testing.T, s *server.Server, path string, body interface{}, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	return rec
}

func TestHealth(t *testing.T) {
	s, _, _ := newServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestDecompose_Graph(t *testing.T) {
	s, m, logs := newServer(t)
	rec := post(t, s, "/v1/decompose", map[string]interface{}{
		"graph": "complete", "vertices": 4, "include_projectors": true,
	}, "X-Request-ID", "req-42")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	var resp server.DecomposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-42", resp.RequestID)
	assert.Equal(t, 4, resp.Vertices)
	require.Len(t, resp.Values, 2)
	assert.InDelta(t, -1, resp.Values[0], 1e-9)
	assert.InDelta(t, 3, resp.Values[1], 1e-9)
	assert.Equal(t, []int{3, 1}, resp.Multiplicities)
	assert.True(t, resp.Consistent)
	assert.Less(t, resp.Completeness, 1e-9)
	assert.Less(t, resp.Reconstruction, 1e-9)
	require.Len(t, resp.Projectors, 2)
	assert.InDelta(t, 0.25, resp.Projectors[1].Real[0][3], 1e-9)

	assert.Equal(t, 1, logs.FilterMessage("request").FilterField(zap.String("request_id", "req-42")).Len())

	mrec := httptest.NewRecorder()
	m.Handler().ServeHTTP(mrec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, mrec.Body.String(), `qwalk_decompositions_total{status="ok"} 1`)
	assert.Contains(t, mrec.Body.String(), `qwalk_http_requests_total{code="200",route="/v1/decompose"} 1`)
}

func TestDecompose_ComplexMatrix(t *testing.T) {
	s, _, _ := newServer(t)
	rec := post(t, s, "/v1/decompose", map[string]interface{}{
		"real":   [][]float64{{0, 0}, {0, 0}},
		"imag":   [][]float64{{0, 1}, {-1, 0}},
		"solver": "jacobi",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp server.DecomposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Values, 2)
	assert.InDelta(t, -1, resp.Values[0], 1e-9)
	assert.InDelta(t, 1, resp.Values[1], 1e-9)
	assert.Empty(t, resp.Projectors)
}

func TestDecompose_ToleranceOverride(t *testing.T) {
	s, _, _ := newServer(t)
	body := map[string]interface{}{
		"real": [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 5e-5}},
	}
	rec := post(t, s, "/v1/decompose", body)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp server.DecomposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{2, 1}, resp.Multiplicities)

	body["tolerance"] = 0.0
	rec = post(t, s, "/v1/decompose", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 1, 1}, resp.Multiplicities)
}

func TestDecompose_Errors(t *testing.T) {
	cases := []struct {
		name string
		body interface{}
		code int
	}{
		{"empty", map[string]interface{}{}, http.StatusBadRequest},
		{"ambiguous", map[string]interface{}{"graph": "path", "vertices": 3, "edges": [][]int{{0, 1}}}, http.StatusBadRequest},
		{"unknownGraph", map[string]interface{}{"graph": "moebius", "vertices": 3}, http.StatusBadRequest},
		{"tooLarge", map[string]interface{}{"graph": "path", "vertices": 17}, http.StatusRequestEntityTooLarge},
		{"ragged", map[string]interface{}{"real": [][]float64{{0, 1}, {1}}}, http.StatusBadRequest},
		{"notHermitian", map[string]interface{}{"real": [][]float64{{0, 2}, {0, 0}}}, http.StatusUnprocessableEntity},
		{"badSolver", map[string]interface{}{"graph": "path", "vertices": 3, "solver": "lapack"}, http.StatusBadRequest},
		{"negativeTolerance", map[string]interface{}{"graph": "path", "vertices": 3, "tolerance": -1}, http.StatusBadRequest},
		{"badJSON", "not an object", http.StatusBadRequest},
	}
	s, _, _ := newServer(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, s, "/v1/decompose", tc.body)
			require.Equal(t, tc.code, rec.Code, rec.Body.String())

			var e server.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.NotEmpty(t, e.Error)
			assert.Equal(t, rec.Header().Get("X-Request-ID"), e.RequestID)
		})
	}
}

func TestDecompose_SkipHermitianCheck(t *testing.T) {
	s, _, _ := newServer(t)
	rec := post(t, s, "/v1/decompose", map[string]interface{}{
		"real":                 [][]float64{{0, 2}, {0, 0}},
		"skip_hermitian_check": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.DecomposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Values, 2)
	assert.False(t, resp.Consistent, "the symmetric part does not reconstruct the input")
	assert.Greater(t, resp.Reconstruction, 0.5)
}

func TestWalk_PerfectStateTransfer(t *testing.T) {
	s, _, _ := newServer(t)
	tEnd := math.Pi / math.Sqrt2
	rec := post(t, s, "/v1/walk", map[string]interface{}{
		"graph": "path", "vertices": 3, "start": 0,
		"times": []float64{0, tEnd}, "include_amplitudes": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.WalkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Frames, 2)
	assert.InDelta(t, 1, resp.Frames[0].Probabilities[0], 1e-12)
	assert.InDelta(t, 1, resp.Frames[1].Probabilities[2], 1e-9)
	assert.InDelta(t, -1, resp.Frames[1].Amplitudes[2][0], 1e-9)
	for _, f := range resp.Frames {
		assert.InDelta(t, 1, f.Total, 1e-9)
	}
}

func TestWalk_Grid(t *testing.T) {
	s, _, _ := newServer(t)
	rec := post(t, s, "/v1/walk", map[string]interface{}{
		"graph": "cycle", "vertices": 6, "start": 2,
		"t_start": 0, "t_end": 1, "step": 0.25,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp server.WalkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Vertices)
	assert.Equal(t, 2, resp.Start)
	require.Len(t, resp.Frames, 5)
	assert.InDelta(t, 0.75, resp.Frames[3].T, 1e-15)
	assert.Nil(t, resp.Frames[0].Amplitudes)
}

func TestWalk_Errors(t *testing.T) {
	cases := []struct {
		name string
		body map[string]interface{}
		code int
	}{
		{"badStart", map[string]interface{}{"graph": "path", "vertices": 3, "start": 3, "times": []float64{0}}, http.StatusBadRequest},
		{"badRange", map[string]interface{}{"graph": "path", "vertices": 3, "t_start": 1, "t_end": 0, "step": 0.1}, http.StatusBadRequest},
		{"zeroStep", map[string]interface{}{"graph": "path", "vertices": 3}, http.StatusBadRequest},
		{"tooManyFrames", map[string]interface{}{"graph": "path", "vertices": 3, "t_end": 100, "step": 0.01}, http.StatusRequestEntityTooLarge},
		{"noMatrix", map[string]interface{}{"times": []float64{0}}, http.StatusBadRequest},
	}
	s, _, _ := newServer(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, s, "/v1/walk", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	s, _, _ := newServer(t)
	post(t, s, "/v1/walk", map[string]interface{}{"graph": "path", "vertices": 3, "times": []float64{0, 1}})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "qwalk_walk_evaluations_total 2")
	assert.Contains(t, string(body), `qwalk_last_residual{check="unitarity"}`)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.Server.Addr = addr
	cfg.Server.ShutdownTimeout = time.Second
	s := server.New(cfg, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
