package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Decompose(t *testing.T) {
	c := New(false)
	c.ObserveDecompose(2*time.Millisecond, 3, nil)
	c.ObserveDecompose(time.Millisecond, 0, errors.New("boom"))
	c.ObserveDecompose(time.Millisecond, 2, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.decompositions.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.decompositions.WithLabelValues(StatusError)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.clusters))
}

func TestCollector_EvaluationsAndResiduals(t *testing.T) {
	c := New(false)
	for i := 0; i < 5; i++ {
		c.ObserveEvaluation(time.Microsecond)
	}
	c.SetResidual(CheckCompleteness, 1e-15)
	c.SetResidual(CheckCompleteness, 2e-15)
	c.SetResidual(CheckReconstruction, 3e-15)

	assert.Equal(t, 5.0, testutil.ToFloat64(c.evaluations))
	assert.Equal(t, 2e-15, testutil.ToFloat64(c.residual.WithLabelValues(CheckCompleteness)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.residual))
}

func TestCollector_Handler(t *testing.T) {
	c := New(true)
	c.ObserveRequest("/v1/walk", "200")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `qwalk_http_requests_total{code="200",route="/v1/walk"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestCollector_Isolated(t *testing.T) {
	a, b := New(false), New(false)
	a.ObserveEvaluation(0)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.evaluations))
	assert.NotSame(t, a.Registry(), b.Registry())
}
