// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instrumentation for decompositions,
// walk evaluations and consistency residuals. Every Collector owns its
// registry, so tests and several servers in one process never collide.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "qwalk"

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Check label values for the residual gauge.
const (
	CheckCompleteness   = "completeness"
	CheckReconstruction = "reconstruction"
	CheckUnitarity      = "unitarity"
)

// Collector groups the qwalk metrics.
type Collector struct {
	reg *prometheus.Registry

	decompositions *prometheus.CounterVec
	decomposeTime  prometheus.Histogram
	clusters       prometheus.Histogram
	evaluations    prometheus.Counter
	evaluateTime   prometheus.Histogram
	residual       *prometheus.GaugeVec
	requests       *prometheus.CounterVec
}

// New builds a Collector on a fresh registry. withRuntime adds the Go and
// process collectors.
func New(withRuntime bool) *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		decompositions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decompositions_total",
			Help:      "Spectral decompositions by outcome.",
		}, []string{"status"}),
		decomposeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decompose_duration_seconds",
			Help:      "Wall time of Decompose.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		clusters: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decompose_clusters",
			Help:      "Eigenvalue clusters per decomposition.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 9),
		}),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "walk_evaluations_total",
			Help:      "U(t) frames evaluated.",
		}),
		evaluateTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "walk_evaluation_duration_seconds",
			Help:      "Wall time of one U(t) frame.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		residual: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_residual",
			Help:      "Most recent consistency residual norm by check.",
		}, []string{"check"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	c.reg.MustRegister(c.decompositions, c.decomposeTime, c.clusters,
		c.evaluations, c.evaluateTime, c.residual, c.requests)
	if withRuntime {
		c.reg.MustRegister(collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return c
}

// ObserveDecompose records one Decompose call.
func (c *Collector) ObserveDecompose(d time.Duration, clusters int, err error) {
	if err != nil {
		c.decompositions.WithLabelValues(StatusError).Inc()
		return
	}
	c.decompositions.WithLabelValues(StatusOK).Inc()
	c.decomposeTime.Observe(d.Seconds())
	c.clusters.Observe(float64(clusters))
}

// ObserveEvaluation records one U(t) frame. Its signature matches
// sweep.WithObserver.
func (c *Collector) ObserveEvaluation(d time.Duration) {
	c.evaluations.Inc()
	c.evaluateTime.Observe(d.Seconds())
}

// SetResidual stores the latest residual of a check.
func (c *Collector) SetResidual(check string, v float64) {
	c.residual.WithLabelValues(check).Set(v)
}

// ObserveRequest counts one HTTP request.
func (c *Collector) ObserveRequest(route, code string) {
	c.requests.WithLabelValues(route, code).Inc()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}
