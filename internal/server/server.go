// SPDX-License-Identifier: MIT

// Package server exposes the spectral engine over HTTP:
//
//	GET  /healthz       liveness
//	POST /v1/decompose  eigenvalues, multiplicities, residuals (optionally projectors)
//	POST /v1/walk       per-vertex probabilities over a time grid
//	GET  /metrics       Prometheus exposition
//
// Every request carries an X-Request-ID (generated when absent) that is
// echoed in the response header, the JSON body and the access log.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/internal/metrics"
)

const (
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"

	readHeaderTimeout = 10 * time.Second
)

// Server is the HTTP front end. Build it with New, serve with Run or mount
// Handler in a test.
type Server struct {
	cfg     config.Config
	log     logging.Logger
	metrics *metrics.Collector
	engine  *gin.Engine
}

// New wires routes and middleware. A nil logger discards; a nil collector
// gets a private one.
func New(cfg *config.Config, log logging.Logger, m *metrics.Collector) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if m == nil {
		m = metrics.New(false)
	}
	gin.SetMode(cfg.Server.Mode)

	s := &Server{cfg: *cfg, log: log.Named("http"), metrics: m, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.requestID(), s.accessLog())

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(m.Handler()))
	v1 := s.engine.Group("/v1")
	v1.POST("/decompose", s.handleDecompose)
	v1.POST("/walk", s.handleWalk)

	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on cfg.Server.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Info("listening", logging.String("addr", s.cfg.Server.Addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")

	return srv.Shutdown(shutdownCtx)
}

// requestID reuses the caller's X-Request-ID or generates one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		s.metrics.ObserveRequest(route, strconv.Itoa(code))

		fields := []logging.Field{
			logging.String("request_id", c.GetString(ctxRequestID)),
			logging.String("method", c.Request.Method),
			logging.String("route", route),
			logging.Int("status", code),
			logging.Duration("took", time.Since(began)),
		}
		switch {
		case code >= http.StatusInternalServerError:
			s.log.Error("request", fields...)
		case code >= http.StatusBadRequest:
			s.log.Warn("request", fields...)
		default:
			s.log.Debug("request", fields...)
		}
	}
}
