// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/internal/matrixio"
	"github.com/katalvlaran/qwalk/internal/metrics"
	"github.com/katalvlaran/qwalk/internal/sweep"
	"github.com/katalvlaran/qwalk/matrix"
	"github.com/katalvlaran/qwalk/spectral"
)

// MaxWalkFrames bounds the time grid of one /v1/walk request.
const MaxWalkFrames = 4096

var errBadParam = errors.New("server: invalid parameter")

// SpectralParams overrides the configured spectral settings per request.
type SpectralParams struct {
	Tolerance          *float64 `json:"tolerance,omitempty"`
	Solver             string   `json:"solver,omitempty"`
	SkipHermitianCheck bool     `json:"skip_hermitian_check,omitempty"`
}

// DecomposeRequest is the body of POST /v1/decompose.
type DecomposeRequest struct {
	matrixio.Document
	SpectralParams
	IncludeProjectors bool `json:"include_projectors,omitempty"`
}

// DecomposeResponse is the reply of POST /v1/decompose.
type DecomposeResponse struct {
	RequestID      string              `json:"request_id"`
	Vertices       int                 `json:"vertices"`
	Values         []float64           `json:"values"`
	Multiplicities []int               `json:"multiplicities"`
	Completeness   float64             `json:"completeness"`
	Reconstruction float64             `json:"reconstruction"`
	Consistent     bool                `json:"consistent"`
	Projectors     []matrixio.Document `json:"projectors,omitempty"`
}

// WalkRequest is the body of POST /v1/walk. Times lists explicit points;
// otherwise the grid TStart..TEnd by Step is used.
type WalkRequest struct {
	matrixio.Document
	SpectralParams
	Start             int       `json:"start"`
	Times             []float64 `json:"times,omitempty"`
	TStart            float64   `json:"t_start,omitempty"`
	TEnd              float64   `json:"t_end,omitempty"`
	Step              float64   `json:"step,omitempty"`
	IncludeAmplitudes bool      `json:"include_amplitudes,omitempty"`
}

// FrameDTO is one frame of a walk reply; amplitudes are [re, im] pairs.
type FrameDTO struct {
	T             float64      `json:"t"`
	Probabilities []float64    `json:"probabilities"`
	Total         float64      `json:"total"`
	Amplitudes    [][2]float64 `json:"amplitudes,omitempty"`
}

// WalkResponse is the reply of POST /v1/walk.
type WalkResponse struct {
	RequestID string     `json:"request_id"`
	Vertices  int        `json:"vertices"`
	Start     int        `json:"start"`
	Frames    []FrameDTO `json:"frames"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleDecompose(c *gin.Context) {
	var req DecomposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	a, d, err := s.decompose(req.Document, req.SpectralParams)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	resp := DecomposeResponse{
		RequestID:      c.GetString(ctxRequestID),
		Vertices:       d.Dim(),
		Values:         d.Values,
		Multiplicities: d.Multiplicities,
	}
	rep, err := spectral.Verify(a, d, s.cfg.Spectral.VerifyThreshold)
	switch {
	case err == nil:
		resp.Consistent = true
	case errors.Is(err, spectral.ErrInvariantViolation):
		s.log.Warn("residual above threshold", logging.String("request_id", resp.RequestID), logging.Err(err))
	default:
		s.fail(c, statusFor(err), err)
		return
	}
	resp.Completeness, resp.Reconstruction = rep.Completeness, rep.Reconstruction
	s.metrics.SetResidual(metrics.CheckCompleteness, rep.Completeness)
	s.metrics.SetResidual(metrics.CheckReconstruction, rep.Reconstruction)

	if req.IncludeProjectors {
		resp.Projectors = make([]matrixio.Document, 0, d.Len())
		for _, p := range d.Projectors {
			doc, err := matrixio.FromMatrix(p)
			if err != nil {
				s.fail(c, http.StatusInternalServerError, err)
				return
			}
			resp.Projectors = append(resp.Projectors, doc)
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleWalk(c *gin.Context) {
	var req WalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	times := req.Times
	if len(times) == 0 {
		var err error
		if times, err = sweep.Times(req.TStart, req.TEnd, req.Step); err != nil {
			s.fail(c, statusFor(err), err)
			return
		}
	}
	if len(times) > MaxWalkFrames {
		s.fail(c, http.StatusRequestEntityTooLarge, sweep.ErrTooManyFrames)
		return
	}
	for _, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			s.fail(c, http.StatusBadRequest, sweep.ErrBadRange)
			return
		}
	}

	_, d, err := s.decompose(req.Document, req.SpectralParams)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	runner := sweep.NewRunner(d,
		sweep.WithWorkers(s.cfg.Walk.Workers),
		sweep.WithLogger(s.log.Named("sweep")),
		sweep.WithObserver(s.metrics.ObserveEvaluation),
	)
	frames, err := runner.Run(c.Request.Context(), times, req.Start)
	if err != nil {
		s.fail(c, statusFor(err), err)
		return
	}
	if err = s.recordUnitarity(d, times[len(times)-1]); err != nil {
		s.fail(c, statusFor(err), err)
		return
	}

	resp := WalkResponse{
		RequestID: c.GetString(ctxRequestID),
		Vertices:  d.Dim(),
		Start:     req.Start,
		Frames:    make([]FrameDTO, len(frames)),
	}
	for i, f := range frames {
		dto := FrameDTO{T: f.T, Probabilities: f.Probabilities, Total: f.Total}
		if req.IncludeAmplitudes {
			dto.Amplitudes = make([][2]float64, len(f.Amplitudes))
			for k, z := range f.Amplitudes {
				dto.Amplitudes[k] = [2]float64{real(z), imag(z)}
			}
		}
		resp.Frames[i] = dto
	}
	c.JSON(http.StatusOK, resp)
}

// recordUnitarity publishes ||U(t)ᴴU(t) − I||₂ for the last frame of a sweep.
func (s *Server) recordUnitarity(d *spectral.Decomposition, t float64) error {
	u, err := spectral.Reconstruct(d, t)
	if err != nil {
		return err
	}
	res, err := spectral.CheckUnitarity(u)
	if err != nil {
		return err
	}
	s.metrics.SetResidual(metrics.CheckUnitarity, res)

	return nil
}

// decompose builds the request matrix and decomposes it with the configured
// options, overridden by p.
func (s *Server) decompose(doc matrixio.Document, p SpectralParams) (*matrix.CDense, *spectral.Decomposition, error) {
	a, err := doc.Matrix(s.cfg.Server.MaxVertices)
	if err != nil {
		return nil, nil, err
	}
	sc := s.cfg.Spectral
	if p.Tolerance != nil {
		if math.IsNaN(*p.Tolerance) || math.IsInf(*p.Tolerance, 0) || *p.Tolerance < 0 {
			return nil, nil, errBadParam
		}
		sc.Tolerance = *p.Tolerance
	}
	if p.Solver != "" {
		if !strings.EqualFold(p.Solver, config.SolverGonum) && !strings.EqualFold(p.Solver, config.SolverJacobi) {
			return nil, nil, errBadParam
		}
		sc.Solver = p.Solver
	}
	if p.SkipHermitianCheck {
		sc.SkipHermitianCheck = true
	}

	began := time.Now()
	d, err := spectral.Decompose(a, sc.Options()...)
	s.metrics.ObserveDecompose(time.Since(began), d.Len(), err)
	if err != nil {
		return nil, nil, err
	}

	return a, d, nil
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, ErrorResponse{RequestID: c.GetString(ctxRequestID), Error: err.Error()})
}

// statusFor maps library sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, matrixio.ErrTooLarge), errors.Is(err, sweep.ErrTooManyFrames):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, spectral.ErrNotHermitian):
		return http.StatusUnprocessableEntity
	case errors.Is(err, spectral.ErrSolverFailed), errors.Is(err, spectral.ErrInvariantViolation):
		return http.StatusInternalServerError
	case errors.Is(err, errBadParam),
		errors.Is(err, matrixio.ErrEmptyDocument),
		errors.Is(err, matrixio.ErrAmbiguous),
		errors.Is(err, matrixio.ErrBadEdge),
		errors.Is(err, matrixio.ErrBadWeight),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrUnknownGraph),
		errors.Is(err, builder.ErrBadEdge),
		errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrInvalidDimensions),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, spectral.ErrShapeMismatch),
		errors.Is(err, spectral.ErrVertexOutOfRange),
		errors.Is(err, sweep.ErrBadRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
