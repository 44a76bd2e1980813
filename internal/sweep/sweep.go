// SPDX-License-Identifier: MIT

// Package sweep evaluates a quantum walk over a grid of times. One immutable
// spectral.Decomposition is shared by all workers; each frame reconstructs
// U(t) independently, so frames are computed in parallel and returned in
// time order.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/spectral"
	"golang.org/x/sync/errgroup"
)

// MaxFrames bounds the length of a time grid.
const MaxFrames = 1 << 20

// DefaultWorkers is the worker limit of a Runner built without WithWorkers.
const DefaultWorkers = 4

var (
	// ErrBadRange indicates a non-finite bound, end < start or a step ≤ 0.
	ErrBadRange = errors.New("sweep: invalid time range")

	// ErrTooManyFrames indicates a grid longer than MaxFrames.
	ErrTooManyFrames = errors.New("sweep: too many frames")
)

// Frame is the walker state at time T for one start vertex.
type Frame struct {
	T             float64      `json:"t"`
	Amplitudes    []complex128 `json:"-"`
	Probabilities []float64    `json:"probabilities"`
	Total         float64      `json:"total"` // Σ probabilities, 1 up to rounding
}

// Times returns start, start+step, ... up to end inclusive (within 1e-9 of a
// step). Points are computed as start + i·step, not by accumulation.
func Times(start, end, step float64) ([]float64, error) {
	for _, v := range []float64{start, end, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite bound", ErrBadRange)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %g", ErrBadRange, step)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end %g < start %g", ErrBadRange, end, start)
	}
	span := (end-start)/step + 1e-9
	if span >= MaxFrames {
		return nil, fmt.Errorf("%w: %.0f > %d", ErrTooManyFrames, span, MaxFrames)
	}
	n := int(math.Floor(span)) + 1
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = start + float64(i)*step
	}

	return ts, nil
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers caps concurrent frame evaluations. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("sweep: WithWorkers: n must be ≥ 1")
	}

	return func(r *Runner) { r.workers = n }
}

// WithLogger attaches a logger; the default discards.
func WithLogger(l logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver registers a callback invoked with the duration of every frame.
func WithObserver(fn func(time.Duration)) Option {
	return func(r *Runner) { r.observe = fn }
}

// Runner evaluates frames against one decomposition.
type Runner struct {
	d       *spectral.Decomposition
	workers int
	log     logging.Logger
	observe func(time.Duration)
}

// NewRunner binds a decomposition.
func NewRunner(d *spectral.Decomposition, opts ...Option) *Runner {
	r := &Runner{d: d, workers: DefaultWorkers, log: logging.NewNopLogger()}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}

	return r
}

// Run evaluates one frame per time for a walker starting on vertex start.
// The first error (or ctx cancellation) stops scheduling and is returned;
// no partial result is returned.
func (r *Runner) Run(ctx context.Context, times []float64, start int) ([]Frame, error) {
	if _, err := spectral.BasisState(r.d.Dim(), start); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	frames := make([]Frame, len(times))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	began := time.Now()
	for i, t := range times {
		i, t := i, t
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := r.Frame(t, start)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Warn("sweep aborted", logging.Err(err), logging.Int("frames", len(times)))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.log.Debug("sweep done",
		logging.Int("frames", len(times)),
		logging.Int("workers", r.workers),
		logging.Duration("took", time.Since(began)))

	return frames, nil
}

// Frame evaluates a single time point.
func (r *Runner) Frame(t float64, start int) (Frame, error) {
	began := time.Now()
	u, err := spectral.Reconstruct(r.d, t)
	if err != nil {
		return Frame{}, fmt.Errorf("sweep: t=%g: %w", t, err)
	}
	amps, err := spectral.Amplitudes(u, start)
	if err != nil {
		return Frame{}, fmt.Errorf("sweep: t=%g: %w", t, err)
	}
	probs := spectral.Probabilities(amps)
	total := 0.0
	for _, p := range probs {
		total += p
	}
	if r.observe != nil {
		r.observe(time.Since(began))
	}

	return Frame{T: t, Amplitudes: amps, Probabilities: probs, Total: total}, nil
}
