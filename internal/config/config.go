// SPDX-License-Identifier: MIT

// Package config holds the configuration of the qwalk binaries: plain data
// types, defaults and validation here, viper loading in loader.go.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/spectral"
)

// ErrConfigValidation wraps every Validate failure.
var ErrConfigValidation = errors.New("config: validation failed")

// Solver names accepted by spectral.solver.
const (
	SolverGonum  = "gonum"
	SolverJacobi = "jacobi"
)

// Output formats accepted by walk.format.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// SpectralConfig tunes spectral.Decompose and spectral.Verify.
type SpectralConfig struct {
	Tolerance          float64 `mapstructure:"tolerance"`
	Solver             string  `mapstructure:"solver"`
	SkipHermitianCheck bool    `mapstructure:"skip_hermitian_check"`
	HermitianEps       float64 `mapstructure:"hermitian_eps"` // 0: scaled default
	VerifyThreshold    float64 `mapstructure:"verify_threshold"`
}

// WalkConfig selects the input graph and the time sweep.
type WalkConfig struct {
	Graph    string  `mapstructure:"graph"`
	Vertices int     `mapstructure:"vertices"`
	Matrix   string  `mapstructure:"matrix"` // file path; overrides graph/vertices
	Start    int     `mapstructure:"start"`
	TStart   float64 `mapstructure:"t_start"`
	TEnd     float64 `mapstructure:"t_end"`
	Step     float64 `mapstructure:"step"`
	Workers  int     `mapstructure:"workers"`
	Format   string  `mapstructure:"format"`
}

// ServerConfig holds the HTTP service tunables.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug | release | test
	MaxVertices     int           `mapstructure:"max_vertices"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Config is the root configuration.
type Config struct {
	Log      logging.LogConfig `mapstructure:"log"`
	Spectral SpectralConfig    `mapstructure:"spectral"`
	Walk     WalkConfig        `mapstructure:"walk"`
	Server   ServerConfig      `mapstructure:"server"`
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfigValidation, fmt.Sprintf(format, args...))
}

// Validate checks every section; it expects ApplyDefaults to have run.
func (c *Config) Validate() error {
	if c == nil {
		return invalid("nil config")
	}

	s := c.Spectral
	if s.Tolerance < 0 {
		return invalid("spectral.tolerance %g must be ≥ 0", s.Tolerance)
	}
	switch strings.ToLower(s.Solver) {
	case SolverGonum, SolverJacobi:
	default:
		return invalid("spectral.solver %q; expected gonum|jacobi", s.Solver)
	}
	if s.HermitianEps < 0 {
		return invalid("spectral.hermitian_eps %g must be ≥ 0", s.HermitianEps)
	}
	if s.VerifyThreshold < 0 {
		return invalid("spectral.verify_threshold %g must be ≥ 0", s.VerifyThreshold)
	}

	w := c.Walk
	if w.Matrix == "" {
		if _, err := builder.ByName(w.Graph, w.Vertices); err != nil {
			return invalid("walk graph %q on %d vertices: %v", w.Graph, w.Vertices, err)
		}
		if w.Start < 0 || w.Start >= w.Vertices {
			return invalid("walk.start %d not in [0,%d)", w.Start, w.Vertices)
		}
	} else if w.Start < 0 {
		return invalid("walk.start %d must be ≥ 0", w.Start)
	}
	if w.Step <= 0 {
		return invalid("walk.step %g must be > 0", w.Step)
	}
	if w.TEnd < w.TStart {
		return invalid("walk.t_end %g < walk.t_start %g", w.TEnd, w.TStart)
	}
	if w.Workers < 1 {
		return invalid("walk.workers must be ≥ 1, got %d", w.Workers)
	}
	switch w.Format {
	case FormatText, FormatCSV, FormatJSON:
	default:
		return invalid("walk.format %q; expected text|csv|json", w.Format)
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return invalid("server.mode %q; expected debug|release|test", c.Server.Mode)
	}
	if c.Server.Addr == "" {
		return invalid("server.addr is required")
	}
	if c.Server.MaxVertices < 1 {
		return invalid("server.max_vertices must be ≥ 1, got %d", c.Server.MaxVertices)
	}

	return nil
}

// Options translates the section into spectral options. It assumes Validate passed.
func (s SpectralConfig) Options() []spectral.Option {
	opts := []spectral.Option{spectral.WithTolerance(s.Tolerance)}
	if strings.EqualFold(s.Solver, SolverJacobi) {
		opts = append(opts, spectral.WithSolver(spectral.JacobiSolver{}))
	}
	switch {
	case s.SkipHermitianCheck:
		opts = append(opts, spectral.WithoutHermitianCheck())
	case s.HermitianEps > 0:
		opts = append(opts, spectral.WithHermitianEpsilon(s.HermitianEps))
	}

	return opts
}
