// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/spectral"
)

const (
	DefaultLogLevel  = logging.LevelInfo
	DefaultLogFormat = logging.FormatJSON

	DefaultSolver = SolverGonum

	DefaultGraph    = builder.KindPath
	DefaultVertices = 3
	DefaultTEnd     = 4.0
	DefaultStep     = 0.1
	DefaultWorkers  = 4
	DefaultFormat   = FormatText

	DefaultServerAddr      = ":8080"
	DefaultServerMode      = "release"
	DefaultMaxVertices     = 256
	DefaultShutdownTimeout = 5 * time.Second
)

// ApplyDefaults fills zero-valued fields. A zero spectral.tolerance therefore
// means spectral.DefaultTolerance; use a tiny positive value to disable clustering.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Spectral.Tolerance == 0 {
		cfg.Spectral.Tolerance = spectral.DefaultTolerance
	}
	if cfg.Spectral.Solver == "" {
		cfg.Spectral.Solver = DefaultSolver
	}
	if cfg.Spectral.VerifyThreshold == 0 {
		cfg.Spectral.VerifyThreshold = spectral.DefaultVerifyThreshold
	}

	if cfg.Walk.Graph == "" {
		cfg.Walk.Graph = DefaultGraph
	}
	if cfg.Walk.Vertices == 0 {
		cfg.Walk.Vertices = DefaultVertices
	}
	if cfg.Walk.TEnd == 0 && cfg.Walk.TStart == 0 {
		cfg.Walk.TEnd = DefaultTEnd
	}
	if cfg.Walk.Step == 0 {
		cfg.Walk.Step = DefaultStep
	}
	if cfg.Walk.Workers == 0 {
		cfg.Walk.Workers = DefaultWorkers
	}
	if cfg.Walk.Format == "" {
		cfg.Walk.Format = DefaultFormat
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.MaxVertices == 0 {
		cfg.Server.MaxVertices = DefaultMaxVertices
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// Default returns a fully defaulted Config.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)

	return cfg
}
