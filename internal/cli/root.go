// SPDX-License-Identifier: MIT

// Package cli implements the qwalk command tree:
//
//	qwalk decompose   spectral decomposition of a graph or matrix file
//	qwalk walk        per-vertex probabilities over a time sweep
//	qwalk serve       HTTP service
//
// Flags, QWALK_* environment variables and an optional YAML file (--config)
// all feed one viper instance; flags win, then env, then file, then defaults.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/katalvlaran/qwalk/builder"
	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/internal/matrixio"
	"github.com/katalvlaran/qwalk/matrix"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// app carries the state shared by every subcommand once the root's
// PersistentPreRunE has loaded it.
type app struct {
	v          *viper.Viper
	configPath string
	noColor    bool

	cfg *config.Config
	log logging.Logger
}

// NewRootCommand builds the command tree on a fresh viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:     "qwalk",
		Short:   "Spectral decomposition engine for continuous-time quantum walks",
		Long:    "qwalk decomposes a Hermitian adjacency matrix A into eigenvalue clusters\nand orthogonal projectors, then evaluates U(t) = exp(-itA) from them.",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (json, console)")
	pf.Float64("tolerance", 0, "eigenvalue clustering tolerance (0: default)")
	pf.String("solver", config.DefaultSolver, "eigen solver (gonum, jacobi)")
	pf.Bool("skip-hermitian-check", false, "decompose the symmetric part without checking A = A*")
	pf.Float64("hermitian-eps", 0, "absolute Hermitian check tolerance (0: scaled default)")
	pf.Float64("verify-threshold", 0, "residual threshold of the consistency checks (0: default)")
	pf.StringP("graph", "g", config.DefaultGraph, fmt.Sprintf("graph kind %v", builder.Kinds()))
	pf.IntP("vertices", "n", config.DefaultVertices, "number of vertices")
	pf.StringP("matrix", "m", "", "matrix YAML/JSON file; overrides --graph")
	pf.StringP("format", "f", config.DefaultFormat, "output format (text, csv, json)")
	a.bind(pf, map[string]string{
		"log.level":                     "log-level",
		"log.format":                    "log-format",
		"spectral.tolerance":            "tolerance",
		"spectral.solver":               "solver",
		"spectral.skip_hermitian_check": "skip-hermitian-check",
		"spectral.hermitian_eps":        "hermitian-eps",
		"spectral.verify_threshold":     "verify-threshold",
		"walk.graph":                    "graph",
		"walk.vertices":                 "vertices",
		"walk.matrix":                   "matrix",
		"walk.format":                   "format",
	})

	root.AddCommand(
		newDecomposeCmd(a),
		newWalkCmd(a),
		newServeCmd(a),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// bind ties viper keys to flags; a flag that was not set falls back to env,
// file and defaults.
func (a *app) bind(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("cli: bind %s to --%s: %v", key, name, err))
		}
	}
}

func (a *app) init() error {
	if err := config.ReadFile(a.v, a.configPath); err != nil {
		return err
	}
	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	if a.noColor {
		color.NoColor = true
	}
	a.cfg, a.log = cfg, log
	logging.SetDefault(log)

	return nil
}

// input builds the adjacency matrix the configuration selects and a label
// describing it.
func (a *app) input() (*matrix.CDense, string, error) {
	w := a.cfg.Walk
	if w.Matrix != "" {
		m, err := matrixio.ReadFile(w.Matrix, 0)
		return m, w.Matrix, err
	}
	m, err := builder.ByName(w.Graph, w.Vertices)

	return m, fmt.Sprintf("%s graph on %d vertices", w.Graph, w.Vertices), err
}
