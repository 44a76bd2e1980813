// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/internal/sweep"
	"github.com/katalvlaran/qwalk/spectral"
	"github.com/spf13/cobra"
)

func newWalkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Evaluate |⟨v|U(t)|start⟩|² for every vertex v over a time sweep",
		Example: `  qwalk walk --graph path -n 3 --t-end 2.2214 --step 0.1
  qwalk walk --matrix hamiltonian.yaml --start 1 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWalk(cmd, a)
		},
	}

	f := cmd.Flags()
	f.Int("start", 0, "start vertex")
	f.Float64("t-start", 0, "first time point")
	f.Float64("t-end", config.DefaultTEnd, "last time point")
	f.Float64("step", config.DefaultStep, "time step")
	f.Int("workers", config.DefaultWorkers, "concurrent frame evaluations")
	a.bind(f, map[string]string{
		"walk.start":   "start",
		"walk.t_start": "t-start",
		"walk.t_end":   "t-end",
		"walk.step":    "step",
		"walk.workers": "workers",
	})

	return cmd
}

func runWalk(cmd *cobra.Command, a *app) error {
	w := a.cfg.Walk
	times, err := sweep.Times(w.TStart, w.TEnd, w.Step)
	if err != nil {
		return err
	}
	m, label, err := a.input()
	if err != nil {
		return err
	}
	d, err := spectral.Decompose(m, a.cfg.Spectral.Options()...)
	if err != nil {
		return err
	}
	log := a.log.Named("walk").With(logging.String("input", label), logging.Int("start", w.Start))
	frames, err := sweep.NewRunner(d, sweep.WithWorkers(w.Workers), sweep.WithLogger(log)).
		Run(cmd.Context(), times, w.Start)
	if err != nil {
		return err
	}

	return writeFrames(cmd.OutOrStdout(), w.Format, d.Dim(), frames)
}

func writeFrames(out io.Writer, format string, n int, frames []sweep.Frame) error {
	if format == config.FormatJSON {
		return writeJSON(out, frames)
	}

	header := make([]string, 0, n+2)
	header = append(header, "t")
	for v := 0; v < n; v++ {
		header = append(header, fmt.Sprintf("p%d", v))
	}
	header = append(header, "total")

	rows := make([][]string, len(frames))
	for i, f := range frames {
		row := make([]string, 0, n+2)
		if format == config.FormatCSV {
			row = append(row, formatFloat(f.T))
			for _, p := range f.Probabilities {
				row = append(row, formatFloat(p))
			}
			row = append(row, formatFloat(f.Total))
		} else {
			row = append(row, fmt.Sprintf("%.4f", f.T))
			for _, p := range f.Probabilities {
				row = append(row, fmt.Sprintf("%.6f", p))
			}
			row = append(row, fmt.Sprintf("%.6f", f.Total))
		}
		rows[i] = row
	}
	if format == config.FormatCSV {
		return writeCSV(out, header, rows)
	}

	return writeTable(out, header, rows)
}
