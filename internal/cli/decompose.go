// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/katalvlaran/qwalk/internal/config"
	"github.com/katalvlaran/qwalk/internal/logging"
	"github.com/katalvlaran/qwalk/internal/matrixio"
	"github.com/katalvlaran/qwalk/spectral"
	"github.com/spf13/cobra"
)

// decomposeResult is the json/csv shape of `qwalk decompose`.
type decomposeResult struct {
	Input          string    `json:"input"`
	Vertices       int       `json:"vertices"`
	Values         []float64 `json:"values"`
	Multiplicities []int     `json:"multiplicities"`
	Completeness   float64   `json:"completeness"`
	Reconstruction float64   `json:"reconstruction"`
	Consistent     bool      `json:"consistent"`
}

func newDecomposeCmd(a *app) *cobra.Command {
	var projectors bool

	cmd := &cobra.Command{
		Use:   "decompose",
		Short: "Print eigenvalue clusters, multiplicities and consistency residuals",
		Example: `  qwalk decompose --graph cycle -n 6
  qwalk decompose --matrix hamiltonian.yaml --solver jacobi --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDecompose(cmd.OutOrStdout(), a, projectors)
		},
	}
	cmd.Flags().BoolVar(&projectors, "projectors", false, "also print each projector as YAML (text format)")

	return cmd
}

func runDecompose(out io.Writer, a *app, projectors bool) error {
	m, label, err := a.input()
	if err != nil {
		return err
	}
	began := time.Now()
	d, err := spectral.Decompose(m, a.cfg.Spectral.Options()...)
	if err != nil {
		return err
	}
	a.log.Info("decomposed",
		logging.String("input", label),
		logging.Int("clusters", d.Len()),
		logging.Duration("took", time.Since(began)))

	rep, verr := spectral.Verify(m, d, a.cfg.Spectral.VerifyThreshold)
	if verr != nil && !errors.Is(verr, spectral.ErrInvariantViolation) {
		return verr
	}
	res := decomposeResult{
		Input:          label,
		Vertices:       d.Dim(),
		Values:         d.Values,
		Multiplicities: d.Multiplicities,
		Completeness:   rep.Completeness,
		Reconstruction: rep.Reconstruction,
		Consistent:     verr == nil,
	}

	switch a.cfg.Walk.Format {
	case config.FormatJSON:
		err = writeJSON(out, res)
	case config.FormatCSV:
		rows := make([][]string, len(res.Values))
		for i, v := range res.Values {
			rows[i] = []string{formatFloat(v), fmt.Sprint(res.Multiplicities[i])}
		}
		err = writeCSV(out, []string{"lambda", "multiplicity"}, rows)
	default:
		err = printDecomposition(out, res, d, projectors)
	}
	if err != nil {
		return err
	}

	return verr
}

func printDecomposition(out io.Writer, res decomposeResult, d *spectral.Decomposition, projectors bool) error {
	fmt.Fprintf(out, "%s: %d distinct eigenvalues\n", res.Input, len(res.Values))
	rows := make([][]string, len(res.Values))
	for i, v := range res.Values {
		rows[i] = []string{fmt.Sprint(i), fmt.Sprintf("%.6f", v), fmt.Sprint(res.Multiplicities[i])}
	}
	if err := writeTable(out, []string{"#", "lambda", "multiplicity"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "completeness   ‖ΣP − I‖  = %.3e\n", res.Completeness)
	fmt.Fprintf(out, "reconstruction ‖ΣλP − A‖ = %.3e\n", res.Reconstruction)
	if res.Consistent {
		fmt.Fprintln(out, color.GreenString("consistent"))
	} else {
		fmt.Fprintln(out, color.RedString("inconsistent"))
	}

	if !projectors {
		return nil
	}
	for i, p := range d.Projectors {
		fmt.Fprintf(out, "# projector %d, lambda = %.6f\n", i, d.Values[i])
		if err := matrixio.Encode(out, p); err != nil {
			return err
		}
	}

	return nil
}
