// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/crout/lu"
	"github.com/katalvlaran/crout/matrix"
)

// flags shared by every subcommand.
type flags struct {
	file      string
	tolerance float64
	verbose   bool
	cond      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "crout",
		Short: "Solve, invert and take determinants of dense linear systems",
		Long: `crout factors a square matrix with Crout's LU decomposition
(implicit partial pivoting) and uses the factors to solve A·x = b,
invert A or compute det(A). Systems are read from YAML:

  matrix:
    - [4, 3]
    - [6, 3]
  rhs: [1, 2]`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.file, "file", "f", "-", "YAML system file (- reads stdin)")
	pf.Float64Var(&f.tolerance, "tolerance", 0, "singularity threshold (0 selects machine epsilon)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log decomposition progress to stderr")
	pf.BoolVar(&f.cond, "cond", false, "also print the 2-norm condition number of A")

	root.AddCommand(
		&cobra.Command{
			Use:   "solve",
			Short: "Solve A·x = rhs and print x",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runSolve(cmd, f) },
		},
		&cobra.Command{
			Use:   "inverse",
			Short: "Print the inverse of A",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runInverse(cmd, f) },
		},
		&cobra.Command{
			Use:   "det",
			Short: "Print det(A) and the row-interchange parity",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return runDet(cmd, f) },
		},
	)

	return root
}

// prepare loads the system, prints the condition number if asked, and
// resolves kernel options.
func prepare(cmd *cobra.Command, f *flags) (System, *matrix.Dense[float64], []lu.Option, error) {
	if f.tolerance < 0 || math.IsNaN(f.tolerance) || math.IsInf(f.tolerance, 0) {
		return System{}, nil, nil, fmt.Errorf("--tolerance must be finite and >= 0, got %g", f.tolerance)
	}
	sys, err := LoadSystem(f.file, cmd.InOrStdin())
	if err != nil {
		return System{}, nil, nil, err
	}
	a, err := sys.Dense()
	if err != nil {
		return System{}, nil, nil, err
	}

	var opts []lu.Option
	if f.tolerance > 0 {
		opts = append(opts, lu.WithTolerance(f.tolerance))
	}
	if f.verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		logger.Debug("crout: system loaded", slog.String("file", f.file), slog.Int("n", a.Rows()))
		opts = append(opts, lu.WithLogger(logger))
	}
	if f.cond {
		if err = printCond(cmd.OutOrStdout(), a); err != nil {
			return System{}, nil, nil, err
		}
	}

	return sys, a, opts, nil
}

func printCond(w io.Writer, a *matrix.Dense[float64]) error {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "cond = %g\n", mat.Cond(g, 2))

	return err
}

func runSolve(cmd *cobra.Command, f *flags) error {
	sys, a, opts, err := prepare(cmd, f)
	if err != nil {
		return err
	}
	if sys.RHS == nil {
		return errNoRHS
	}
	pivot, err := matrix.NewVec[uint](a.Rows())
	if err != nil {
		return err
	}
	if _, err = lu.Decompose[float64](a, pivot, opts...); err != nil {
		return err
	}
	x := matrix.NewVecFrom(sys.RHS)
	if err = lu.SolveInPlace[float64](a, pivot, x); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for i, v := range x.Slice() {
		if _, err = fmt.Fprintf(w, "x[%d] = %g\n", i, v); err != nil {
			return err
		}
	}

	return nil
}

func runInverse(cmd *cobra.Command, f *flags) error {
	_, a, opts, err := prepare(cmd, f)
	if err != nil {
		return err
	}
	if err = lu.Inverse[float64](a, opts...); err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), a.String())

	return err
}

func runDet(cmd *cobra.Command, f *flags) error {
	_, a, opts, err := prepare(cmd, f)
	if err != nil {
		return err
	}
	pivot, err := matrix.NewVec[uint](a.Rows())
	if err != nil {
		return err
	}
	parity, err := lu.Decompose[float64](a, pivot, opts...)
	if err != nil {
		return err
	}
	det, err := lu.Det[float64](a, parity)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "det = %g\nparity = %d\n", det, parity)

	return err
}
