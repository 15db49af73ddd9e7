// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numopt/newton"
)

func (a *app) newNewtonCommand() *cobra.Command {
	var (
		problem string
		start   []float64
	)

	c := &cobra.Command{
		Use:   "newton",
		Short: "Solve a built-in 2x2 system with Newton-Raphson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, ok := systems[problem]
			if !ok {
				return fmt.Errorf("unknown system %q (see 'numopt problems')", problem)
			}
			x0, err := startPoint(start, s.start)
			if err != nil {
				return err
			}

			res, err := newton.Solve(x0, s.F, a.cfg.NewtonOptions(a.sink())...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %s\n", "problem", problem)
			fmt.Fprintf(out, "%-12s %s\n", "position", format(res.Position))
			fmt.Fprintf(out, "%-12s %.3g\n", "residual", res.ResidualNorm)
			fmt.Fprintf(out, "%-12s %d\n", "iterations", res.Iterations)
			fmt.Fprintf(out, "%-12s %s\n", "cause", res.Cause)

			return nil
		},
	}
	c.Flags().StringVar(&problem, "problem", "sqrt2", "built-in system")
	c.Flags().Float64SliceVar(&start, "start", nil, "start point x,y")

	return c
}
