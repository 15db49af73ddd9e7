// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numopt/optimize"
	"github.com/katalvlaran/numopt/vector"
)

const (
	routineMaximize = "maximize"
	routineMinimize = "minimize"
)

func (a *app) newSearchCommand(routine string) *cobra.Command {
	var (
		problem string
		start   []float64
		lambda  float64
	)
	run := optimize.Maximize
	if routine == routineMinimize {
		run = optimize.Minimize
	}

	c := &cobra.Command{
		Use:   routine,
		Short: fmt.Sprintf("Run the adaptive step search (%s) on a built-in objective", routine),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, ok := objectives[problem]
			if !ok {
				return fmt.Errorf("unknown problem %q (see 'numopt problems')", problem)
			}
			x0, err := startPoint(start, p.start)
			if err != nil {
				return err
			}

			opts := a.cfg.SearchOptions(a.sink())
			if p.lambda > 0 {
				opts = append(opts, optimize.WithLambda(p.lambda))
			}
			if cmd.Flags().Changed("lambda") {
				if !(lambda > 0) || math.IsInf(lambda, 0) {
					return fmt.Errorf("--lambda must be finite and > 0, got %g", lambda)
				}
				opts = append(opts, optimize.WithLambda(lambda))
			}

			res, err := run(x0, p.f, opts...)
			if err != nil {
				return err
			}
			printSearch(cmd, problem, routine, res)

			return nil
		},
	}
	c.Flags().StringVar(&problem, "problem", "trig", "built-in objective")
	c.Flags().Float64SliceVar(&start, "start", nil, "start point, comma separated")
	c.Flags().Float64Var(&lambda, "lambda", optimize.DefaultLambda, "initial step size")

	return c
}

func printSearch(cmd *cobra.Command, problem, routine string, res optimize.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %s\n", "problem", problem)
	fmt.Fprintf(out, "%-12s %s\n", "routine", routine)
	fmt.Fprintf(out, "%-12s %s\n", "position", format(res.Position))
	fmt.Fprintf(out, "%-12s %.6g\n", "value", res.Value)
	fmt.Fprintf(out, "%-12s %.3g\n", "grad-norm", res.GradNorm)
	fmt.Fprintf(out, "%-12s %g\n", "step", res.Step)
	fmt.Fprintf(out, "%-12s %d\n", "iterations", res.Iterations)
	fmt.Fprintf(out, "%-12s %s\n", "cause", res.Cause)
}

// format prints v with six significant digits per component.
func format(v vector.Vector) string {
	s := "("
	for i, x := range v.Values() {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.6g", x)
	}

	return s + ")"
}
