// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numopt/dataset"
	"github.com/katalvlaran/numopt/fit"
)

func (a *app) newFitCommand() *cobra.Command {
	var (
		dataPath string
		degree   int
		plotPath string
	)

	c := &cobra.Command{
		Use:   "fit",
		Short: "Fit a polynomial to (x, y) samples by least squares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points, err := dataset.LoadPoints(dataPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("degree") {
				degree = a.cfg.Fit.Degree
			}

			res, err := fit.CurveFit(points, degree, a.cfg.FitOptions(a.sink())...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %d\n", "samples", len(points))
			fmt.Fprintf(out, "%-12s %d\n", "degree", degree)
			fmt.Fprintf(out, "%-12s %s\n", "coeffs", format(res.Coefficients))
			fmt.Fprintf(out, "%-12s %.6g\n", "sse", res.SSE)
			fmt.Fprintf(out, "%-12s %d\n", "iterations", res.Search.Iterations)
			fmt.Fprintf(out, "%-12s %s\n", "cause", res.Search.Cause)

			if plotPath == "" {
				return nil
			}
			if err = savePlot(plotPath, points, res); err != nil {
				return fmt.Errorf("--plot: %w", err)
			}
			a.log.WithFields(logrus.Fields{"file": plotPath, "samples": len(points)}).Info("plot written")

			return nil
		},
	}
	c.Flags().StringVar(&dataPath, "data", "", "sample file (CSV or whitespace separated x y)")
	c.Flags().IntVar(&degree, "degree", 2, "polynomial degree (overrides fit.degree)")
	c.Flags().StringVar(&plotPath, "plot", "", "write samples and fitted curve to this image (.png, .svg, .pdf)")
	_ = c.MarkFlagRequired("data")

	return c
}

// savePlot renders the samples as a scatter and the fitted polynomial as a line.
func savePlot(path string, points []fit.Point, res fit.Result) error {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X, xys[i].Y = p.X, p.Y
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	curve := plotter.NewFunction(fit.Polynomial(res.Coefficients))
	curve.Samples = 200

	p := plot.New()
	p.Title.Text = fmt.Sprintf("degree %d fit, SSE %.4g", res.Coefficients.Dim()-1, res.SSE)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid(), scatter, curve)
	p.Legend.Add("samples", scatter)
	p.Legend.Add("fit", curve)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
