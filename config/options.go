// SPDX-License-Identifier: MIT

package config

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/numopt/newton"
	"github.com/katalvlaran/numopt/optimize"
	"github.com/katalvlaran/numopt/trace"
)

// The conversions assume c has passed Validate; invalid values panic inside
// the option constructors.

// SearchOptions returns the optimize options for Maximize/Minimize.
func (c Config) SearchOptions(sink trace.Sink) []optimize.Option {
	return []optimize.Option{
		optimize.WithLambda(c.Search.Lambda),
		optimize.WithStep(c.Gradient.Step),
		optimize.WithMaxSteps(c.Search.MaxSteps),
		optimize.WithMaxError(c.Search.MaxError),
		optimize.WithMaxHalvings(c.Search.MaxHalvings),
		optimize.WithTrace(sink),
	}
}

// NewtonOptions returns the options for newton.Solve.
func (c Config) NewtonOptions(sink trace.Sink) []newton.Option {
	return []newton.Option{
		newton.WithStep(c.Newton.Step),
		newton.WithMaxSteps(c.Newton.MaxSteps),
		newton.WithMaxError(c.Newton.MaxError),
		newton.WithTrace(sink),
	}
}

// FitOptions returns the optimize options for fit.CurveFit: the search
// settings with the fit-specific λ and budget on top.
func (c Config) FitOptions(sink trace.Sink) []optimize.Option {
	return append(c.SearchOptions(sink),
		optimize.WithLambda(c.Fit.Lambda),
		optimize.WithMaxSteps(c.Fit.MaxSteps),
	)
}

// Configure applies level and format to l.
func (lc LogConfig) Configure(l *logrus.Logger) error {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	if lc.Format == LogFormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return nil
}
