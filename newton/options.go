// SPDX-License-Identifier: MIT

package newton

import (
	"math"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/trace"
)

const (
	// DefaultMaxSteps bounds the Newton iterations.
	DefaultMaxSteps = 50

	// DefaultMaxError is the residual-norm convergence threshold.
	DefaultMaxError = 1e-5
)

const (
	panicStepInvalid     = "newton: WithStep: h must be finite and non-zero"
	panicMaxStepsInvalid = "newton: WithMaxSteps: steps must be >= 0"
	panicMaxErrorInvalid = "newton: WithMaxError: tolerance must be finite and >= 0"
)

// Option mutates Options.
type Option func(*Options)

// Options holds the resolved configuration of one solve.
type Options struct {
	h        float64
	maxSteps int
	maxError float64
	sink     trace.Sink
}

// Step returns the Jacobian difference step.
func (o Options) Step() float64 { return o.h }

// MaxSteps returns the iteration budget.
func (o Options) MaxSteps() int { return o.maxSteps }

// MaxError returns the residual threshold.
func (o Options) MaxError() float64 { return o.maxError }

// WithStep sets the Jacobian difference step h.
func WithStep(h float64) Option {
	if finitediff.ValidateStep(h) != nil {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.h = h }
}

// WithMaxSteps sets the iteration budget.
func WithMaxSteps(steps int) Option {
	if steps < 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *Options) { o.maxSteps = steps }
}

// WithMaxError sets the residual-norm threshold.
func WithMaxError(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicMaxErrorInvalid)
	}

	return func(o *Options) { o.maxError = tol }
}

// WithTrace routes per-iteration records to sink (nil restores Nop).
func WithTrace(sink trace.Sink) Option {
	return func(o *Options) { o.sink = trace.OrNop(sink) }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		h:        finitediff.DefaultStep,
		maxSteps: DefaultMaxSteps,
		maxError: DefaultMaxError,
		sink:     trace.Nop,
	}
}

// NewOptions resolves user options over the defaults; last writer wins.
func NewOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
