// SPDX-License-Identifier: MIT

// Package optimize: functional configuration for the adaptive step search.
// WithX constructors panic on nonsensical values (programmer error); callers
// feeding untrusted input validate first (see package config).

package optimize

import (
	"math"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/trace"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLambda is the initial step size λ.
	DefaultLambda = 1.0

	// DefaultMaxSteps bounds the number of committed iterations.
	DefaultMaxSteps = 25

	// DefaultMaxError is the gradient-norm convergence threshold.
	DefaultMaxError = 1e-5

	// DefaultMaxHalvings bounds the halving loop of a single iteration.
	// 64 halvings shrink λ by ~1.8e19, far past any useful step.
	DefaultMaxHalvings = 64
)

// ---------- Internal panic messages ----------

const (
	panicLambdaInvalid      = "optimize: WithLambda: lambda must be finite and > 0"
	panicStepInvalid        = "optimize: WithStep: h must be finite and non-zero"
	panicMaxStepsInvalid    = "optimize: WithMaxSteps: steps must be >= 0"
	panicMaxErrorInvalid    = "optimize: WithMaxError: tolerance must be finite and >= 0"
	panicMaxHalvingsInvalid = "optimize: WithMaxHalvings: halvings must be > 0"
)

// Option mutates Options; constructors validate eagerly.
type Option func(*Options)

// Options holds the resolved configuration of one search.
type Options struct {
	lambda      float64
	h           float64
	maxSteps    int
	maxError    float64
	maxHalvings int
	sink        trace.Sink
}

// Lambda returns the initial step size.
func (o Options) Lambda() float64 { return o.lambda }

// Step returns the finite-difference step h.
func (o Options) Step() float64 { return o.h }

// MaxSteps returns the iteration budget.
func (o Options) MaxSteps() int { return o.maxSteps }

// MaxError returns the gradient-norm threshold.
func (o Options) MaxError() float64 { return o.maxError }

// MaxHalvings returns the per-iteration halving cap.
func (o Options) MaxHalvings() int { return o.maxHalvings }

// WithLambda sets the initial step size λ (> 0).
func WithLambda(lambda float64) Option {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		panic(panicLambdaInvalid)
	}

	return func(o *Options) { o.lambda = lambda }
}

// WithStep sets the finite-difference step h used for every gradient.
func WithStep(h float64) Option {
	if finitediff.ValidateStep(h) != nil {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.h = h }
}

// WithMaxSteps sets the iteration budget. Zero returns x0 unless it is
// already converged.
func WithMaxSteps(steps int) Option {
	if steps < 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *Options) { o.maxSteps = steps }
}

// WithMaxError sets the gradient-norm convergence threshold.
func WithMaxError(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicMaxErrorInvalid)
	}

	return func(o *Options) { o.maxError = tol }
}

// WithMaxHalvings caps the halving loop of one iteration.
func WithMaxHalvings(n int) Option {
	if n <= 0 {
		panic(panicMaxHalvingsInvalid)
	}

	return func(o *Options) { o.maxHalvings = n }
}

// WithTrace routes per-iteration records to sink (nil restores Nop).
func WithTrace(sink trace.Sink) Option {
	return func(o *Options) { o.sink = trace.OrNop(sink) }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		lambda:      DefaultLambda,
		h:           finitediff.DefaultStep,
		maxSteps:    DefaultMaxSteps,
		maxError:    DefaultMaxError,
		maxHalvings: DefaultMaxHalvings,
		sink:        trace.Nop,
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
