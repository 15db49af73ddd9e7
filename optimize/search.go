// SPDX-License-Identifier: MIT

package optimize

import (
	"fmt"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/trace"
	"github.com/katalvlaran/numopt/vector"
)

const (
	routineMaximize = "maximize"
	routineMinimize = "minimize"
)

// Maximize climbs f from x0 with the adaptive step scheme described in the
// package documentation and returns the terminal state.
//
// Errors:
//   - ErrNilObjective, ErrEmptyStart.
//   - finitediff.ErrInvalidStep and vector errors, wrapped; the search is aborted.
func Maximize(x0 vector.Vector, f Objective, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("Maximize: %w", ErrNilObjective)
	}

	return search(routineMaximize, +1, x0, f, NewOptions(opts...))
}

// Minimize descends f from x0. It is Maximize applied to −f; Value and
// Gradient in the result refer to f itself.
func Minimize(x0 vector.Vector, f Objective, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, fmt.Errorf("Minimize: %w", ErrNilObjective)
	}
	neg := func(x vector.Vector) float64 { return -f(x) }

	return search(routineMinimize, -1, x0, neg, NewOptions(opts...))
}

// search maximizes f. sign maps f back to the caller's objective
// (+1 for Maximize, −1 for Minimize) in the result and trace records.
func search(routine string, sign float64, x0 vector.Vector, f Objective, o Options) (Result, error) {
	if x0.Dim() == 0 {
		return Result{}, fmt.Errorf("%s: %w", routine, ErrEmptyStart)
	}

	evals := 0
	counted := func(x vector.Vector) float64 {
		evals++
		return f(x)
	}

	var (
		pos       = x0
		fPos      = counted(pos)
		step      = o.lambda
		iteration = 0
		grad      vector.Vector
		norm      float64
		err       error
	)

	emit := func(ev trace.Event, at vector.Vector, value float64, cause string) {
		o.sink.Emit(trace.Record{
			Routine:   routine,
			Iteration: iteration,
			Position:  at,
			Step:      step,
			Norm:      norm,
			Value:     sign * value,
			Event:     ev,
			Cause:     cause,
		})
	}
	finish := func(cause Termination) Result {
		emit(trace.EventDone, pos, fPos, cause.String())

		return Result{
			Position:    pos,
			Value:       sign * fPos,
			Gradient:    grad.Scale(sign),
			GradNorm:    norm,
			Step:        step,
			Iterations:  iteration,
			Evaluations: evals,
			Cause:       cause,
		}
	}

	for {
		grad, err = finitediff.Gradient(pos, finitediff.ScalarField(counted), o.h)
		if err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", routine, iteration, err)
		}
		norm = grad.Norm()

		// Termination is checked before moving: the current position is returned.
		if norm < o.maxError {
			return finish(Converged), nil
		}
		if iteration >= o.maxSteps {
			return finish(MaxSteps), nil
		}
		emit(trace.EventStep, pos, fPos, "")

		next, err := advance(pos, grad, step)
		if err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", routine, iteration, err)
		}
		fNext := counted(next)

		if fNext > fPos {
			doubled := 2 * step
			trial, err := advance(pos, grad, doubled)
			if err != nil {
				return Result{}, fmt.Errorf("%s: iteration %d: %w", routine, iteration, err)
			}
			if fTrial := counted(trial); fTrial > fNext {
				pos, fPos, step = trial, fTrial, doubled
				emit(trace.EventDoubled, pos, fPos, "")
			} else {
				pos, fPos = next, fNext
				emit(trace.EventKept, pos, fPos, "")
			}
		} else {
			// Halve until f(next) >= f(pos). NaN never satisfies the
			// comparison, so a NaN probe keeps halving.
			for halvings := 0; !(fNext >= fPos); halvings++ {
				if halvings >= o.maxHalvings {
					return finish(StepCollapsed), nil
				}
				step /= 2
				if next, err = advance(pos, grad, step); err != nil {
					return Result{}, fmt.Errorf("%s: iteration %d: %w", routine, iteration, err)
				}
				fNext = counted(next)
				emit(trace.EventHalved, next, fNext, "")
			}
			pos, fPos = next, fNext
		}

		iteration++
	}
}

// advance returns pos + step·grad.
func advance(pos, grad vector.Vector, step float64) (vector.Vector, error) {
	return pos.Add(grad.Scale(step))
}
