// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/matrix"
	"github.com/katalvlaran/numopt/trace"
	"github.com/katalvlaran/numopt/vector"
)

const routine = "newton"

// Field is a pure vector field Rⁿ → Rᵐ. Solve can only invert square 2×2
// Jacobians, so in practice n = m = 2.
type Field func(x vector.Vector) vector.Vector

// Termination says why Solve stopped.
type Termination int

const (
	// Converged: ‖F(x)‖ fell below MaxError.
	Converged Termination = iota
	// MaxSteps: the budget ran out and the terminal update was applied.
	MaxSteps
)

// String returns a stable lower-case name.
func (t Termination) String() string {
	switch t {
	case Converged:
		return "converged"
	case MaxSteps:
		return "max-steps"
	default:
		return "unknown"
	}
}

// Result is the terminal state of a solve.
type Result struct {
	Position     vector.Vector // approximate root
	Residual     vector.Vector // F(Position)
	ResidualNorm float64       // ‖Residual‖
	Iterations   int           // Newton updates applied, the terminal one included
	Cause        Termination
}

// Solve runs Newton-Raphson on F from x0.
//
// Implementation:
//   - Stage 1: evaluate Fx = F(x); stop with Converged when ‖Fx‖ < MaxError.
//   - Stage 2: J = Jacobian(F, x), Δ = J⁻¹·Fx, x = x − Δ.
//   - Stage 3: after MaxSteps updates, apply one more (Stage 2) and stop with MaxSteps.
//
// Errors:
//   - ErrNilField, ErrEmptyStart.
//   - finitediff.ErrEmptyOutput when F returns an empty vector.
//   - matrix.ErrInvalidShape when the Jacobian is not 2×2, matrix.ErrSingular
//     when |det J| < matrix.SingularThreshold. Both abort and are wrapped with
//     the iteration number.
//   - finitediff and vector errors, wrapped.
//
// Complexity:
//   - per iteration: m·(n+1)+1 evaluations of F.
func Solve(x0 vector.Vector, F Field, opts ...Option) (Result, error) {
	if F == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrNilField)
	}
	if x0.Dim() == 0 {
		return Result{}, fmt.Errorf("Solve: %w", ErrEmptyStart)
	}
	o := NewOptions(opts...)

	pos := x0
	for iteration := 0; ; iteration++ {
		fx := F(pos)
		if fx.Dim() == 0 {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", routine, iteration, finitediff.ErrEmptyOutput)
		}
		norm := fx.Norm()
		if norm < o.maxError {
			return finish(o, pos, fx, iteration, Converged), nil
		}

		next, delta, err := update(pos, fx, F, o.h)
		if err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", routine, iteration, err)
		}
		o.sink.Emit(trace.Record{
			Routine:   routine,
			Iteration: iteration,
			Position:  next,
			Step:      delta.Norm(),
			Norm:      norm,
			Event:     trace.EventNewton,
		})
		pos = next

		if iteration >= o.maxSteps {
			return finish(o, pos, F(pos), iteration+1, MaxSteps), nil
		}
	}
}

// update returns x − J(x)⁻¹·Fx together with the applied step.
func update(x, fx vector.Vector, F Field, h float64) (next, delta vector.Vector, err error) {
	jac, err := finitediff.Jacobian(x, finitediff.VectorField(F), h)
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	inv, err := matrix.Inverse(jac)
	if err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	if delta, err = matrix.MulVec(inv, fx); err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}
	if next, err = x.Sub(delta); err != nil {
		return vector.Vector{}, vector.Vector{}, err
	}

	return next, delta, nil
}

func finish(o Options, pos, fx vector.Vector, iterations int, cause Termination) Result {
	norm := fx.Norm()
	o.sink.Emit(trace.Record{
		Routine:   routine,
		Iteration: iterations,
		Position:  pos,
		Norm:      norm,
		Event:     trace.EventDone,
		Cause:     cause.String(),
	})

	return Result{
		Position:     pos,
		Residual:     fx,
		ResidualNorm: norm,
		Iterations:   iterations,
		Cause:        cause,
	}
}
