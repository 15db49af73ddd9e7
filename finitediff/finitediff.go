// SPDX-License-Identifier: MIT

package finitediff

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numopt/matrix"
	"github.com/katalvlaran/numopt/vector"
)

// DefaultStep balances truncation error against cancellation for unit-scale inputs.
const DefaultStep = 1e-10

// ScalarField is a pure function Rⁿ → R.
type ScalarField func(x vector.Vector) float64

// VectorField is a pure function Rⁿ → Rᵐ.
type VectorField func(x vector.Vector) vector.Vector

// ValidateStep reports whether h is usable as a difference step.
func ValidateStep(h float64) error {
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("h=%g: %w", h, ErrInvalidStep)
	}

	return nil
}

// Gradient returns the forward-difference gradient of f at x.
// Implementation:
//   - Stage 1: validate h, f and x.
//   - Stage 2: evaluate f(x) once.
//   - Stage 3: for each axis i evaluate f(x + h·eᵢ) and store the difference quotient.
//
// Errors:
//   - ErrInvalidStep, ErrNilFunc, ErrEmptyPoint.
//
// Complexity:
//   - n+1 evaluations of f, O(n²) arithmetic for the perturbed points.
func Gradient(x vector.Vector, f ScalarField, h float64) (vector.Vector, error) {
	if err := ValidateStep(h); err != nil {
		return vector.Vector{}, fmt.Errorf("Gradient: %w", err)
	}
	if f == nil {
		return vector.Vector{}, fmt.Errorf("Gradient: %w", ErrNilFunc)
	}
	n := x.Dim()
	if n == 0 {
		return vector.Vector{}, fmt.Errorf("Gradient: %w", ErrEmptyPoint)
	}

	fx := f(x)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		e, err := vector.Basis(n, i, h)
		if err != nil {
			return vector.Vector{}, fmt.Errorf("Gradient: %w", err)
		}
		xh, err := x.Add(e)
		if err != nil {
			return vector.Vector{}, fmt.Errorf("Gradient: %w", err)
		}
		out[i] = (f(xh) - fx) / h
	}

	return vector.New(out...), nil
}

// Jacobian returns the m×n forward-difference Jacobian of F at x, where
// m = F(x).Dim() and n = x.Dim(). Row k is the gradient of x ↦ F(x)[k].
//
// Errors:
//   - ErrInvalidStep, ErrNilFunc, ErrEmptyPoint, ErrEmptyOutput.
//   - ErrDimensionMismatch when F's output dimension differs between evaluations.
//   - matrix.ErrNaNInf when a partial derivative is not finite.
func Jacobian(x vector.Vector, F VectorField, h float64) (*matrix.Dense, error) {
	if err := ValidateStep(h); err != nil {
		return nil, fmt.Errorf("Jacobian: %w", err)
	}
	if F == nil {
		return nil, fmt.Errorf("Jacobian: %w", ErrNilFunc)
	}
	n := x.Dim()
	if n == 0 {
		return nil, fmt.Errorf("Jacobian: %w", ErrEmptyPoint)
	}
	m := F(x).Dim()
	if m == 0 {
		return nil, fmt.Errorf("Jacobian: %w", ErrEmptyOutput)
	}

	jac, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, fmt.Errorf("Jacobian: %w", err)
	}
	for k := 0; k < m; k++ {
		var drift error
		component := func(y vector.Vector) float64 {
			out := F(y)
			if out.Dim() != m {
				drift = fmt.Errorf("got %d components, want %d: %w", out.Dim(), m, ErrDimensionMismatch)
				return math.NaN()
			}
			v, _ := out.At(k)

			return v
		}
		row, err := Gradient(x, component, h)
		if err != nil {
			return nil, fmt.Errorf("Jacobian row %d: %w", k, err)
		}
		if drift != nil {
			return nil, fmt.Errorf("Jacobian row %d: %w", k, drift)
		}
		for j, v := range row.Values() {
			if err = jac.Set(k, j, v); err != nil {
				return nil, fmt.Errorf("Jacobian: %w", err)
			}
		}
	}

	return jac, nil
}
