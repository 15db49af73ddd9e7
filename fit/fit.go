// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numopt/optimize"
	"github.com/katalvlaran/numopt/vector"
)

// DefaultLambda is the initial step size CurveFit uses unless overridden.
const DefaultLambda = 0.1

// Point is one (x, y) sample.
type Point struct {
	X, Y float64
}

// Result is the outcome of CurveFit.
type Result struct {
	Coefficients vector.Vector   // highest degree first, length degree+1
	SSE          float64         // Σ (p(x) − y)² at Coefficients
	Search       optimize.Result // the underlying minimization
}

// Polynomial returns x ↦ Σ c[i]·x^(d−i), evaluated by Horner's rule.
// An empty coefficient vector is the zero polynomial.
func Polynomial(coeffs vector.Vector) func(float64) float64 {
	c := coeffs.Values()

	return func(x float64) float64 {
		acc := 0.0
		for _, a := range c {
			acc = acc*x + a
		}

		return acc
	}
}

// SquaredError returns the least-squares objective over points: a function
// of the coefficient vector. Coefficient vectors of the wrong length make it
// return NaN.
func SquaredError(points []Point, degree int) optimize.Objective {
	pts := append([]Point(nil), points...)

	return func(coeffs vector.Vector) float64 {
		if coeffs.Dim() != degree+1 {
			return math.NaN()
		}
		p := Polynomial(coeffs)
		sum := 0.0
		for _, pt := range pts {
			r := p(pt.X) - pt.Y
			sum += r * r
		}

		return sum
	}
}

// CurveFit fits a degree-d polynomial to points. Options are passed to
// optimize.Minimize after WithLambda(DefaultLambda), so they can override it.
//
// Errors:
//   - ErrNoPoints, ErrNegativeDegree, ErrNonFinitePoint.
//   - errors from optimize.Minimize, wrapped.
func CurveFit(points []Point, degree int, opts ...optimize.Option) (Result, error) {
	if len(points) == 0 {
		return Result{}, fmt.Errorf("CurveFit: %w", ErrNoPoints)
	}
	if degree < 0 {
		return Result{}, fmt.Errorf("CurveFit(degree=%d): %w", degree, ErrNegativeDegree)
	}
	for i, pt := range points {
		if !finite(pt.X) || !finite(pt.Y) {
			return Result{}, fmt.Errorf("CurveFit: point %d (%g, %g): %w", i, pt.X, pt.Y, ErrNonFinitePoint)
		}
	}

	start, err := vector.Zeros(degree + 1)
	if err != nil {
		return Result{}, fmt.Errorf("CurveFit: %w", err)
	}
	all := append([]optimize.Option{optimize.WithLambda(DefaultLambda)}, opts...)
	res, err := optimize.Minimize(start, SquaredError(points, degree), all...)
	if err != nil {
		return Result{}, fmt.Errorf("CurveFit: %w", err)
	}

	return Result{
		Coefficients: res.Position,
		SSE:          res.Value,
		Search:       res,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
