// SPDX-License-Identifier: MIT

package fit

import "errors"

var (
	// ErrNoPoints is returned when CurveFit receives no samples.
	ErrNoPoints = errors.New("fit: no sample points")

	// ErrNegativeDegree is returned for degree < 0.
	ErrNegativeDegree = errors.New("fit: negative polynomial degree")

	// ErrNonFinitePoint is returned when a sample has a NaN or ±Inf coordinate.
	ErrNonFinitePoint = errors.New("fit: non-finite sample point")
)
