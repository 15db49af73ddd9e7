// SPDX-License-Identifier: MIT

package finitediff

import "errors"

var (
	// ErrInvalidStep is returned when h is zero, NaN or ±Inf.
	ErrInvalidStep = errors.New("finitediff: step h must be finite and non-zero")

	// ErrNilFunc is returned when the function argument is nil.
	ErrNilFunc = errors.New("finitediff: nil function")

	// ErrEmptyPoint is returned for a zero-dimensional evaluation point.
	ErrEmptyPoint = errors.New("finitediff: empty evaluation point")

	// ErrEmptyOutput is returned when a vector field yields a zero-dimensional value.
	ErrEmptyOutput = errors.New("finitediff: vector field returned an empty vector")

	// ErrDimensionMismatch is returned when a vector field changes its output
	// dimension between evaluations.
	ErrDimensionMismatch = errors.New("finitediff: vector field output dimension changed")
)
