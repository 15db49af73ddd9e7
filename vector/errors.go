// SPDX-License-Identifier: MIT

package vector

import "errors"

// Every message is prefixed with "vector: ..." for grepping; callers match
// with errors.Is, wrappers add context with %w.
var (
	// ErrDimensionMismatch is returned when two operands have different dimensions.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, Dim()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidDimension is returned by constructors asked for a non-positive dimension.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")
)
