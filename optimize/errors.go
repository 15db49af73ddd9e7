// SPDX-License-Identifier: MIT

package optimize

import "errors"

var (
	// ErrNilObjective is returned when the objective function is nil.
	ErrNilObjective = errors.New("optimize: nil objective")

	// ErrEmptyStart is returned when the start point has dimension 0.
	ErrEmptyStart = errors.New("optimize: empty start point")
)
