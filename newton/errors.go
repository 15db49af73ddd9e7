// SPDX-License-Identifier: MIT

package newton

import "errors"

var (
	// ErrNilField is returned when the vector field is nil.
	ErrNilField = errors.New("newton: nil vector field")

	// ErrEmptyStart is returned when the initial guess has dimension 0.
	ErrEmptyStart = errors.New("newton: empty start point")
)
