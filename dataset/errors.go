// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrMalformedRow is returned for a line that is not two finite numbers.
	// The wrapping message carries the 1-based line number.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrEmpty is returned when the input holds no samples.
	ErrEmpty = errors.New("dataset: no samples")
)
