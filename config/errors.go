// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidConfig is returned by Validate; the message names the offending key.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnsupportedFormat is returned for file extensions or format names
	// other than yaml, yml and toml.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
)
