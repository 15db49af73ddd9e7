// SPDX-License-Identifier: MIT

// Package config loads solver tunables from YAML or TOML files and turns them
// into per-call options for optimize, newton and fit.
//
// Decoding starts from Default(), so keys absent from a file keep their
// defaults. Nothing here is process-wide: a Config is a plain value that the
// caller threads into each call.
//
//	gradient: { step: 1e-10 }
//	search:   { lambda: 1.0, max_steps: 25, max_error: 1e-5, max_halvings: 64 }
//	newton:   { step: 1e-10, max_steps: 50, max_error: 1e-5 }
//	fit:      { lambda: 0.1, max_steps: 25, degree: 2 }
//	log:      { level: info, format: text }
package config
