// SPDX-License-Identifier: MIT

// Package matrix provides the dense real matrix consumed by the Newton solver
// and produced by the Jacobian.
//
// The package provides:
//
//   - Dense: a row-major r×c matrix with bounds-checked At/Set and a finite-only
//     numeric policy (NaN/±Inf are rejected by Set).
//   - Kernels returning fresh matrices: Add, Sub, Scale, Negate, Mul, MulVec,
//     Transpose.
//   - Determinant by cofactor expansion (any square size) and Inverse, which is
//     deliberately limited to the 2×2 closed form.
//
// Kernels never mutate their operands. Shape violations surface as sentinel
// errors (ErrDimensionMismatch, ErrInvalidShape, ErrSingular, ...) wrapped with
// the operation name; match them with errors.Is.
//
// Inverse rejects anything that is not exactly 2×2 with ErrInvalidShape.
// Callers needing larger systems must bring a general solver.
package matrix
