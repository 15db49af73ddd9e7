// SPDX-License-Identifier: MIT

// Package vector provides the immutable real-valued vector used by every
// numeric routine in numopt.
//
// A Vector has a fixed dimension chosen at construction. Every operation
// returns a fresh Vector; operands are never mutated, so the same value can be
// handed to several routines without aliasing hazards.
//
// Binary operations (Add, Sub, Hadamard, Dot) require equal dimensions and
// return ErrDimensionMismatch otherwise. Indexed access outside [0, Dim())
// returns ErrOutOfRange. No operation pads, truncates or panics on user input.
//
// Element loops are delegated to gonum's floats package.
//
//	a := vector.New(1, 2)
//	b := vector.New(3, 4)
//	sum, err := a.Add(b) // (4, 6)
package vector
