// SPDX-License-Identifier: MIT

// Package finitediff approximates first derivatives by forward differencing.
//
// Gradient estimates ∇f for a scalar field f: Rⁿ → R with n+1 evaluations:
//
//	∂f/∂xᵢ ≈ (f(x + h·eᵢ) − f(x)) / h
//
// Jacobian estimates the m×n matrix of a vector field F: Rⁿ → Rᵐ by taking
// the gradient of each scalar projection F_k(x) = F(x)[k]; row k of the result
// is ∇F_k. That costs O(m·n) evaluations of F.
//
// The step h is an explicit argument because a good value depends on the scale
// of the problem. DefaultStep (1e-10) suits unit-scale smooth problems.
// h must be finite and non-zero; anything else is rejected with ErrInvalidStep
// before f is evaluated, so a caller never receives a silent NaN/Inf derivative.
// A negative h yields a backward difference.
//
// Functions are assumed pure; panics raised by f propagate untouched.
package finitediff
