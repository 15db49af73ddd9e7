// SPDX-License-Identifier: MIT

// Package newton solves F(x) = 0 for vector fields F: R² → R² by
// Newton-Raphson iteration with a finite-difference Jacobian.
//
// Each iteration recomputes everything from scratch:
//
//	J  = Jacobian(F, x)        (forward differences)
//	Fx = F(x)
//	if ‖Fx‖ < MaxError: done (Converged)
//	x  = x − J⁻¹·Fx
//
// After MaxSteps iterations one more Jacobian/inverse/step is computed and
// applied, and the result is returned with cause MaxSteps. That is a
// best-effort answer, not a failure.
//
// Only 2×2 Jacobians are invertible here (matrix.Inverse). Any other shape
// aborts with matrix.ErrInvalidShape, and a Jacobian with |det| < 1e-10 aborts
// with matrix.ErrSingular. Neither is retried: the problem is ill-posed at that
// point, so the caller must choose another start.
package newton
