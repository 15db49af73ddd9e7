// SPDX-License-Identifier: MIT

// Package optimize finds local extrema of scalar fields by gradient ascent
// with a self-adjusting step size.
//
// 🚀 Algorithm (Maximize):
//
//  1. position = x0, λ = Lambda, iteration = 0.
//  2. g = ∇f(position) by forward differences (finitediff.Gradient).
//  3. Stop if ‖g‖ < MaxError (Converged) or iteration ≥ MaxSteps (MaxSteps);
//     the current position is returned, not one step further.
//  4. next = position + λ·g.
//  5. If f(next) > f(position): try 2λ. Commit the doubled step (and keep λ = 2λ)
//     only if it beats the single step; otherwise commit next with λ unchanged.
//     Otherwise halve λ while f(position + λ·g) < f(position), then commit.
//     The shrinkage persists into later iterations.
//  6. iteration++, go to 2.
//
// The halving loop is bounded by MaxHalvings. A flat or discontinuous
// objective that never recovers stops with cause StepCollapsed instead of
// spinning until λ underflows.
//
// Minimize(x0, f) is Maximize(x0, −f); Result.Value is reported on f's scale.
//
// ⚙️ Usage:
//
//	res, err := optimize.Maximize(vector.New(0, 0), f,
//	    optimize.WithLambda(0.1),
//	    optimize.WithTrace(sink),
//	)
//
// Every tunable is a per-call option; there is no package-level state.
package optimize
