// SPDX-License-Identifier: MIT

// Package fit fits polynomials to sample points by least squares, entirely
// through the iterative search in package optimize.
//
// Coefficients are ordered highest degree first, so for degree d
//
//	p(x) = c[0]·x^d + c[1]·x^(d−1) + … + c[d]
//
// CurveFit minimizes the sum of squared residuals from the zero vector with
// an initial step of 0.1; the squared-error surface is steep, and a unit step
// overshoots on most data sets. There is no normal-equations path: the result
// inherits every termination cause of optimize.Minimize, including a
// best-effort MaxSteps answer.
package fit
