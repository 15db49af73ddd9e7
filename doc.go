// Package numopt is a small numerical optimization toolkit: finite
// differences, adaptive-step gradient search, Newton-Raphson root finding and
// least-squares polynomial fitting over immutable vectors and dense matrices.
//
// What is inside?
//
//	vector/     — immutable R^n value type, gonum/floats kernels
//	matrix/     — dense row-major matrices, determinant, 2×2 inverse
//	finitediff/ — forward-difference gradients and Jacobians
//	optimize/   — Maximize / Minimize with step doubling and halving
//	newton/     — Newton-Raphson for 2×2 systems
//	fit/        — polynomial least squares on top of optimize
//	trace/      — per-iteration records, in-memory and logrus sinks
//	config/     — YAML/TOML tunables → per-call options
//	dataset/    — (x, y) sample files
//	cmd/numopt  — CLI: fit (with --plot), maximize, minimize, newton
//
// Every routine is synchronous and deterministic. Failures are returned as
// wrapped sentinel errors (errors.Is), never panics; only option constructors
// panic, on values no caller should pass.
//
// Quick example:
//
//	res, err := optimize.Maximize(vector.New(0, 0), func(v vector.Vector) float64 {
//		x, _ := v.At(0)
//		y, _ := v.At(1)
//		return -(x-1)*(x-1) - (y-2)*(y-2)
//	})
//	// res.Position ≈ (1, 2), res.Cause == optimize.Converged
//
//	go get github.com/katalvlaran/numopt
package numopt
