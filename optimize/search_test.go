// SPDX-License-Identifier: MIT
package optimize_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/optimize"
	"github.com/katalvlaran/numopt/trace"
	"github.com/katalvlaran/numopt/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cap2 is −(x−1)² − (y−2)², maximal at (1, 2).
func cap2(x vector.Vector) float64 {
	v := x.Values()

	return -(v[0]-1)*(v[0]-1) - (v[1]-2)*(v[1]-2)
}

// terminatedProperly asserts the documented stop condition of a result.
func terminatedProperly(t *testing.T, res optimize.Result, o optimize.Options) {
	t.Helper()
	assert.True(t, res.GradNorm < o.MaxError() || res.Iterations == o.MaxSteps(),
		"grad norm %g after %d iterations", res.GradNorm, res.Iterations)
}

// TestMaximizeQuadraticCap converges from the origin to (1, 2).
func TestMaximizeQuadraticCap(t *testing.T) {
	res, err := optimize.Maximize(vector.New(0, 0), cap2)
	require.NoError(t, err)

	assert.True(t, res.Position.ApproxEqual(vector.New(1, 2), 1e-3), "got %v", res.Position)
	assert.Equal(t, optimize.Converged, res.Cause)
	assert.InDelta(t, 0.0, res.Value, 1e-6)
	terminatedProperly(t, res, optimize.DefaultOptions())
}

// TestMaximizeIdempotent restarts from a converged point and expects no movement.
func TestMaximizeIdempotent(t *testing.T) {
	first, err := optimize.Maximize(vector.New(0, 0), cap2)
	require.NoError(t, err)

	second, err := optimize.Maximize(first.Position, cap2)
	require.NoError(t, err)
	assert.True(t, second.Position.Equal(first.Position), "moved from %v to %v", first.Position, second.Position)
	assert.Equal(t, 0, second.Iterations)
	assert.Equal(t, optimize.Converged, second.Cause)
}

// TestMinimizeMirror minimizes (x−5)² from 0.
func TestMinimizeMirror(t *testing.T) {
	g := func(x vector.Vector) float64 {
		v := x.Values()
		return (v[0] - 5) * (v[0] - 5)
	}
	res, err := optimize.Minimize(vector.New(0), g)
	require.NoError(t, err)

	assert.True(t, res.Position.ApproxEqual(vector.New(5), 1e-3), "got %v", res.Position)
	assert.InDelta(t, 0.0, res.Value, 1e-6, "value is reported on g's scale")
	assert.GreaterOrEqual(t, res.Value, 0.0)
	terminatedProperly(t, res, optimize.DefaultOptions())

	// The reported gradient is ∇g, not ∇(−g): just left of 5 it points left.
	if x, _ := res.Position.At(0); x < 5 {
		d, _ := res.Gradient.At(0)
		assert.LessOrEqual(t, d, 0.0)
	}
}

// TestMinimizeBowl3D runs the three-variable bowl 2x²−2xy+y²+z²−2x−4z with λ = 0.1.
func TestMinimizeBowl3D(t *testing.T) {
	bowl := func(x vector.Vector) float64 {
		v := x.Values()
		return 2*v[0]*v[0] - 2*v[0]*v[1] + v[1]*v[1] + v[2]*v[2] - 2*v[0] - 4*v[2]
	}
	o := optimize.NewOptions(optimize.WithLambda(0.1))
	res, err := optimize.Minimize(vector.New(0, 0, 0), bowl, optimize.WithLambda(0.1))
	require.NoError(t, err)

	assert.True(t, res.Position.ApproxEqual(vector.New(1, 1, 2), 1e-3), "got %v", res.Position)
	terminatedProperly(t, res, o)
}

// TestMaximizeTrigSurface climbs sin(xy) + sin(x) + cos(y) from (0.2, −2.1).
func TestMaximizeTrigSurface(t *testing.T) {
	f := func(x vector.Vector) float64 {
		v := x.Values()
		return math.Sin(v[0]*v[1]) + math.Sin(v[0]) + math.Cos(v[1])
	}
	res, err := optimize.Maximize(vector.New(0.2, -2.1), f)
	require.NoError(t, err)

	assert.True(t, res.Position.ApproxEqual(vector.New(1.80606, 0.67429), 1e-3), "got %v", res.Position)
	terminatedProperly(t, res, optimize.DefaultOptions())
}

// TestStepDoubling verifies the step doubles while doubling keeps improving,
// and that MaxSteps returns the current position.
func TestStepDoubling(t *testing.T) {
	f := func(x vector.Vector) float64 {
		v := x.Values()
		return -(v[0] - 10) * (v[0] - 10)
	}
	var rec trace.Recorder
	res, err := optimize.Maximize(vector.New(0), f,
		optimize.WithLambda(0.01),
		optimize.WithMaxSteps(3),
		optimize.WithTrace(&rec),
	)
	require.NoError(t, err)

	assert.Equal(t, optimize.MaxSteps, res.Cause)
	assert.Equal(t, 3, res.Iterations)
	assert.InDelta(t, 0.08, res.Step, 1e-15)

	doubled := 0
	for _, r := range rec.Records() {
		if r.Event == trace.EventDoubled {
			doubled++
		}
	}
	assert.Equal(t, 3, doubled)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, trace.EventDone, last.Event)
	assert.Equal(t, "max-steps", last.Cause)
	assert.True(t, last.Position.Equal(res.Position))
}

// TestMaxStepsZero returns the start point untouched.
func TestMaxStepsZero(t *testing.T) {
	x0 := vector.New(0, 0)
	res, err := optimize.Maximize(x0, cap2, optimize.WithMaxSteps(0))
	require.NoError(t, err)

	assert.Equal(t, optimize.MaxSteps, res.Cause)
	assert.True(t, res.Position.Equal(x0))
	assert.Equal(t, 0, res.Iterations)
}

// TestStepCollapsed bounds the halving loop on an objective that never recovers.
func TestStepCollapsed(t *testing.T) {
	// −|x| has its peak at 0, but the forward difference there reports a
	// slope of −1, so every probe along it loses.
	f := func(x vector.Vector) float64 {
		v, _ := x.At(0)
		return -math.Abs(v)
	}
	res, err := optimize.Maximize(vector.New(0), f, optimize.WithMaxHalvings(10))
	require.NoError(t, err)

	assert.Equal(t, optimize.StepCollapsed, res.Cause)
	assert.True(t, res.Position.Equal(vector.New(0)))
	assert.Equal(t, math.Ldexp(1, -10), res.Step)
}

// TestHalvingRejectsNaN keeps halving while the probe evaluates to NaN.
func TestHalvedStepCarriesOver(t *testing.T) {
	// Elongated cap: the unit step overshoots along y and is halved four times
	// in the first iteration.
	narrow := func(v vector.Vector) float64 {
		x, _ := v.At(0)
		y, _ := v.At(1)
		return -(x-1)*(x-1) - 10*(y-2)*(y-2)
	}
	var rec trace.Recorder
	_, err := optimize.Maximize(vector.New(0, 0), narrow, optimize.WithTrace(&rec))
	require.NoError(t, err)

	// Step size in force at the last halving of each iteration.
	lastHalved := map[int]float64{}
	for _, r := range rec.Records() {
		if r.Event == trace.EventHalved {
			lastHalved[r.Iteration] = r.Step
		}
	}
	require.Contains(t, lastHalved, 0)
	assert.Equal(t, 0.0625, lastHalved[0])

	checked := 0
	for _, r := range rec.Records() {
		if r.Event != trace.EventStep {
			continue
		}
		if shrunk, ok := lastHalved[r.Iteration-1]; ok {
			assert.Equal(t, shrunk, r.Step, "iteration %d must start from the halved step", r.Iteration)
			checked++
		}
	}
	assert.Positive(t, checked)
}

func TestHalvingRejectsNaN(t *testing.T) {
	// Undefined beyond x = 1.5; the unit step from 0 lands at 2.
	f := func(x vector.Vector) float64 {
		v, _ := x.At(0)
		if v > 1.5 {
			return math.NaN()
		}
		return -(v - 1) * (v - 1)
	}
	res, err := optimize.Maximize(vector.New(0), f)
	require.NoError(t, err)

	assert.False(t, math.IsNaN(res.Value))
	assert.True(t, res.Position.IsFinite())
	assert.True(t, res.Position.ApproxEqual(vector.New(1), 1e-3), "got %v", res.Position)
}

// TestTraceDoesNotChangeResult compares a traced run, a muted run and an untraced run.
func TestTraceDoesNotChangeResult(t *testing.T) {
	plain, err := optimize.Maximize(vector.New(3, -1), cap2)
	require.NoError(t, err)

	var rec trace.Recorder
	traced, err := optimize.Maximize(vector.New(3, -1), cap2, optimize.WithTrace(&rec))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.Records())

	sw := trace.NewSwitch(&rec)
	rec.Reset()
	unmute := sw.Mute()
	muted, err := optimize.Maximize(vector.New(3, -1), cap2, optimize.WithTrace(sw))
	unmute()
	require.NoError(t, err)
	assert.Empty(t, rec.Records())

	assert.True(t, plain.Position.Equal(traced.Position))
	assert.True(t, plain.Position.Equal(muted.Position))
	assert.Equal(t, plain.Iterations, muted.Iterations)
}

// TestSearchErrors covers input validation and propagated finite-difference errors.
func TestSearchErrors(t *testing.T) {
	_, err := optimize.Maximize(vector.New(1), nil)
	assert.ErrorIs(t, err, optimize.ErrNilObjective)

	_, err = optimize.Minimize(vector.New(1), nil)
	assert.ErrorIs(t, err, optimize.ErrNilObjective)

	_, err = optimize.Maximize(vector.Vector{}, cap2)
	assert.ErrorIs(t, err, optimize.ErrEmptyStart)
}

// TestOptionPanics documents that nonsensical options are programmer errors.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { optimize.WithLambda(0) })
	assert.Panics(t, func() { optimize.WithLambda(math.Inf(1)) })
	assert.Panics(t, func() { optimize.WithStep(0) })
	assert.Panics(t, func() { optimize.WithMaxSteps(-1) })
	assert.Panics(t, func() { optimize.WithMaxError(math.NaN()) })
	assert.Panics(t, func() { optimize.WithMaxHalvings(0) })
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := optimize.DefaultOptions()
	assert.Equal(t, 1.0, o.Lambda())
	assert.Equal(t, finitediff.DefaultStep, o.Step())
	assert.Equal(t, 25, o.MaxSteps())
	assert.Equal(t, 1e-5, o.MaxError())
	assert.Equal(t, optimize.DefaultMaxHalvings, o.MaxHalvings())

	o = optimize.NewOptions(optimize.WithLambda(0.5), optimize.WithLambda(0.25))
	assert.Equal(t, 0.25, o.Lambda(), "last writer wins")
}

// TestTerminationString pins the names used in trace records.
func TestTerminationString(t *testing.T) {
	assert.Equal(t, "converged", optimize.Converged.String())
	assert.Equal(t, "max-steps", optimize.MaxSteps.String())
	assert.Equal(t, "step-collapsed", optimize.StepCollapsed.String())
	assert.Equal(t, "unknown", optimize.Termination(99).String())
}
