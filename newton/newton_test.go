// SPDX-License-Identifier: MIT

package newton_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numopt/finitediff"
	"github.com/katalvlaran/numopt/matrix"
	"github.com/katalvlaran/numopt/newton"
	"github.com/katalvlaran/numopt/trace"
	"github.com/katalvlaran/numopt/vector"
)

// sqrtTwo has the root (√2, √2).
func sqrtTwo(v vector.Vector) vector.Vector {
	x, _ := v.At(0)
	y, _ := v.At(1)

	return vector.New(x*x-2, y-x)
}

func TestSolveConverges(t *testing.T) {
	res, err := newton.Solve(vector.New(1, 1), sqrtTwo)
	require.NoError(t, err)
	assert.Equal(t, newton.Converged, res.Cause)
	assert.LessOrEqual(t, res.Iterations, 5)
	assert.Less(t, res.ResidualNorm, newton.DefaultMaxError)

	for i := 0; i < 2; i++ {
		v, err := res.Position.At(i)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt2, v, 1e-4)
	}
}

func TestSolveCubicSystem(t *testing.T) {
	cubic := func(v vector.Vector) vector.Vector {
		x, _ := v.At(0)
		y, _ := v.At(1)

		return vector.New(x*x*x*y*y*y-2*y, x-2)
	}
	res, err := newton.Solve(vector.New(1, 1), cubic)
	require.NoError(t, err)
	assert.Equal(t, newton.Converged, res.Cause)

	x, _ := res.Position.At(0)
	y, _ := res.Position.At(1)
	assert.InDelta(t, 2, x, 1e-4)
	assert.InDelta(t, -0.5, y, 1e-4)
}

func TestSolveAlreadyAtRoot(t *testing.T) {
	root := vector.New(math.Sqrt2, math.Sqrt2)
	res, err := newton.Solve(root, sqrtTwo)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, newton.Converged, res.Cause)
	assert.True(t, res.Position.Equal(root))
}

func TestSolveTerminalUpdate(t *testing.T) {
	// With no budget the single terminal update is still applied: from (1,1)
	// one Newton step lands on (1.5, 1.5).
	res, err := newton.Solve(vector.New(1, 1), sqrtTwo, newton.WithMaxSteps(0))
	require.NoError(t, err)
	assert.Equal(t, newton.MaxSteps, res.Cause)
	assert.Equal(t, 1, res.Iterations)

	x, _ := res.Position.At(0)
	y, _ := res.Position.At(1)
	assert.InDelta(t, 1.5, x, 1e-5)
	assert.InDelta(t, 1.5, y, 1e-5)
	assert.InDelta(t, 0.25, res.ResidualNorm, 1e-4)
}

func TestSolveNonSquareJacobian(t *testing.T) {
	three := func(v vector.Vector) vector.Vector {
		x, _ := v.At(0)
		y, _ := v.At(1)

		return vector.New(x-3, y+1, x*y)
	}
	_, err := newton.Solve(vector.New(1, 1), three)
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrInvalidShape)
	assert.Contains(t, err.Error(), "iteration 0")
}

func TestSolveSingularJacobian(t *testing.T) {
	// The second component is constant, so its Jacobian row is exactly zero.
	flat := func(v vector.Vector) vector.Vector {
		x, _ := v.At(0)

		return vector.New(x, 0)
	}
	_, err := newton.Solve(vector.New(1, 1), flat)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrSingular))
}

func TestSolveInputErrors(t *testing.T) {
	_, err := newton.Solve(vector.New(1, 1), nil)
	assert.ErrorIs(t, err, newton.ErrNilField)

	_, err = newton.Solve(vector.New(), sqrtTwo)
	assert.ErrorIs(t, err, newton.ErrEmptyStart)

	// An empty residual has norm 0 but is a broken field, not a root.
	res, err := newton.Solve(vector.New(1, 1), func(vector.Vector) vector.Vector { return vector.Vector{} })
	require.Error(t, err)
	assert.ErrorIs(t, err, finitediff.ErrEmptyOutput)
	assert.Zero(t, res.Iterations)
}

func TestSolveTrace(t *testing.T) {
	var rec trace.Recorder
	res, err := newton.Solve(vector.New(1, 1), sqrtTwo, newton.WithTrace(&rec))
	require.NoError(t, err)

	records := rec.Records()
	require.Len(t, records, res.Iterations+1)
	for _, r := range records[:res.Iterations] {
		assert.Equal(t, trace.EventNewton, r.Event)
		assert.Equal(t, "newton", r.Routine)
		assert.Greater(t, r.Step, 0.0)
	}
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, trace.EventDone, last.Event)
	assert.Equal(t, "converged", last.Cause)

	quiet, err := newton.Solve(vector.New(1, 1), sqrtTwo)
	require.NoError(t, err)
	assert.True(t, quiet.Position.Equal(res.Position))
}

func TestOptions(t *testing.T) {
	def := newton.DefaultOptions()
	assert.Equal(t, finitediff.DefaultStep, def.Step())
	assert.Equal(t, newton.DefaultMaxSteps, def.MaxSteps())
	assert.Equal(t, newton.DefaultMaxError, def.MaxError())

	o := newton.NewOptions(newton.WithStep(1e-6), newton.WithMaxSteps(7), newton.WithMaxError(1e-3))
	assert.Equal(t, 1e-6, o.Step())
	assert.Equal(t, 7, o.MaxSteps())
	assert.Equal(t, 1e-3, o.MaxError())

	assert.Panics(t, func() { newton.WithStep(0) })
	assert.Panics(t, func() { newton.WithMaxSteps(-1) })
	assert.Panics(t, func() { newton.WithMaxError(math.NaN()) })
}

func TestTerminationString(t *testing.T) {
	assert.Equal(t, "converged", newton.Converged.String())
	assert.Equal(t, "max-steps", newton.MaxSteps.String())
	assert.Equal(t, "unknown", newton.Termination(9).String())
}
