// SPDX-License-Identifier: MIT
package trace_test

import (
	"testing"

	"github.com/katalvlaran/numopt/trace"
	"github.com/katalvlaran/numopt/vector"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecorder collects records in order and resets.
func TestRecorder(t *testing.T) {
	var rec trace.Recorder
	_, ok := rec.Last()
	require.False(t, ok)

	rec.Emit(trace.Record{Iteration: 0, Event: trace.EventStep})
	rec.Emit(trace.Record{Iteration: 1, Event: trace.EventDone, Cause: "converged"})

	all := rec.Records()
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].Iteration)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "converged", last.Cause)

	rec.Reset()
	assert.Empty(t, rec.Records())
}

// TestOrNop substitutes Nop for nil.
func TestOrNop(t *testing.T) {
	assert.Equal(t, trace.Nop, trace.OrNop(nil))
	var rec trace.Recorder
	assert.Same(t, &rec, trace.OrNop(&rec))
}

// TestSwitchMuteScopes verifies nested mutes and idempotent unmute.
func TestSwitchMuteScopes(t *testing.T) {
	var rec trace.Recorder
	sw := trace.NewSwitch(&rec)

	sw.Emit(trace.Record{Iteration: 1})
	outer := sw.Mute()
	inner := sw.Mute()
	sw.Emit(trace.Record{Iteration: 2})
	inner()
	inner() // second call is a no-op
	assert.True(t, sw.Muted(), "outer mute still active")
	sw.Emit(trace.Record{Iteration: 3})
	outer()
	sw.Emit(trace.Record{Iteration: 4})

	got := rec.Records()
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Iteration)
	assert.Equal(t, 4, got[1].Iteration)
}

// TestSinkFunc adapts a closure.
func TestSinkFunc(t *testing.T) {
	n := 0
	s := trace.SinkFunc(func(trace.Record) { n++ })
	s.Emit(trace.Record{})
	s.Emit(trace.Record{})
	assert.Equal(t, 2, n)
}

// TestLogrusSink checks fields and the Info floor for termination records.
func TestLogrusSink(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	sink := trace.NewLogrusSink(logger, logrus.DebugLevel)

	sink.Emit(trace.Record{Routine: "maximize", Iteration: 3, Position: vector.New(1, 2), Event: trace.EventStep})
	assert.Empty(t, hook.AllEntries(), "debug entry filtered at info level")

	sink.Emit(trace.Record{
		Routine:   "maximize",
		Iteration: 4,
		Position:  vector.New(1, 2),
		Step:      0.5,
		Norm:      1e-6,
		Value:     -0.25,
		Event:     trace.EventDone,
		Cause:     "converged",
	})
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "maximize", entry.Message)
	assert.Equal(t, "(1, 2)", entry.Data["position"])
	assert.Equal(t, "converged", entry.Data["cause"])
	assert.Equal(t, 4, entry.Data["iteration"])
	assert.Equal(t, -0.25, entry.Data["value"])

	sink.Emit(trace.Record{Routine: "newton", Event: trace.EventDone, Cause: "max-steps"})
	_, hasValue := hook.LastEntry().Data["value"]
	assert.False(t, hasValue, "newton records carry no objective value")
}
