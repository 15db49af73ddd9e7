// SPDX-License-Identifier: MIT

package trace

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/numopt/vector"
)

// Event names what happened in the iteration a Record describes.
type Event string

const (
	// EventStep: an ordinary iteration (position/gradient snapshot before moving).
	EventStep Event = "step"
	// EventDoubled: the doubled step improved further and was committed.
	EventDoubled Event = "doubled"
	// EventKept: the doubled step did not help; the single step was committed.
	EventKept Event = "kept"
	// EventHalved: the step overshot and was halved.
	EventHalved Event = "halved"
	// EventNewton: a Newton update was applied.
	EventNewton Event = "newton"
	// EventDone: the routine terminated; Record.Cause says why.
	EventDone Event = "done"
)

// Record is one structured diagnostic entry.
type Record struct {
	Routine   string        // "maximize", "minimize", "newton"
	Iteration int           // loop counter at emission time
	Position  vector.Vector // current iterate
	Step      float64       // step size λ (search) or ‖Δx‖ (newton)
	Norm      float64       // ‖∇f‖ (search) or ‖F(x)‖ (newton)
	Value     float64       // objective value f(x); 0 for newton
	Event     Event
	Cause     string // termination cause, set only on EventDone
}

// Sink receives trace records.
type Sink interface {
	Emit(Record)
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc func(Record)

// Emit calls f(r).
func (f SinkFunc) Emit(r Record) { f(r) }

type nopSink struct{}

func (nopSink) Emit(Record) {}

// Nop discards every record. It is the default sink of every solver.
var Nop Sink = nopSink{}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop
	}

	return s
}

// Recorder stores records in memory. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Emit appends r.
func (r *Recorder) Emit(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

// Records returns a copy of everything recorded so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)

	return out
}

// Last returns the most recent record and false when nothing was recorded.
func (r *Recorder) Last() (Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		return Record{}, false
	}

	return r.records[len(r.records)-1], true
}

// Reset drops all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// Switch forwards to an inner sink unless muted. Mutes nest: the sink is
// silent until every Mute has been undone.
type Switch struct {
	inner Sink
	muted atomic.Int32
}

// NewSwitch wraps s (nil means Nop).
func NewSwitch(s Sink) *Switch {
	return &Switch{inner: OrNop(s)}
}

// Emit forwards r unless the switch is muted.
func (s *Switch) Emit(r Record) {
	if s.muted.Load() > 0 {
		return
	}
	s.inner.Emit(r)
}

// Mute silences the switch until the returned function is called.
// Calling the returned function more than once has no further effect.
//
//	unmute := sw.Mute()
//	defer unmute()
func (s *Switch) Mute() (unmute func()) {
	s.muted.Add(1)
	var once sync.Once

	return func() {
		once.Do(func() { s.muted.Add(-1) })
	}
}

// Muted reports whether records are currently dropped.
func (s *Switch) Muted() bool { return s.muted.Load() > 0 }
