// SPDX-License-Identifier: MIT

// Package trace carries per-iteration diagnostics out of the iterative solvers.
//
// The solvers never print. Each loop turn they hand a Record to the Sink the
// caller injected (Nop by default). Sinks provided here:
//
//   - Nop        — discards everything.
//   - SinkFunc   — adapts a plain function.
//   - Recorder   — keeps records in memory (tests, summaries).
//   - Switch     — wraps another sink with a scoped Mute()/unmute pair.
//   - LogrusSink — one structured logrus entry per record.
//
// Muting or swapping a sink never changes what the solvers return.
package trace
