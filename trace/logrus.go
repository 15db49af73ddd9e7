// SPDX-License-Identifier: MIT

package trace

import "github.com/sirupsen/logrus"

// LogrusSink writes every record as one structured logrus entry.
type LogrusSink struct {
	log   logrus.FieldLogger
	level logrus.Level
}

// NewLogrusSink returns a sink logging at level through log.
// Termination records are always logged at Info or above so they survive a
// Debug-level trace being filtered out.
func NewLogrusSink(log logrus.FieldLogger, level logrus.Level) *LogrusSink {
	return &LogrusSink{log: log, level: level}
}

// Emit logs r with one field per Record member.
func (s *LogrusSink) Emit(r Record) {
	fields := logrus.Fields{
		"routine":   r.Routine,
		"iteration": r.Iteration,
		"position":  r.Position.String(),
		"step":      r.Step,
		"norm":      r.Norm,
		"event":     string(r.Event),
	}
	if r.Routine != "newton" {
		fields["value"] = r.Value
	}
	level := s.level
	if r.Event == EventDone {
		fields["cause"] = r.Cause
		if level > logrus.InfoLevel {
			level = logrus.InfoLevel
		}
	}
	entry := s.log.WithFields(fields)
	switch level {
	case logrus.TraceLevel:
		entry.Trace(r.Routine)
	case logrus.DebugLevel:
		entry.Debug(r.Routine)
	case logrus.InfoLevel:
		entry.Info(r.Routine)
	case logrus.WarnLevel:
		entry.Warn(r.Routine)
	default:
		entry.Error(r.Routine)
	}
}
