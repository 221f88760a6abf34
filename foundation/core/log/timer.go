// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on Stop.
//              The CLI uses it around batch conversions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Reduced to Stop/StopWithError

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the completion of the operation and returns its duration.
// Only the first call logs.
func (t *Timer) Stop() time.Duration {
	duration := t.Elapsed()
	if t.stopped {
		return duration
	}
	t.stopped = true

	fields := t.fields.Merge(Fields{"operation": t.operation})
	t.logger.log(t.level, t.operation+" completed", nil, duration, fields)
	return duration
}

// StopWithError logs a failed operation at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}

	duration := t.Elapsed()
	if t.stopped {
		return duration
	}
	t.stopped = true

	fields := t.fields.Merge(Fields{"operation": t.operation})
	t.logger.log(LevelError, t.operation+" failed", err, duration, fields)
	return duration
}

// IsRunning returns true until Stop or StopWithError is called
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
