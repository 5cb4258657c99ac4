package payloads

import (
	"log/slog"
	"sync/atomic"
)

// SampledLogger forwards one message out of every N to its logger.
// The counter belongs to the value, so two loggers never share state.
type SampledLogger struct {
	every  uint64
	seen   atomic.Uint64
	logger *slog.Logger
}

// NewSampledLogger emits every n-th message. n < 1 is treated as 1.
func NewSampledLogger(logger *slog.Logger, n uint64) *SampledLogger {
	return &SampledLogger{
		every:  max(n, 1),
		logger: logger,
	}
}

// Log counts the message and reports whether it was emitted.
func (l *SampledLogger) Log(msg string) bool {
	seq := l.seen.Add(1)
	if seq%l.every != 0 {
		return false
	}
	l.logger.Info(msg, "seq", seq)
	return true
}

// Seen returns the number of messages counted so far.
func (l *SampledLogger) Seen() uint64 {
	return l.seen.Load()
}
