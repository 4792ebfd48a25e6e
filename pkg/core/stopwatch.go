package core

import (
	"log/slog"
	"time"
)

// Stopwatch measures a labelled span of work and reports its duration to a
// logger when stopped. A Stopwatch with a nil logger still measures.
type Stopwatch struct {
	logger *slog.Logger
	label  string
	start  time.Time
}

// StartStopwatch begins timing label.
func StartStopwatch(logger *slog.Logger, label string) *Stopwatch {
	return &Stopwatch{logger: logger, label: label, start: time.Now()}
}

// Stop returns the elapsed time and logs it at debug level.
func (s *Stopwatch) Stop() time.Duration {
	elapsed := time.Since(s.start)
	if s.logger != nil {
		s.logger.Debug("timer", "label", s.label, "elapsed", elapsed)
	}
	return elapsed
}

// Time starts a stopwatch and returns the function that stops it, for use as
// `defer core.Time(logger, "tick")()`.
func Time(logger *slog.Logger, label string) func() {
	sw := StartStopwatch(logger, label)
	return func() { sw.Stop() }
}

// Timed runs fn under a stopwatch and returns how long it took.
func Timed(logger *slog.Logger, label string, fn func()) time.Duration {
	sw := StartStopwatch(logger, label)
	fn()
	return sw.Stop()
}
