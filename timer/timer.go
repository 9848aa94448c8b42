// Package timer provides a simple seconds based stopwatch for frame timing.
package timer

import "time"

// Timer measures elapsed time in seconds since creation or the last Reset.
type Timer struct {
	start time.Time
}

// New starts a timer.
func New() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed is the number of seconds since the timer started or was last reset.
func (t *Timer) Elapsed() float64 {
	return time.Since(t.start).Seconds()
}

// Reset makes the next Elapsed measure from now.
func (t *Timer) Reset() {
	t.start = time.Now()
}
