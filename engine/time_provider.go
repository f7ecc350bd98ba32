package engine

import "time"

// Clock is the frame loop's millisecond time source
type Clock interface {
	// Millis returns a non-decreasing millisecond counter
	Millis() int64
	// Sleep blocks for at least ms milliseconds
	Sleep(ms int64)
}

// MonotonicClock reads the process monotonic clock
// Used by backends that carry no clock of their own
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock whose epoch is now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Millis returns milliseconds since the clock was created
func (c *MonotonicClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// Sleep blocks the calling goroutine
func (c *MonotonicClock) Sleep(ms int64) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
