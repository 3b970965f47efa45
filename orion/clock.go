package orion

import "time"

// Clock provides monotonic timestamps to the runner.
type Clock interface {
	Now() time.Time
}

// Elapsed returns the time passed on clock since t. The result is never negative.
func Elapsed(clock Clock, t time.Time) time.Duration {
	return elapsedSince(clock.Now(), t)
}

func elapsedSince(now, t time.Time) time.Duration {
	return max(0, now.Sub(t))
}

// SystemClock reads the system time. The values returned by time.Now carry a
// monotonic clock reading, so differences are not affected by changes
// to the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when it is advanced explicitly.
// Use it to drive a Context deterministically, e.g. in a headless simulation.
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.current = c.current.Add(d)
	}
}
