package session

import "time"

// Clock measures wall-clock time between frames
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock reading now, or time.Now when nil
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns the seconds elapsed since the previous tick. The first tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}
