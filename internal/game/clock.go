package game

import "time"

// Clock turns wall time into a whole number of fixed simulation ticks. It
// accumulates elapsed time and pays out one tick per full tick duration,
// keeping the remainder, so the simulation runs at a constant rate no
// matter how often or how unevenly the host loop calls in. It never does
// variable-step updates.
type Clock struct {
	tick    time.Duration
	acc     time.Duration
	last    time.Time
	started bool
}

// NewClock returns a clock paying out rate ticks per second.
func NewClock(rate int) *Clock {
	return &Clock{tick: time.Second / time.Duration(rate)}
}

// Ticks reports how many whole ticks elapsed between the previous call and
// now. The first call establishes the baseline and reports zero.
func (c *Clock) Ticks(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	c.acc += now.Sub(c.last)
	c.last = now

	n := 0
	for c.acc >= c.tick {
		c.acc -= c.tick
		n++
	}
	return n
}
