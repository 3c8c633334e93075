// internal/sched/clock.go

package sched

// Clock is the simulated CPU clock. It only moves forward.
type Clock struct {
	now int
}

// Now returns the current simulated tick.
func (c *Clock) Now() int { return c.now }

// AdvanceTo jumps the clock to t. Earlier times are ignored.
func (c *Clock) AdvanceTo(t int) {
	if t > c.now {
		c.now = t
	}
}

// Run occupies the CPU for d ticks and returns the interval it covered.
func (c *Clock) Run(d int) (start, end int) {
	start = c.now
	c.now += d
	return start, c.now
}
