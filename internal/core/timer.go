package core

// FrameCycle is the number of host frames in one clock cycle.
const FrameCycle = 60

// ShouldStep reports whether a generation is due on the given frame for a rate
// expressed in generations per FrameCycle frames.
func ShouldStep(frame, rate int) bool {
	if rate <= 0 {
		return false
	}
	period := FrameCycle / rate
	if period <= 0 {
		period = 1
	}
	return frame%period == 0
}

// Clock counts host frames modulo FrameCycle and gates simulation steps.
type Clock struct {
	frame int
	rate  int
}

// NewClock constructs a Clock targeting rate generations per second.
func NewClock(rate int) *Clock {
	c := &Clock{}
	c.SetRate(rate)
	return c
}

// SetRate changes the step rate. Rates that do not divide FrameCycle step on
// the floor of the ideal period.
func (c *Clock) SetRate(rate int) {
	if rate <= 0 {
		rate = 1
	}
	if rate > FrameCycle {
		rate = FrameCycle
	}
	c.rate = rate
}

// Rate returns the configured generations per second.
func (c *Clock) Rate() int { return c.rate }

// Frame returns the current frame counter.
func (c *Clock) Frame() int { return c.frame }

// Tick advances the counter by one frame and reports whether a step is due.
func (c *Clock) Tick() bool {
	c.frame++
	due := ShouldStep(c.frame, c.rate)
	if c.frame >= FrameCycle {
		c.frame = 0
	}
	return due
}

// Reset returns the counter to zero.
func (c *Clock) Reset() { c.frame = 0 }
