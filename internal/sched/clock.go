package sched

// Clock is a playback time source: seconds since track start, advancing
// monotonically while playing. It is an explicitly owned object handed to
// the scheduler, never a package-level singleton.
type Clock interface {
	Now() float64
}

// ManualClock is a hand-driven clock for tests and offline runs.
type ManualClock struct {
	t float64
}

func (c *ManualClock) Now() float64 { return c.t }

// Set moves the clock to t.
func (c *ManualClock) Set(t float64) { c.t = t }

// Advance moves the clock forward by dt.
func (c *ManualClock) Advance(dt float64) { c.t += dt }

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() float64

func (f ClockFunc) Now() float64 { return f() }
