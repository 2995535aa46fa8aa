package physics

// Clock is the simulation time source shared by every Timer of one world.
// It only advances when the frame loop ticks, so paused games freeze timers.
type Clock struct {
	now float64 // Seconds since the world started
}

// Now returns the simulation time in seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// Advance moves simulation time forward by seconds.
func (c *Clock) Advance(seconds float64) {
	c.now += seconds
}

// Timer is a countdown measured against a Clock.
// The zero value is unset; use NewTimer to bind it to a clock.
type Timer struct {
	clock  *Clock
	end    float64 // Clock time at which the timer expires
	length float64 // Duration passed to the last Set
	set    bool
}

// NewTimer returns an unset timer reading from clock.
func NewTimer(clock *Clock) Timer {
	return Timer{clock: clock}
}

// Set starts the countdown for the given number of seconds.
func (t *Timer) Set(seconds float64) {
	t.end = t.clock.Now() + seconds
	t.length = seconds
	t.set = true
}

// Unset stops the timer.
func (t *Timer) Unset() {
	t.set = false
}

// IsSet reports whether Set has been called since the last Unset.
func (t *Timer) IsSet() bool {
	return t.set
}

// Active reports whether the timer is set and has not yet expired.
func (t *Timer) Active() bool {
	return t.set && t.clock.Now() < t.end
}

// Elapsed reports whether the timer is set and has expired.
func (t *Timer) Elapsed() bool {
	return t.set && t.clock.Now() >= t.end
}

// Percent returns the elapsed fraction of the countdown in [0, 1].
// Unset timers report 0.
func (t *Timer) Percent() float64 {
	if !t.set {
		return 0
	}
	if t.length <= 0 {
		return 1
	}
	return Clamp(1-(t.end-t.clock.Now())/t.length, 0, 1)
}
