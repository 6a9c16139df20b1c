package otp

import "time"

// Cooldown is the resend throttle: after each send the resend control stays
// refused for a fixed window, counted down visibly.
type Cooldown struct {
	window time.Duration
	until  time.Time
	now    func() time.Time
}

func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{window: window, now: time.Now}
}

// Start (re)arms the window from now.
func (c *Cooldown) Start() {
	c.until = c.now().Add(c.window)
}

// Active reports whether resend is currently refused.
func (c *Cooldown) Active() bool {
	return c.now().Before(c.until)
}

// Remaining is the time left before resend is allowed again, rounded up to
// whole seconds for display; zero once elapsed.
func (c *Cooldown) Remaining() time.Duration {
	left := c.until.Sub(c.now())
	if left <= 0 {
		return 0
	}
	if rem := left % time.Second; rem > 0 {
		left += time.Second - rem
	}
	return left
}
