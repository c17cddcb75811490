package input

import "time"

// Repeater turns a held direction into discrete navigation steps: one step on
// the first frame, then after InitialDelay one step every Interval.
type Repeater struct {
	InitialDelay time.Duration
	Interval     time.Duration

	held       bool
	firstPress time.Time
	lastRepeat time.Time
}

// NewRepeater creates a repeater with the given timing.
func NewRepeater(initialDelay, interval time.Duration) *Repeater {
	return &Repeater{InitialDelay: initialDelay, Interval: interval}
}

// Step reports whether a held input should trigger at time now.
func (r *Repeater) Step(active bool, now time.Time) bool {
	if !active {
		r.held = false
		return false
	}
	if !r.held {
		r.held = true
		r.firstPress = now
		r.lastRepeat = now
		return true
	}
	if now.Sub(r.firstPress) <= r.InitialDelay {
		return false
	}
	if now.Sub(r.lastRepeat) <= r.Interval {
		return false
	}
	r.lastRepeat = now
	return true
}

// Reset forgets the held state.
func (r *Repeater) Reset() {
	r.held = false
}

// Throttle lets an action through at most once per Delay.
type Throttle struct {
	Delay time.Duration
	last  time.Time
}

// Allow reports whether the action may fire at time now, and records it if so.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) <= t.Delay {
		return false
	}
	t.last = now
	return true
}
