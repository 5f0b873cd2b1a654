package object

import "time"

// Timer counts elapsed simulation time against a duration.
// It is advanced explicitly with Update so that game time follows tick deltas.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

// NewTimer returns a timer that becomes ready after d.
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// Update adds delta to the elapsed time. Elapsed time saturates at the duration.
func (t *Timer) Update(delta time.Duration) {
	t.elapsed = min(t.elapsed+delta, t.duration)
}

// Ready reports whether the full duration has elapsed.
func (t *Timer) Ready() bool {
	return t.elapsed >= t.duration
}

// Reset starts the timer over.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// SetDuration changes the duration and starts the timer over.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
	t.elapsed = 0
}

// Cap lowers the duration to d if it is longer, keeping the elapsed time.
func (t *Timer) Cap(d time.Duration) {
	t.duration = min(t.duration, d)
}

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left until the timer is ready.
func (t *Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}
