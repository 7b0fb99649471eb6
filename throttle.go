package scrollreel

import "time"

// Throttle admits at most one call per Limit. Times are supplied by the
// caller so behavior is deterministic under test.
type Throttle struct {
	Limit time.Duration
	last  time.Time
	used  bool
}

// Allow reports whether a call at now may proceed and, if so, opens a new
// window.
func (t *Throttle) Allow(now time.Time) bool {
	if t.used && now.Sub(t.last) < t.Limit {
		return false
	}
	t.last = now
	t.used = true
	return true
}

// Reset forgets the current window.
func (t *Throttle) Reset() { t.used = false }

// Debouncer fires once after Wait has elapsed since the last Trigger
// (trailing edge).
type Debouncer struct {
	Wait     time.Duration
	deadline time.Time
	pending  bool
}

// Trigger (re)starts the wait.
func (d *Debouncer) Trigger(now time.Time) {
	d.deadline = now.Add(d.Wait)
	d.pending = true
}

// Ready reports true exactly once per burst, when the wait has elapsed.
func (d *Debouncer) Ready(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}

// Pending reports whether a trigger is waiting to fire.
func (d *Debouncer) Pending() bool { return d.pending }
