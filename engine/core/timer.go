package core

import "time"

// Timer is a repeating countdown advanced by its owner once per tick.
// Advance reports at most one firing per call, so a long frame never
// produces a burst of catch-up callbacks.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
	fires    uint64
}

// NewTimer creates a stopped timer with the given interval
func NewTimer(interval time.Duration) Timer {
	return Timer{interval: interval}
}

// Start resumes the countdown. Starting a running timer is a no-op.
func (t *Timer) Start() { t.running = true }

// Stop pauses the countdown and keeps the elapsed time.
func (t *Timer) Stop() { t.running = false }

// Reset clears the elapsed time without touching the running flag.
func (t *Timer) Reset() { t.elapsed = 0 }

// Running reports whether the timer advances
func (t *Timer) Running() bool { return t.running }

// Fires returns how many times the timer has fired
func (t *Timer) Fires() uint64 { return t.fires }

// Interval returns the period
func (t *Timer) Interval() time.Duration { return t.interval }

// SetInterval changes the period. A non-positive interval stops the timer.
func (t *Timer) SetInterval(d time.Duration) {
	t.interval = d
	if d <= 0 {
		t.running = false
	}
}

// Advance adds dt to the elapsed time and reports whether the timer fired.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.running || t.interval <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.interval {
		return false
	}
	t.elapsed %= t.interval
	t.fires++
	return true
}
