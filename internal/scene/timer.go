package scene

// Timer counts simulated seconds up to a fixed duration.
type Timer struct {
	Duration float64

	elapsed  float64
	running  bool
	finished bool
}

// NewTimer creates a stopped timer.
func NewTimer(duration float64) *Timer {
	return &Timer{Duration: duration}
}

// Start restarts the timer from zero.
func (t *Timer) Start() {
	t.elapsed = 0
	t.running = true
	t.finished = false
}

// Update advances a running timer by dt.
func (t *Timer) Update(dt float64) {
	if !t.running {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.Duration {
		t.elapsed = t.Duration
		t.running = false
		t.finished = true
	}
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

// IsFinished reports whether the timer reached its duration since the last
// Start or Reset.
func (t *Timer) IsFinished() bool { return t.finished }

// Remaining returns the seconds left, or zero when stopped.
func (t *Timer) Remaining() float64 {
	if !t.running {
		return 0
	}
	return t.Duration - t.elapsed
}

// Reset stops the timer and clears its state.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.running = false
	t.finished = false
}
