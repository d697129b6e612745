package component

import "time"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed time toward Duration. A repeating timer wraps when it
// reaches Duration; a once timer stops there.
//
// Finished reports at most one completion per Tick regardless of how many
// intervals the delta covered. Surplus intervals are dropped, not queued.
type Timer struct {
	Duration time.Duration
	Mode     TimerMode

	elapsed  time.Duration
	finished bool
	done     bool
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick consumes dt and returns the timer for chaining.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.finished = false
	if dt < 0 {
		dt = 0
	}
	if t.Mode == TimerOnce {
		if t.done {
			return t
		}
		t.elapsed += dt
		if t.elapsed >= t.Duration {
			t.elapsed = t.Duration
			t.finished = true
			t.done = true
		}
		return t
	}

	t.elapsed += dt
	if t.elapsed >= t.Duration {
		t.finished = true
		if t.Duration > 0 {
			t.elapsed %= t.Duration
		} else {
			t.elapsed = 0
		}
	}
	return t
}

// Finished reports whether the timer completed during the last Tick.
func (t *Timer) Finished() bool {
	return t.finished
}

// Done reports whether a once timer has run out.
func (t *Timer) Done() bool {
	return t.Mode == TimerOnce && t.done
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Remaining returns the time left in the current interval.
func (t *Timer) Remaining() time.Duration {
	if t.Duration <= t.elapsed {
		return 0
	}
	return t.Duration - t.elapsed
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.done = false
}

// SetDuration changes the interval. Elapsed time carries over, clamped to the
// new interval.
func (t *Timer) SetDuration(d time.Duration) {
	t.Duration = d
	if t.elapsed > d {
		t.elapsed = d
	}
}
