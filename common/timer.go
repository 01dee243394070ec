package common

import "time"

// Timer is a one-shot countdown advanced manually once per tick.
type Timer struct {
	Duration float64
	Elapsed  float64

	finished     bool
	justFinished bool
}

// NewTimer returns a timer that finishes after secs seconds.
func NewTimer(secs float64) Timer {
	return Timer{Duration: secs}
}

// TimerFromDuration is NewTimer for a time.Duration.
func TimerFromDuration(d time.Duration) Timer {
	return NewTimer(d.Seconds())
}

// Tick advances the timer by dt seconds. JustFinished reports true only for
// the tick that crossed the duration.
func (t *Timer) Tick(dt float64) *Timer {
	t.justFinished = false
	if t.finished {
		return t
	}
	if dt > 0 {
		t.Elapsed += dt
	}
	if t.Elapsed >= t.Duration {
		t.Elapsed = t.Duration
		t.finished = true
		t.justFinished = true
	}
	return t
}

func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Remaining returns the seconds left before the timer finishes.
func (t *Timer) Remaining() float64 {
	if t.finished {
		return 0
	}
	return t.Duration - t.Elapsed
}

// Fraction returns progress through the timer in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return Clamp(InverseLerp(0, t.Duration, t.Elapsed), 0, 1)
}
