package common

import (
	"testing"
	"time"
)

func TestTimerTick(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		ticks    []float64
		finishOn int // index of the tick expected to finish, -1 = never
	}{
		{"crosses_on_third", 1.0, []float64{0.4, 0.4, 0.3}, 2},
		{"exact_boundary", 0.5, []float64{0.25, 0.25, 0.25}, 1},
		{"zero_duration", 0, []float64{0.016}, 0},
		{"never", 2.0, []float64{0.5, 0.5}, -1},
		{"negative_delta_ignored", 0.1, []float64{-1, 0.1}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			timer := NewTimer(c.duration)
			fired := -1
			for i, dt := range c.ticks {
				if timer.Tick(dt).JustFinished() {
					if fired >= 0 {
						t.Fatalf("timer finished twice (ticks %d and %d)", fired, i)
					}
					fired = i
				}
			}
			if fired != c.finishOn {
				t.Fatalf("expected finish on tick %d, got %d", c.finishOn, fired)
			}
		})
	}
}

func TestTimerFraction(t *testing.T) {
	timer := TimerFromDuration(2 * time.Second)
	timer.Tick(0.5)
	if f := timer.Fraction(); f != 0.25 {
		t.Fatalf("expected 0.25, got %v", f)
	}
	if r := timer.Remaining(); r != 1.5 {
		t.Fatalf("expected 1.5s remaining, got %v", r)
	}
	timer.Tick(5)
	if !timer.Finished() || timer.Fraction() != 1 || timer.Remaining() != 0 {
		t.Fatalf("expected finished timer, got %+v", timer)
	}
	if timer.Tick(1).JustFinished() {
		t.Fatalf("finished timer must not fire again")
	}
}
