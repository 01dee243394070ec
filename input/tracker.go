package input

import "github.com/jakecoffman/cp"

// DefaultDragDeadZone is how far the pointer must move from the press
// position before drag events start.
const DefaultDragDeadZone = 4.0

// Tracker turns sampled pointer state into press, drag and release events.
type Tracker struct {
	DeadZone float64

	down     bool
	dragging bool
	button   Button
	start    cp.Vector
	last     cp.Vector
}

func NewTracker() *Tracker {
	return &Tracker{DeadZone: DefaultDragDeadZone}
}

// Step consumes the pointer state of one frame. The button is captured at
// press time and reused until release.
func (t *Tracker) Step(pos cp.Vector, pressed bool, button Button) []Event {
	switch {
	case pressed && !t.down:
		t.down = true
		t.dragging = false
		t.button = button
		t.start = pos
		t.last = pos
		return []Event{PressEvent(pos, button)}

	case !pressed && t.down:
		t.down = false
		t.dragging = false
		return []Event{ReleaseEvent(pos, t.button)}

	case pressed && t.down:
		if pos == t.last {
			return nil
		}
		t.last = pos
		if !t.dragging && pos.Distance(t.start) > t.DeadZone {
			t.dragging = true
		}
		if t.dragging {
			return []Event{DragEvent(t.start, pos, t.button)}
		}
	}
	return nil
}

// Down reports whether a pointer interaction is in progress.
func (t *Tracker) Down() bool {
	return t.down
}
