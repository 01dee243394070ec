package system

import (
	"errors"
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/data"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/input"
	"github.com/milk9111/trazo/stroke"
)

var testPalette = []color.Color{
	color.RGBA{R: 65, G: 105, B: 225, A: 255},
	color.RGBA{R: 60, G: 179, B: 113, A: 255},
	color.RGBA{R: 255, G: 215, B: 0, A: 255},
	color.RGBA{R: 255, G: 99, B: 71, A: 255},
}

func handleAll(t *testing.T, w *ecs.World, state *DrawState, mode data.ColorAdvance, events ...input.Event) {
	t.Helper()
	for _, ev := range events {
		if err := HandleDrawEvent(w, state, testPalette, mode, ev); err != nil {
			t.Fatalf("handle %s: %v", ev.Kind, err)
		}
	}
}

func drawingOf(t *testing.T, w *ecs.World, e ecs.Entity) *stroke.Drawing {
	t.Helper()
	d, ok := ecs.Get(w, e, component.DrawingComponent.Kind())
	if !ok {
		t.Fatalf("entity %s has no drawing", e)
	}
	return d
}

func TestPressDragRecordsStroke(t *testing.T) {
	w := ecs.NewWorld()
	state := &DrawState{}
	origin := cp.Vector{}

	handleAll(t, w, state, data.ColorAdvanceStroke, input.PressEvent(origin, input.Primary))
	if !state.Recording() {
		t.Fatalf("press should start recording")
	}
	d := drawingOf(t, w, state.Current)
	if d.Len() != 1 || d.Color() != testPalette[0] {
		t.Fatalf("unexpected new stroke: %d points, color %v", d.Len(), d.Color())
	}

	handleAll(t, w, state, data.ColorAdvanceStroke, input.DragEvent(origin, cp.Vector{X: 5, Y: 5}, input.Primary))
	if d.Len() != 1 {
		t.Fatalf("drag below the minimum distance should be ignored")
	}
	if _, ok := d.Curve(); ok {
		t.Fatalf("single point stroke must not have a curve")
	}

	handleAll(t, w, state, data.ColorAdvanceStroke, input.DragEvent(origin, cp.Vector{X: 20, Y: 0}, input.Primary))
	pts := d.Points()
	if len(pts) != 2 || pts[0] != origin || pts[1] != (cp.Vector{X: 20, Y: 0}) {
		t.Fatalf("unexpected points %v", pts)
	}
	if _, ok := d.Curve(); !ok {
		t.Fatalf("two point stroke should have a curve")
	}
}

func TestDragIsRelativeToPress(t *testing.T) {
	w := ecs.NewWorld()
	state := &DrawState{}
	start := cp.Vector{X: 100, Y: -50}

	handleAll(t, w, state, data.ColorAdvanceStroke,
		input.PressEvent(start, input.Primary),
		input.Event{Kind: input.Drag, Button: input.Primary, Distance: cp.Vector{X: 0, Y: 30}},
	)

	pts := drawingOf(t, w, state.Current).Points()
	if len(pts) != 2 || pts[1] != (cp.Vector{X: 100, Y: -20}) {
		t.Fatalf("expected the drag distance to be applied to the press position, got %v", pts)
	}
}

func TestNewPressStartsNewStroke(t *testing.T) {
	w := ecs.NewWorld()
	state := &DrawState{}

	handleAll(t, w, state, data.ColorAdvanceStroke, input.PressEvent(cp.Vector{}, input.Primary))
	first := state.Current
	handleAll(t, w, state, data.ColorAdvanceStroke,
		input.ReleaseEvent(cp.Vector{}, input.Primary),
		input.PressEvent(cp.Vector{X: 50}, input.Primary),
		input.DragEvent(cp.Vector{X: 50}, cp.Vector{X: 80}, input.Primary),
	)

	if state.Current == first {
		t.Fatalf("second press should create a new stroke")
	}
	if n := drawingOf(t, w, first).Len(); n != 1 {
		t.Fatalf("previous stroke should stay untouched, has %d points", n)
	}
	if n := drawingOf(t, w, state.Current).Len(); n != 2 {
		t.Fatalf("current stroke should have 2 points, has %d", n)
	}
}

func TestSecondaryPressClears(t *testing.T) {
	tests := []struct {
		name    string
		strokes int
	}{
		{name: "no strokes", strokes: 0},
		{name: "one stroke", strokes: 1},
		{name: "many strokes", strokes: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			state := &DrawState{}
			for i := range tt.strokes {
				handleAll(t, w, state, data.ColorAdvanceStroke, input.PressEvent(cp.Vector{X: float64(i) * 30}, input.Primary))
			}

			handleAll(t, w, state, data.ColorAdvanceStroke, input.PressEvent(cp.Vector{}, input.Secondary))

			if n := ecs.Count(w, component.DrawingComponent.Kind()); n != 0 {
				t.Fatalf("expected 0 drawings, got %d", n)
			}
			if state.Recording() {
				t.Fatalf("clear should stop recording")
			}
			cleared := w.Events().Peek(ecs.EventStrokesCleared)
			if len(cleared) != 1 || cleared[0].Data != tt.strokes {
				t.Fatalf("unexpected clear events %v", cleared)
			}

			// A drag after the clear has nothing to extend.
			handleAll(t, w, state, data.ColorAdvanceStroke, input.DragEvent(cp.Vector{}, cp.Vector{X: 40}, input.Primary))
			if n := ecs.Count(w, component.DrawingComponent.Kind()); n != 0 {
				t.Fatalf("drag after clear created drawings")
			}
		})
	}
}

func TestColorAdvance(t *testing.T) {
	tests := []struct {
		name   string
		mode   data.ColorAdvance
		events []input.Event
		want   []int
	}{
		{
			name: "every stroke",
			mode: data.ColorAdvanceStroke,
			events: []input.Event{
				input.PressEvent(cp.Vector{}, input.Primary),
				input.KeyEvent(input.ActionNextColor),
				input.PressEvent(cp.Vector{}, input.Primary),
				input.PressEvent(cp.Vector{}, input.Primary),
				input.PressEvent(cp.Vector{}, input.Primary),
				input.PressEvent(cp.Vector{}, input.Primary),
			},
			want: []int{0, 1, 2, 3, 0},
		},
		{
			name: "key only",
			mode: data.ColorAdvanceKey,
			events: []input.Event{
				input.PressEvent(cp.Vector{}, input.Primary),
				input.PressEvent(cp.Vector{}, input.Primary),
				input.KeyEvent(input.ActionNextColor),
				input.PressEvent(cp.Vector{}, input.Primary),
				input.KeyEvent(input.ActionNextColor),
				input.KeyEvent(input.ActionNextColor),
				input.KeyEvent(input.ActionNextColor),
				input.PressEvent(cp.Vector{}, input.Primary),
			},
			want: []int{0, 0, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			state := &DrawState{}
			var got []int
			for _, ev := range tt.events {
				handleAll(t, w, state, tt.mode, ev)
				if ev.Kind != input.Press {
					continue
				}
				clr := drawingOf(t, w, state.Current).Color()
				for i, p := range testPalette {
					if p == clr {
						got = append(got, i)
					}
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected colors %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("expected colors %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestExtendMissingStroke(t *testing.T) {
	w := ecs.NewWorld()
	e := BeginStroke(w, cp.Vector{}, testPalette[0])
	ecs.DestroyEntity(w, e)

	if _, err := ExtendStroke(w, e, cp.Vector{X: 50}); !errors.Is(err, ErrNoStroke) {
		t.Fatalf("expected ErrNoStroke, got %v", err)
	}

	state := &DrawState{Current: e}
	err := HandleDrawEvent(w, state, testPalette, data.ColorAdvanceStroke, input.DragEvent(cp.Vector{}, cp.Vector{X: 50}, input.Primary))
	if !errors.Is(err, ErrNoStroke) {
		t.Fatalf("expected ErrNoStroke from the handler, got %v", err)
	}
}

func TestDrawingSystemReadsInput(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := SpawnCanvas(w, color.White, -100); err != nil {
		t.Fatal(err)
	}

	q := input.NewQueue()
	inputs := NewInputSystem(q)
	drawing := NewDrawingSystem(testPalette, data.ColorAdvanceStroke, 2)
	var changes []int
	drawing.OnColorChange = func(selected int) { changes = append(changes, selected) }

	q.Push(
		input.PressEvent(cp.Vector{}, input.Primary),
		input.DragEvent(cp.Vector{}, cp.Vector{X: 12}, input.Primary),
		input.DragEvent(cp.Vector{}, cp.Vector{X: 30}, input.Primary),
	)
	inputs.Update(w)
	drawing.Update(w)

	d := drawingOf(t, w, drawing.State.Current)
	if d.Len() != 3 || d.Color() != testPalette[2] {
		t.Fatalf("unexpected stroke: %d points, color %v", d.Len(), d.Color())
	}
	if len(changes) != 1 || changes[0] != 3 {
		t.Fatalf("unexpected color changes %v", changes)
	}

	// Events from the previous frame are not replayed.
	inputs.Update(w)
	drawing.Update(w)
	if n := ecs.Count(w, component.DrawingComponent.Kind()); n != 1 {
		t.Fatalf("expected 1 drawing, got %d", n)
	}
}

func TestDrawingSystemPanicsOnLostStroke(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := SpawnCanvas(w, color.White, -100); err != nil {
		t.Fatal(err)
	}
	q := input.NewQueue()
	inputs := NewInputSystem(q)
	drawing := NewDrawingSystem(testPalette, data.ColorAdvanceStroke, 0)

	q.Push(input.PressEvent(cp.Vector{}, input.Primary))
	inputs.Update(w)
	drawing.Update(w)
	ecs.DestroyEntity(w, drawing.State.Current)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when the recorded stroke disappears")
		}
	}()
	q.Push(input.DragEvent(cp.Vector{}, cp.Vector{X: 40}, input.Primary))
	inputs.Update(w)
	drawing.Update(w)
}
