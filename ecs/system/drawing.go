package system

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/data"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/input"
	"github.com/milk9111/trazo/stroke"
)

var ErrNoStroke = errors.New("drawing: stroke does not exist")

// DrawState is the state owned by the input handler while drawing. It is
// passed explicitly to HandleDrawEvent rather than kept globally.
type DrawState struct {
	// Current is the stroke being recorded, or the zero entity.
	Current ecs.Entity
	// LineStart is where the current press happened. Drag distances are
	// relative to it.
	LineStart     cp.Vector
	SelectedColor int
}

// Recording reports whether a stroke is being recorded.
func (s *DrawState) Recording() bool {
	return s.Current.Valid()
}

// NextColor moves the selection to the next palette entry.
func (s *DrawState) NextColor(paletteLen int) {
	if paletteLen <= 0 {
		s.SelectedColor = 0
		return
	}
	s.SelectedColor = (s.SelectedColor + 1) % paletteLen
}

func (s *DrawState) pick(palette []color.Color) color.Color {
	if len(palette) == 0 {
		return color.Black
	}
	if s.SelectedColor < 0 || s.SelectedColor >= len(palette) {
		s.SelectedColor = 0
	}
	return palette[s.SelectedColor]
}

// BeginStroke creates an entity carrying a new drawing that starts at start.
func BeginStroke(w *ecs.World, start cp.Vector, clr color.Color) ecs.Entity {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DrawingComponent.Kind(), stroke.New(start, clr)); err != nil {
		panic("drawing: add stroke: " + err.Error())
	}
	w.Events().Push(ecs.Event{Type: ecs.EventStrokeStarted, Data: e})
	return e
}

// ExtendStroke offers candidate to the drawing on e. It reports whether the
// point was kept.
func ExtendStroke(w *ecs.World, e ecs.Entity, candidate cp.Vector) (bool, error) {
	d, ok := ecs.Get(w, e, component.DrawingComponent.Kind())
	if !ok {
		return false, fmt.Errorf("drawing: extend %s: %w", e, ErrNoStroke)
	}
	return d.Extend(candidate), nil
}

// ClearStrokes destroys every drawing and returns how many there were.
func ClearStrokes(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.DrawingComponent.Kind(), func(e ecs.Entity, _ *stroke.Drawing) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	})
	w.Events().Push(ecs.Event{Type: ecs.EventStrokesCleared, Data: n})
	return n
}

// HandleDrawEvent applies one input event to the drawings in w.
//
// A primary press starts a stroke in the selected color, a primary drag
// extends it and a secondary press clears everything. In stroke mode the
// selection advances with every new stroke; in key mode only the next-color
// action advances it.
func HandleDrawEvent(w *ecs.World, state *DrawState, palette []color.Color, mode data.ColorAdvance, ev input.Event) error {
	switch ev.Kind {
	case input.Press:
		switch ev.Button {
		case input.Primary:
			state.Current = BeginStroke(w, ev.Pos, state.pick(palette))
			state.LineStart = ev.Pos
			if mode != data.ColorAdvanceKey {
				state.NextColor(len(palette))
			}
		case input.Secondary:
			ClearStrokes(w)
			state.Current = 0
		}
	case input.Drag:
		if ev.Button != input.Primary || !state.Recording() {
			return nil
		}
		if _, err := ExtendStroke(w, state.Current, state.LineStart.Add(ev.Distance)); err != nil {
			return err
		}
	case input.Key:
		switch ev.Action {
		case input.ActionNextColor:
			if mode == data.ColorAdvanceKey {
				state.NextColor(len(palette))
			}
		case input.ActionClear:
			ClearStrokes(w)
			state.Current = 0
		}
	}
	return nil
}

// DrawingSystem feeds polled input into HandleDrawEvent.
type DrawingSystem struct {
	State   DrawState
	Palette []color.Color
	Mode    data.ColorAdvance

	// OnColorChange is called with the new selection whenever it changes.
	OnColorChange func(selected int)
}

func NewDrawingSystem(palette []color.Color, mode data.ColorAdvance, selected int) *DrawingSystem {
	s := &DrawingSystem{Palette: palette, Mode: mode}
	s.State.SelectedColor = selected
	return s
}

func (s *DrawingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		for _, ev := range in.Events {
			before := s.State.SelectedColor
			if err := HandleDrawEvent(w, &s.State, s.Palette, s.Mode, ev); err != nil {
				panic(err)
			}
			if s.State.SelectedColor != before && s.OnColorChange != nil {
				s.OnColorChange(s.State.SelectedColor)
			}
		}
	})
}

// Reset forgets the current stroke, e.g. after the play state is left and
// its drawings are gone.
func (s *DrawingSystem) Reset() {
	s.State.Current = 0
	s.State.LineStart = cp.Vector{}
}
