package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// Projector converts a screen pixel position to world space.
type Projector func(sx, sy float64) cp.Vector

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionNextColor},
	{ebiten.KeyBackspace, ActionClear},
	{ebiten.KeyC, ActionCopy},
	{ebiten.KeyP, ActionExportPDF},
	{ebiten.KeyEscape, ActionBack},
}

// Ebiten polls the mouse and keyboard through ebiten.
type Ebiten struct {
	project Projector
	tracker *Tracker
}

func NewEbiten(project Projector) *Ebiten {
	if project == nil {
		project = func(sx, sy float64) cp.Vector { return cp.Vector{X: sx, Y: sy} }
	}
	return &Ebiten{project: project, tracker: NewTracker()}
}

// SetDeadZone changes the drag dead zone in world units.
func (e *Ebiten) SetDeadZone(d float64) {
	e.tracker.DeadZone = d
}

func (e *Ebiten) Poll() []Event {
	var out []Event

	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			out = append(out, KeyEvent(ka.action))
		}
	}

	mx, my := ebiten.CursorPosition()
	pos := e.project(float64(mx), float64(my))

	button, pressed := e.pressedButton()
	if !pressed {
		if tx, ty, ok := firstTouch(); ok {
			pos = e.project(float64(tx), float64(ty))
			button, pressed = Primary, true
		}
	}

	return append(out, e.tracker.Step(pos, pressed, button)...)
}

func (e *Ebiten) pressedButton() (Button, bool) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return Primary, true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return Secondary, true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return Other, true
	}
	return Primary, false
}

func firstTouch() (int, int, bool) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 0 {
		return 0, 0, false
	}
	x, y := ebiten.TouchPosition(ids[0])
	return x, y, true
}
