package input

import "github.com/jakecoffman/cp"

type Kind int

const (
	Press Kind = iota
	Drag
	Release
	Key
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Drag:
		return "drag"
	case Release:
		return "release"
	case Key:
		return "key"
	}
	return "unknown"
}

type Button int

const (
	Primary Button = iota
	Secondary
	Other
)

// ParseButton maps a lowercase button name to a Button. Unknown names are
// Other.
func ParseButton(name string) Button {
	switch name {
	case "", "primary", "left":
		return Primary
	case "secondary", "right":
		return Secondary
	}
	return Other
}

// Action is a keyboard command that is not tied to a pointer.
type Action string

const (
	ActionNone      Action = ""
	ActionNextColor Action = "next_color"
	ActionClear     Action = "clear"
	ActionCopy      Action = "copy"
	ActionExportPDF Action = "export_pdf"
	ActionBack      Action = "back"
)

// Event is a single discrete input occurrence. Positions are in world space.
type Event struct {
	Kind   Kind
	Button Button
	// Pos is the pointer position for Press, Drag and Release.
	Pos cp.Vector
	// Distance is the offset from the press position, set on Drag.
	Distance cp.Vector
	Action   Action
}

func PressEvent(pos cp.Vector, button Button) Event {
	return Event{Kind: Press, Button: button, Pos: pos}
}

func DragEvent(start, pos cp.Vector, button Button) Event {
	return Event{Kind: Drag, Button: button, Pos: pos, Distance: pos.Sub(start)}
}

func ReleaseEvent(pos cp.Vector, button Button) Event {
	return Event{Kind: Release, Button: button, Pos: pos}
}

func KeyEvent(action Action) Event {
	return Event{Kind: Key, Action: action}
}
