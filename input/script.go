package input

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

// Script replays pointer input produced by a tengo script. The script runs
// once when loaded; every call to press, drag_to, drag, release or key queues
// an event and wait(n) ends the current frame and skips n-1 more.
//
//	math := import("math")
//	press(0, 0)
//	for i := 1; i <= 20; i++ {
//		drag_to(i * 12, math.sin(i) * 40)
//		wait(1)
//	}
//	release()
type Script struct {
	frames [][]Event
	next   int
}

type scriptBuilder struct {
	frames  [][]Event
	current []Event
	down    bool
	button  Button
	start   cp.Vector
	last    cp.Vector
}

// NewScript compiles and runs src, recording the events it emits.
func NewScript(src []byte) (*Script, error) {
	b := &scriptBuilder{}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for name, fn := range b.functions() {
		if err := script.Add(name, fn); err != nil {
			return nil, fmt.Errorf("input: script add %s: %w", name, err)
		}
	}

	if _, err := script.Run(); err != nil {
		return nil, fmt.Errorf("input: run script: %w", err)
	}
	b.endFrame()
	return &Script{frames: b.frames}, nil
}

// Poll returns the next recorded frame, then nothing once the script is
// exhausted.
func (s *Script) Poll() []Event {
	if s == nil || s.next >= len(s.frames) {
		return nil
	}
	out := s.frames[s.next]
	s.next++
	return out
}

// Done reports whether every recorded frame was polled.
func (s *Script) Done() bool {
	return s == nil || s.next >= len(s.frames)
}

// Frames returns the number of recorded frames.
func (s *Script) Frames() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

func (b *scriptBuilder) functions() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"press": {Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
			pos, err := vectorArgs("press", args)
			if err != nil {
				return nil, err
			}
			button := Primary
			if len(args) > 2 {
				button = ParseButton(strings.ToLower(objectAsString(args[2])))
			}
			if b.down {
				b.emit(ReleaseEvent(b.last, b.button))
			}
			b.down = true
			b.button = button
			b.start = pos
			b.last = pos
			b.emit(PressEvent(pos, button))
			return tengo.UndefinedValue, nil
		}},
		"drag_to": {Name: "drag_to", Value: func(args ...tengo.Object) (tengo.Object, error) {
			pos, err := vectorArgs("drag_to", args)
			if err != nil {
				return nil, err
			}
			return b.dragTo(pos)
		}},
		"drag": {Name: "drag", Value: func(args ...tengo.Object) (tengo.Object, error) {
			dist, err := vectorArgs("drag", args)
			if err != nil {
				return nil, err
			}
			return b.dragTo(b.start.Add(dist))
		}},
		"release": {Name: "release", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if b.down {
				b.down = false
				b.emit(ReleaseEvent(b.last, b.button))
			}
			return tengo.UndefinedValue, nil
		}},
		"key": {Name: "key", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			name := strings.TrimSpace(objectAsString(args[0]))
			if name == "" {
				return tengo.FalseValue, nil
			}
			b.emit(KeyEvent(Action(name)))
			return tengo.TrueValue, nil
		}},
		"wait": {Name: "wait", Value: func(args ...tengo.Object) (tengo.Object, error) {
			n := 1
			if len(args) > 0 {
				v, ok := tengo.ToInt(args[0])
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: "frames", Expected: "int", Found: args[0].TypeName()}
				}
				n = v
			}
			b.frames = append(b.frames, b.current)
			b.current = nil
			for i := 1; i < n; i++ {
				b.frames = append(b.frames, nil)
			}
			return tengo.UndefinedValue, nil
		}},
	}
}

func (b *scriptBuilder) dragTo(pos cp.Vector) (tengo.Object, error) {
	if !b.down {
		return tengo.FalseValue, nil
	}
	b.last = pos
	b.emit(DragEvent(b.start, pos, b.button))
	return tengo.TrueValue, nil
}

func (b *scriptBuilder) emit(evt Event) {
	b.current = append(b.current, evt)
}

func (b *scriptBuilder) endFrame() {
	if len(b.current) == 0 {
		return
	}
	b.frames = append(b.frames, b.current)
	b.current = nil
}

func vectorArgs(name string, args []tengo.Object) (cp.Vector, error) {
	if len(args) < 2 {
		return cp.Vector{}, tengo.ErrWrongNumArguments
	}
	x, ok := tengo.ToFloat64(args[0])
	if !ok {
		return cp.Vector{}, tengo.ErrInvalidArgumentType{Name: name + ".x", Expected: "float", Found: args[0].TypeName()}
	}
	y, ok := tengo.ToFloat64(args[1])
	if !ok {
		return cp.Vector{}, tengo.ErrInvalidArgumentType{Name: name + ".y", Expected: "float", Found: args[1].TypeName()}
	}
	return cp.Vector{X: x, Y: y}, nil
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return obj.String()
}
