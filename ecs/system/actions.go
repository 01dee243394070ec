package system

import (
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/input"
)

// ActionSystem runs a handler for every key action that is not about drawing
// itself.
type ActionSystem struct {
	handlers map[input.Action]func(w *ecs.World)
}

func NewActionSystem() *ActionSystem {
	return &ActionSystem{handlers: map[input.Action]func(w *ecs.World){}}
}

// Handle registers fn for action, replacing any previous handler.
func (s *ActionSystem) Handle(action input.Action, fn func(w *ecs.World)) {
	if fn == nil {
		delete(s.handlers, action)
		return
	}
	s.handlers[action] = fn
}

func (s *ActionSystem) Update(w *ecs.World) {
	if w == nil || len(s.handlers) == 0 {
		return
	}

	var actions []input.Action
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		for _, ev := range in.Events {
			if ev.Kind == input.Key && ev.Action != input.ActionNone {
				actions = append(actions, ev.Action)
			}
		}
	})

	for _, action := range actions {
		if fn, ok := s.handlers[action]; ok {
			fn(w)
		}
	}
}
