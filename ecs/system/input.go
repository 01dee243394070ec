package system

import (
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/input"
)

// InputSystem polls a Source once per frame and hands the events to every
// entity with an Input component.
type InputSystem struct {
	source input.Source
}

func NewInputSystem(source input.Source) *InputSystem {
	return &InputSystem{source: source}
}

// SetSource swaps the polled source, e.g. when a script finishes.
func (i *InputSystem) SetSource(source input.Source) {
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var events []input.Event
	if i.source != nil {
		events = i.source.Poll()
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.Events = append(in.Events[:0], events...)
	})
}
