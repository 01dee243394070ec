package component

import "github.com/milk9111/trazo/input"

// Input holds the events polled this frame for entities that react to
// pointer and keyboard input.
type Input struct {
	Events []input.Event
}

var InputComponent = NewComponent[Input]()
