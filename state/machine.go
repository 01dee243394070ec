// Package state drives transitions between game states.
//
// A transition requested with Set takes effect on the next Apply: exit hooks
// of the old state run, entities scoped to it are destroyed, then enter
// hooks of the new state run. Enter hooks may request another transition,
// which is applied in the same call.
package state

import (
	"log"

	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
)

// maxChained bounds how many transitions a single Apply follows.
const maxChained = 8

type Hook func(w *ecs.World)

// Change is the payload of ecs.EventStateChanged.
type Change struct {
	From component.GameState
	To   component.GameState
}

type Machine struct {
	current component.GameState
	pending *component.GameState
	started bool

	enter map[component.GameState][]Hook
	exit  map[component.GameState][]Hook
}

func NewMachine() *Machine {
	return &Machine{
		current: component.StateStartup,
		enter:   map[component.GameState][]Hook{},
		exit:    map[component.GameState][]Hook{},
	}
}

func (m *Machine) Current() component.GameState {
	return m.current
}

// In reports whether s is the active state.
func (m *Machine) In(s component.GameState) bool {
	return m.started && m.current == s
}

// Set requests a transition to s on the next Apply.
func (m *Machine) Set(s component.GameState) {
	m.pending = &s
}

func (m *Machine) OnEnter(s component.GameState, fn Hook) {
	if fn != nil {
		m.enter[s] = append(m.enter[s], fn)
	}
}

func (m *Machine) OnExit(s component.GameState, fn Hook) {
	if fn != nil {
		m.exit[s] = append(m.exit[s], fn)
	}
}

// Apply runs pending transitions. The first call also enters the initial
// state. It reports whether the active state changed.
func (m *Machine) Apply(w *ecs.World) bool {
	changed := false
	if !m.started {
		m.started = true
		m.run(m.enter[m.current], w)
		changed = true
	}

	for i := 0; m.pending != nil; i++ {
		if i == maxChained {
			log.Printf("state: dropping transition to %s after %d chained transitions", *m.pending, maxChained)
			m.pending = nil
			break
		}

		next := *m.pending
		m.pending = nil
		if next == m.current {
			continue
		}

		prev := m.current
		m.run(m.exit[prev], w)
		DespawnScoped(w, prev)
		m.current = next
		w.Events().Push(ecs.Event{Type: ecs.EventStateChanged, Data: Change{From: prev, To: next}})
		m.run(m.enter[next], w)
		changed = true
	}
	return changed
}

func (m *Machine) run(hooks []Hook, w *ecs.World) {
	for _, fn := range hooks {
		fn(w)
	}
}

// Scope tags e so it is destroyed when the game leaves s.
func Scope(w *ecs.World, e ecs.Entity, s component.GameState) error {
	return ecs.Add(w, e, component.StateScopedComponent.Kind(), &component.StateScoped{State: s})
}

// DespawnScoped destroys every entity scoped to s.
func DespawnScoped(w *ecs.World, s component.GameState) int {
	n := 0
	ecs.ForEach(w, component.StateScopedComponent.Kind(), func(e ecs.Entity, scoped *component.StateScoped) {
		if scoped.State == s && ecs.DestroyEntity(w, e) {
			n++
		}
	})
	return n
}
