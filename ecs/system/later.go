package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trazo/common"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
)

// Later schedules fn to run once, secs seconds from now. The returned entity
// carries the command and is destroyed after fn has run; destroying it
// earlier cancels the command.
func Later(w *ecs.World, secs float64, fn func()) ecs.Entity {
	e := ecs.CreateEntity(w)
	cmd := &component.LaterCommand{Timer: common.NewTimer(secs), Run: fn}
	if err := ecs.Add(w, e, component.LaterCommandComponent.Kind(), cmd); err != nil {
		panic("later: add command: " + err.Error())
	}
	return e
}

// LaterSystem advances every LaterCommand once per tick.
type LaterSystem struct{}

func NewLaterSystem() *LaterSystem {
	return &LaterSystem{}
}

func (s *LaterSystem) Update(w *ecs.World) {
	s.Tick(w, 1/float64(ebiten.TPS()))
}

// Tick advances every pending command by dt seconds and runs those whose
// delay has elapsed.
func (s *LaterSystem) Tick(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.LaterCommandComponent.Kind(), func(e ecs.Entity, cmd *component.LaterCommand) {
		if !cmd.Timer.Tick(dt).JustFinished() {
			return
		}
		if cmd.Run != nil {
			cmd.Run()
		}
		ecs.DestroyEntity(w, e)
	})
}
