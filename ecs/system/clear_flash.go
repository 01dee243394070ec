package system

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"out_expo":     ease.OutExpo,
}

// Easing returns the tween function with the given name, or linear when the
// name is unknown.
func Easing(name string) ease.TweenFunc {
	if fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn
	}
	return ease.Linear
}

// ClearFlashSystem shows a fading overlay whenever the strokes are cleared.
type ClearFlashSystem struct {
	Color    color.Color
	Duration float32
	Ease     ease.TweenFunc
}

func NewClearFlashSystem(clr color.Color, duration float32, fn ease.TweenFunc) *ClearFlashSystem {
	if fn == nil {
		fn = ease.Linear
	}
	return &ClearFlashSystem{Color: clr, Duration: duration, Ease: fn}
}

func (s *ClearFlashSystem) Update(w *ecs.World) {
	s.Tick(w, float32(1/float64(ebiten.TPS())))
}

// Tick starts a flash for this frame's clear and advances running flashes by
// dt seconds.
func (s *ClearFlashSystem) Tick(w *ecs.World, dt float32) {
	if w == nil {
		return
	}

	started := false
	if len(w.Events().Peek(ecs.EventStrokesCleared)) > 0 && s.Duration > 0 {
		ecs.ForEach(w, component.ClearFlashComponent.Kind(), func(e ecs.Entity, _ *component.ClearFlash) {
			ecs.DestroyEntity(w, e)
		})
		e := ecs.CreateEntity(w)
		flash := &component.ClearFlash{
			Tween: gween.New(1, 0, s.Duration, s.Ease),
			Color: s.Color,
			Alpha: 1,
		}
		if err := ecs.Add(w, e, component.ClearFlashComponent.Kind(), flash); err != nil {
			panic("clear flash: add flash: " + err.Error())
		}
		started = true
	}
	if started {
		return
	}

	ecs.ForEach(w, component.ClearFlashComponent.Kind(), func(e ecs.Entity, flash *component.ClearFlash) {
		if flash.Tween == nil {
			ecs.DestroyEntity(w, e)
			return
		}
		alpha, done := flash.Tween.Update(dt)
		flash.Alpha = alpha
		if done {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *ClearFlashSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	bounds := screen.Bounds()
	ecs.ForEach(w, component.ClearFlashComponent.Kind(), func(_ ecs.Entity, flash *component.ClearFlash) {
		if flash.Alpha <= 0 || flash.Color == nil {
			return
		}
		vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), fade(flash.Color, flash.Alpha), false)
	})
}

// fade scales a color, alpha included, by a in [0, 1].
func fade(c color.Color, a float32) color.Color {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.Transparent
	}
	r, g, b, al := c.RGBA()
	scale := func(v uint32) uint16 { return uint16(float32(v) * a) }
	return color.RGBA64{R: scale(r), G: scale(g), B: scale(b), A: scale(al)}
}
