package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
)

func TestClearFlashFadesOut(t *testing.T) {
	w := ecs.NewWorld()
	s := NewClearFlashSystem(color.White, 0.3, Easing("linear"))

	s.Tick(w, 0.1)
	if n := ecs.Count(w, component.ClearFlashComponent.Kind()); n != 0 {
		t.Fatalf("flash started without a clear")
	}

	ClearStrokes(w)
	s.Tick(w, 0.1)
	w.EndFrame()

	e, ok := ecs.First(w, component.ClearFlashComponent.Kind())
	if !ok {
		t.Fatalf("expected a flash after clearing")
	}
	flash, _ := ecs.Get(w, e, component.ClearFlashComponent.Kind())
	if flash.Alpha != 1 {
		t.Fatalf("flash should start opaque, got %v", flash.Alpha)
	}

	s.Tick(w, 0.15)
	if flash.Alpha <= 0 || flash.Alpha >= 1 {
		t.Fatalf("flash should be fading, alpha %v", flash.Alpha)
	}

	s.Tick(w, 0.2)
	if ecs.IsAlive(w, e) {
		t.Fatalf("flash should be gone once the tween finishes")
	}
}

func TestClearFlashRestarts(t *testing.T) {
	w := ecs.NewWorld()
	s := NewClearFlashSystem(color.White, 1, nil)

	ClearStrokes(w)
	s.Tick(w, 0.016)
	w.EndFrame()
	s.Tick(w, 0.5)

	ClearStrokes(w)
	s.Tick(w, 0.016)
	w.EndFrame()

	if n := ecs.Count(w, component.ClearFlashComponent.Kind()); n != 1 {
		t.Fatalf("expected a single flash, got %d", n)
	}
	e, _ := ecs.First(w, component.ClearFlashComponent.Kind())
	flash, _ := ecs.Get(w, e, component.ClearFlashComponent.Kind())
	if flash.Alpha != 1 {
		t.Fatalf("a new clear should restart the flash, alpha %v", flash.Alpha)
	}
}

func TestFadeAndEasing(t *testing.T) {
	if got := fade(color.White, 0); got != color.Transparent {
		t.Fatalf("expected transparent, got %v", got)
	}
	if got := fade(color.White, 1); got != color.White {
		t.Fatalf("expected white, got %v", got)
	}
	r, _, _, a := fade(color.White, 0.5).RGBA()
	if r != a || a < 0x7f00 || a > 0x8100 {
		t.Fatalf("half fade should stay premultiplied, got r=%x a=%x", r, a)
	}
	if Easing("OUT_QUAD") == nil || Easing("nope") == nil {
		t.Fatalf("easing lookup should never return nil")
	}
}
