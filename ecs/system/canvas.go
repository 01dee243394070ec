package system

import (
	"image/color"

	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
)

// SpawnCanvas creates the background canvas. It also receives the frame's
// input events.
func SpawnCanvas(w *ecs.World, clr color.Color, layer int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CanvasTagComponent.Kind(), &component.CanvasTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CanvasComponent.Kind(), &component.Canvas{Color: clr}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	return e, nil
}

// CanvasSystem keeps every canvas covering the camera's view.
type CanvasSystem struct{}

func NewCanvasSystem() *CanvasSystem {
	return &CanvasSystem{}
}

func (s *CanvasSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	view := CurrentView(w)
	width := view.ViewportW / view.zoom()
	height := view.ViewportH / view.zoom()

	ecs.ForEach2(w, component.CanvasComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Canvas, t *component.Transform) {
		c.Width = width
		c.Height = height
		t.X = view.X
		t.Y = view.Y
	})
}
