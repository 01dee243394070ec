package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
)

// View is a snapshot of the camera used to convert between screen pixels and
// world units. World space is y-up and the camera sits at the screen center.
type View struct {
	X, Y      float64
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

func (v View) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

func (v View) ScreenToWorld(sx, sy float64) cp.Vector {
	z := v.zoom()
	return cp.Vector{
		X: (sx-v.ViewportW/2)/z + v.X,
		Y: (v.ViewportH/2-sy)/z + v.Y,
	}
}

func (v View) WorldToScreen(p cp.Vector) (float64, float64) {
	z := v.zoom()
	return (p.X-v.X)*z + v.ViewportW/2, v.ViewportH/2 - (p.Y-v.Y)*z
}

// Bounds is the visible area in world units.
func (v View) Bounds() cp.BB {
	z := v.zoom()
	return cp.NewBBForExtents(cp.Vector{X: v.X, Y: v.Y}, v.ViewportW/2/z, v.ViewportH/2/z)
}

// CurrentView reads the first camera in w. Without a camera the view is an
// unzoomed one centered on the origin.
func CurrentView(w *ecs.World) View {
	v := View{Zoom: 1}
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
		v.Zoom = cam.Zoom
		v.ViewportW = cam.ViewportW
		v.ViewportH = cam.ViewportH
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		v.X, v.Y = t.X, t.Y
	}
	return v
}

// ScreenToWorld converts a screen pixel to world space using the camera in w.
func ScreenToWorld(w *ecs.World, sx, sy float64) cp.Vector {
	return CurrentView(w).ScreenToWorld(sx, sy)
}

// WorldToScreen converts a world position to screen pixels using the camera
// in w.
func WorldToScreen(w *ecs.World, p cp.Vector) (float64, float64) {
	return CurrentView(w).WorldToScreen(p)
}

// SpawnCamera creates the camera entity looking at the origin.
func SpawnCamera(w *ecs.World, zoom float64) (ecs.Entity, error) {
	if zoom <= 0 {
		zoom = 1
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
		return 0, err
	}
	return e, nil
}

// CameraSystem keeps every camera's viewport in sync with the window size
// reported by Layout.
type CameraSystem struct {
	width, height float64
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Resize records the outside size of the game screen.
func (cs *CameraSystem) Resize(width, height float64) {
	cs.width, cs.height = width, height
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || cs.width <= 0 || cs.height <= 0 {
		return
	}

	ecs.ForEach(w, component.CameraComponent.Kind(), func(_ ecs.Entity, cam *component.Camera) {
		cam.ViewportW = cs.width
		cam.ViewportH = cs.height
	})
}
