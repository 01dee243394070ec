package system

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/stroke"
)

var defaultStyle = component.StrokeStyle{Width: 10, RoundJoin: true, AntiAlias: true}

// RenderSystem draws the canvas and then every stroke on top of it.
type RenderSystem struct {
	Debug bool

	// drawn counts strokes that survived culling in the last Draw.
	drawn int
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view := CurrentView(w)
	bounds := screen.Bounds()
	view.ViewportW = float64(bounds.Dx())
	view.ViewportH = float64(bounds.Dy())

	r.drawCanvases(w, screen, view)

	style := defaultStyle
	if e, ok := ecs.First(w, component.StrokeStyleComponent.Kind()); ok {
		if s, ok := ecs.Get(w, e, component.StrokeStyleComponent.Kind()); ok {
			style = *s
		}
	}

	visible := view.Bounds()
	r.drawn = 0
	for _, e := range sortedEntities(w, component.DrawingComponent.Kind()) {
		d, ok := ecs.Get(w, e, component.DrawingComponent.Kind())
		if !ok || !visibleStroke(d, visible, float64(style.Width)) {
			continue
		}
		drawStroke(screen, view, d, style)
		r.drawn++
	}

	if r.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f  strokes %d/%d  zoom %.2f",
			ebiten.ActualTPS(), r.drawn, ecs.Count(w, component.DrawingComponent.Kind()), view.zoom()))
	}
}

func (r *RenderSystem) drawCanvases(w *ecs.World, screen *ebiten.Image, view View) {
	canvases := sortedEntities(w, component.CanvasComponent.Kind())
	slices.SortStableFunc(canvases, func(a, b ecs.Entity) int {
		return layerOf(w, a) - layerOf(w, b)
	})

	for _, e := range canvases {
		c, ok := ecs.Get(w, e, component.CanvasComponent.Kind())
		if !ok || c.Color == nil {
			continue
		}
		if c.Width <= 0 || c.Height <= 0 {
			screen.Fill(c.Color)
			continue
		}
		center := cp.Vector{X: view.X, Y: view.Y}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			center = cp.Vector{X: t.X, Y: t.Y}
		}
		x, y := view.WorldToScreen(cp.Vector{X: center.X - c.Width/2, Y: center.Y + c.Height/2})
		z := view.zoom()
		vector.FillRect(screen, float32(x), float32(y), float32(c.Width*z), float32(c.Height*z), c.Color, false)
	}
}

func drawStroke(screen *ebiten.Image, view View, d *stroke.Drawing, style component.StrokeStyle) {
	width := style.Width * float32(view.zoom())
	clr := d.Color()
	if clr == nil {
		clr = color.Black
	}

	var (
		px, py float32
		first  = true
	)
	for p := range d.Samples() {
		sx, sy := view.WorldToScreen(p)
		x, y := float32(sx), float32(sy)
		if !first {
			vector.StrokeLine(screen, px, py, x, y, width, clr, style.AntiAlias)
		}
		if style.RoundJoin {
			vector.FillCircle(screen, x, y, width/2, clr, style.AntiAlias)
		}
		px, py = x, y
		first = false
	}
}

// visibleStroke reports whether any part of d, stroked with the given width,
// can overlap the visible area.
func visibleStroke(d *stroke.Drawing, visible cp.BB, width float64) bool {
	if _, ok := d.Curve(); !ok {
		return false
	}
	b := d.Bounds()
	r := width / 2
	return visible.Intersects(cp.BB{L: b.L - r, B: b.B - r, R: b.R + r, T: b.T + r})
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

// sortedEntities returns the live entities with kind in id order.
func sortedEntities[T any](w *ecs.World, kind component.ComponentKind[T]) []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(w, kind, func(e ecs.Entity, _ *T) {
		out = append(out, e)
	})
	slices.SortFunc(out, func(a, b ecs.Entity) int {
		return ecs.Compare(a, b)
	})
	return out
}
