package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/data"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/ecs/system"
	"github.com/milk9111/trazo/export"
	"github.com/milk9111/trazo/input"
	"github.com/milk9111/trazo/prefabs"
	"github.com/milk9111/trazo/state"
	"github.com/milk9111/trazo/watch"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Config holds the command line settings.
type Config struct {
	Debug   bool
	Play    bool
	DataDir string
	Script  string
}

type Game struct {
	cfg    Config
	frames int

	world  *ecs.World
	states *state.Machine

	spec    *prefabs.DrawingSpec
	store   *data.Store
	options data.Options

	camera  *system.CameraSystem
	inputs  *system.InputSystem
	drawing *system.DrawingSystem
	flash   *system.ClearFlashSystem
	render  *system.RenderSystem

	// play runs only in the play state: timers, input, drawing, actions,
	// then animation. Draw follows the same order.
	play *ecs.Scheduler
	// always runs in every state.
	always *ecs.Scheduler

	pointer *input.Ebiten
	script  *input.Script
	menu    *ebitenui.UI
	watcher *watch.Watcher
}

func NewGame(cfg Config) (*Game, error) {
	spec, err := prefabs.LoadDrawingSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load drawing spec: %w", err)
	}

	store := data.NewStore(cfg.DataDir)
	store.Init()
	options := data.Load[data.Options](store)
	options.Normalize()

	g := &Game{
		cfg:     cfg,
		world:   ecs.NewWorld(),
		states:  state.NewMachine(),
		spec:    spec,
		store:   store,
		options: options,
	}

	g.pointer = input.NewEbiten(func(sx, sy float64) cp.Vector {
		return system.ScreenToWorld(g.world, sx, sy)
	})
	g.pointer.SetDeadZone(spec.DragDeadZone)

	var source input.Source = g.pointer
	if cfg.Script != "" {
		src, err := prefabs.LoadScript(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("game: load script %s: %w", cfg.Script, err)
		}
		g.script, err = input.NewScript(src)
		if err != nil {
			return nil, fmt.Errorf("game: compile script %s: %w", cfg.Script, err)
		}
		source = input.Multi{g.script, g.pointer}
	}

	g.camera = system.NewCameraSystem()
	g.inputs = system.NewInputSystem(source)
	g.drawing = system.NewDrawingSystem(spec.Colors(), options.ColorAdvance, options.SelectedColor)
	g.drawing.OnColorChange = g.saveSelectedColor
	g.flash = system.NewClearFlashSystem(spec.ClearFlash.Color.Color, spec.ClearFlash.Duration, system.Easing(spec.ClearFlash.Ease))
	g.render = system.NewRenderSystem()
	g.render.Debug = cfg.Debug

	actions := system.NewActionSystem()
	actions.Handle(input.ActionCopy, g.copyStrokes)
	actions.Handle(input.ActionExportPDF, g.exportPDF)
	actions.Handle(input.ActionBack, func(*ecs.World) { g.states.Set(component.StateMenu) })

	g.always = ecs.NewScheduler(g.camera, system.NewCanvasSystem())
	g.play = ecs.NewScheduler(
		system.NewLaterSystem(),
		g.inputs,
		g.drawing,
		actions,
		g.render,
		g.flash,
	)

	g.states.OnEnter(component.StateStartup, g.enterStartup)
	g.states.OnEnter(component.StateMenu, func(*ecs.World) { g.menu = NewMenuUI(g) })
	g.states.OnExit(component.StateMenu, func(*ecs.World) { g.menu = nil })
	g.states.OnEnter(component.StatePlay, g.enterPlay)
	g.states.OnExit(component.StatePlay, func(*ecs.World) { g.drawing.Reset() })

	g.watcher = newWatcher(store.Dir, prefabs.Dir)
	return g, nil
}

func (g *Game) enterStartup(w *ecs.World) {
	if _, err := system.SpawnCamera(w, g.spec.Camera.Zoom); err != nil {
		panic("game: spawn camera: " + err.Error())
	}
	if g.cfg.Play {
		g.states.Set(component.StatePlay)
		return
	}
	g.states.Set(component.StateMenu)
}

func (g *Game) enterPlay(w *ecs.World) {
	canvas, err := system.SpawnCanvas(w, g.spec.Canvas.Color.Color, g.spec.Canvas.RenderLayer.Index)
	if err != nil {
		panic("game: spawn canvas: " + err.Error())
	}
	if err := ecs.Add(w, canvas, component.StrokeStyleComponent.Kind(), g.strokeStyle()); err != nil {
		panic("game: add stroke style: " + err.Error())
	}
	if err := state.Scope(w, canvas, component.StatePlay); err != nil {
		panic("game: scope canvas: " + err.Error())
	}
}

func (g *Game) strokeStyle() *component.StrokeStyle {
	style := &component.StrokeStyle{
		Width:     g.spec.Stroke.Width,
		RoundJoin: g.spec.Stroke.RoundJoin,
		AntiAlias: g.spec.Stroke.AntiAlias,
	}
	if g.options.LineWidth > 0 {
		style.Width = g.options.LineWidth
	}
	return style
}

func (g *Game) saveSelectedColor(selected int) {
	err := data.Update(g.store, &g.options, func(o *data.Options) {
		o.SelectedColor = selected
	})
	if err != nil {
		log.Printf("game: %v", err)
	}
}

// copyStrokes waits for the frame to finish so the copy matches what was
// drawn.
func (g *Game) copyStrokes(w *ecs.World) {
	system.Later(w, 0, func() {
		strokes := export.Snapshot(w)
		if err := export.CopyToClipboard(strokes); err != nil {
			log.Printf("game: copy strokes: %v", err)
			return
		}
		log.Printf("game: copied %d strokes", len(strokes))
	})
}

func (g *Game) exportPDF(w *ecs.World) {
	path := g.spec.Export.PDFPath
	system.Later(w, 0, func() {
		strokes := export.Snapshot(w)
		opts := export.PDFOptions{LineWidth: float64(g.strokeStyle().Width)}
		if err := export.WritePDF(path, strokes, opts); err != nil {
			log.Printf("game: %v", err)
			return
		}
		log.Printf("game: wrote %d strokes to %s", len(strokes), path)
	})
}

func (g *Game) Update() error {
	g.frames++
	g.reloadChanged()
	g.states.Apply(g.world)
	g.always.Update(g.world)

	switch g.states.Current() {
	case component.StateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if g.menu != nil {
			g.menu.Update()
		}
	case component.StatePlay:
		g.play.Update(g.world)
		if g.script != nil && g.script.Done() {
			log.Printf("game: script finished after %d frames", g.script.Frames())
			g.inputs.SetSource(g.pointer)
			g.script = nil
		}
	}

	g.world.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.states.Current() {
	case component.StateMenu:
		screen.Fill(menuBackground)
		if g.menu != nil {
			g.menu.Draw(screen)
		}
	case component.StatePlay:
		g.play.Draw(g.world, screen)
	}

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    State: %s", g.frames, ebiten.ActualFPS(), g.states.Current()), 0, 16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = baseWidth, baseHeight
	}
	g.camera.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the file watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// reloadChanged applies settings and prefab edits made on disk while the
// game runs.
func (g *Game) reloadChanged() {
	for _, path := range g.watcher.Pending() {
		switch {
		case filepath.Base(path) == prefabs.DrawingSpecFile:
			spec, err := prefabs.LoadDrawingSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", path, err)
				continue
			}
			g.applySpec(spec)
			log.Printf("game: reloaded %s", path)
		case data.IsRecordFile(path) && filepath.Base(path) == filepath.Base(g.store.File(&g.options)):
			data.Reload(g.store, &g.options)
			g.options.Normalize()
			g.applyOptions()
			log.Printf("game: reloaded %s", path)
		}
	}
}

func (g *Game) applySpec(spec *prefabs.DrawingSpec) {
	g.spec = spec
	g.drawing.Palette = spec.Colors()
	g.flash.Color = spec.ClearFlash.Color.Color
	g.flash.Duration = spec.ClearFlash.Duration
	g.flash.Ease = system.Easing(spec.ClearFlash.Ease)
	g.pointer.SetDeadZone(spec.DragDeadZone)

	ecs.ForEach(g.world, component.CanvasComponent.Kind(), func(_ ecs.Entity, c *component.Canvas) {
		c.Color = spec.Canvas.Color.Color
	})
	ecs.ForEach(g.world, component.RenderLayerComponent.Kind(), func(e ecs.Entity, layer *component.RenderLayer) {
		if ecs.Has(g.world, e, component.CanvasComponent.Kind()) {
			layer.Index = spec.Canvas.RenderLayer.Index
		}
	})
	g.applyOptions()
}

func (g *Game) applyOptions() {
	g.drawing.Mode = g.options.ColorAdvance
	if n := len(g.drawing.Palette); n > 0 {
		g.drawing.State.SelectedColor = g.options.SelectedColor % n
	}
	style := g.strokeStyle()
	ecs.ForEach(g.world, component.StrokeStyleComponent.Kind(), func(_ ecs.Entity, s *component.StrokeStyle) {
		*s = *style
	})
}

func newWatcher(dirs ...string) *watch.Watcher {
	var existing []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	w, err := watch.New(watch.Ext(".yaml", ".yml"), existing...)
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
		return nil
	}
	return w
}

var menuBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
