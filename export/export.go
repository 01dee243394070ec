// Package export turns the strokes in a world into portable forms: a yaml
// snapshot for the clipboard and a single page PDF.
package export

import (
	"fmt"
	"image/color"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/prefabs"
	"github.com/milk9111/trazo/stroke"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Stroke struct {
	ID     string  `yaml:"id"`
	Color  string  `yaml:"color"`
	Points []Point `yaml:"points,flow"`
}

// Document is the yaml layout of a snapshot.
type Document struct {
	Strokes []Stroke `yaml:"strokes"`
}

// Snapshot copies every drawing in w, in entity order. Each stroke gets a
// fresh id.
func Snapshot(w *ecs.World) []Stroke {
	var entities []ecs.Entity
	ecs.ForEach(w, component.DrawingComponent.Kind(), func(e ecs.Entity, _ *stroke.Drawing) {
		entities = append(entities, e)
	})
	slices.SortFunc(entities, ecs.Compare)

	out := make([]Stroke, 0, len(entities))
	for _, e := range entities {
		d, ok := ecs.Get(w, e, component.DrawingComponent.Kind())
		if !ok {
			continue
		}
		out = append(out, FromDrawing(d))
	}
	return out
}

func FromDrawing(d *stroke.Drawing) Stroke {
	pts := d.Points()
	s := Stroke{
		ID:     uuid.NewString(),
		Color:  prefabs.HexColor(d.Color()),
		Points: make([]Point, len(pts)),
	}
	for i, p := range pts {
		s.Points[i] = Point{X: p.X, Y: p.Y}
	}
	return s
}

// Drawing rebuilds a drawing from s. Points closer than the minimum distance
// are dropped the same way live input is.
func (s Stroke) Drawing() (*stroke.Drawing, error) {
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("export: stroke %s has no points", s.ID)
	}
	clr, err := prefabs.ParseColor(s.Color)
	if err != nil {
		return nil, fmt.Errorf("export: stroke %s: %w", s.ID, err)
	}
	d := stroke.New(cp.Vector{X: s.Points[0].X, Y: s.Points[0].Y}, clr)
	for _, p := range s.Points[1:] {
		d.Extend(cp.Vector{X: p.X, Y: p.Y})
	}
	return d, nil
}

func Marshal(strokes []Stroke) ([]byte, error) {
	out, err := yaml.Marshal(Document{Strokes: strokes})
	if err != nil {
		return nil, fmt.Errorf("export: marshal strokes: %w", err)
	}
	return out, nil
}

func Unmarshal(data []byte) ([]Stroke, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("export: unmarshal strokes: %w", err)
	}
	return doc.Strokes, nil
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyToClipboard writes the yaml snapshot of strokes to the system
// clipboard as text.
func CopyToClipboard(strokes []Stroke) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("export: clipboard unavailable: %w", clipboardErr)
	}

	data, err := Marshal(strokes)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0, 0, 0
	}
	// Undo premultiplication so translucent colors keep their hue on paper.
	return int(r * 0xff / a), int(g * 0xff / a), int(b * 0xff / a)
}
