package export

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/stroke"
)

func addDrawing(t *testing.T, w *ecs.World, clr color.Color, pts ...cp.Vector) ecs.Entity {
	t.Helper()
	d := stroke.New(pts[0], clr)
	for _, p := range pts[1:] {
		d.Extend(p)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DrawingComponent.Kind(), d); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSnapshotRoundTrip(t *testing.T) {
	w := ecs.NewWorld()
	addDrawing(t, w, color.RGBA{R: 65, G: 105, B: 225, A: 255}, cp.Vector{}, cp.Vector{X: 20}, cp.Vector{X: 20, Y: 20})
	addDrawing(t, w, color.RGBA{R: 255, G: 99, B: 71, A: 255}, cp.Vector{X: -5, Y: 3})

	strokes := Snapshot(w)
	if len(strokes) != 2 {
		t.Fatalf("expected 2 strokes, got %d", len(strokes))
	}
	if strokes[0].Color != "#4169e1" || strokes[1].Color != "#ff6347" {
		t.Fatalf("unexpected colors %q %q", strokes[0].Color, strokes[1].Color)
	}
	for _, s := range strokes {
		if _, err := uuid.Parse(s.ID); err != nil {
			t.Fatalf("stroke id %q is not a uuid: %v", s.ID, err)
		}
	}
	if strokes[0].ID == strokes[1].ID {
		t.Fatalf("stroke ids should be unique")
	}

	data, err := Marshal(strokes)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || len(back[0].Points) != 3 || back[0].Points[2] != (Point{X: 20, Y: 20}) {
		t.Fatalf("unexpected round trip %+v", back)
	}

	d, err := back[0].Drawing()
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected the rebuilt drawing to keep 3 points, got %d", d.Len())
	}
	if _, ok := d.Curve(); !ok {
		t.Fatalf("rebuilt drawing should have a curve")
	}
}

func TestStrokeDrawingErrors(t *testing.T) {
	tests := []struct {
		name string
		s    Stroke
	}{
		{name: "no points", s: Stroke{ID: "a", Color: "#000000"}},
		{name: "bad color", s: Stroke{ID: "b", Color: "#zz", Points: []Point{{}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.Drawing(); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestFitPage(t *testing.T) {
	tests := []struct {
		name    string
		strokes []Stroke
		check   func(t *testing.T, l Layout)
	}{
		{
			name: "empty uses page center",
			check: func(t *testing.T, l Layout) {
				if x, y := l.Page(Point{}); x != pageW/2 || y != pageH/2 {
					t.Fatalf("expected page center, got (%v, %v)", x, y)
				}
			},
		},
		{
			name:    "wide drawing fills the width",
			strokes: []Stroke{{Points: []Point{{X: -100, Y: 0}, {X: 100, Y: 10}}}},
			check: func(t *testing.T, l Layout) {
				x0, _ := l.Page(Point{X: -100, Y: 0})
				x1, _ := l.Page(Point{X: 100, Y: 10})
				if math.Abs(x0-pageMargin) > 1e-9 || math.Abs(x1-(pageW-pageMargin)) > 1e-9 {
					t.Fatalf("expected x to span the margins, got %v..%v", x0, x1)
				}
			},
		},
		{
			name:    "y is flipped",
			strokes: []Stroke{{Points: []Point{{X: 0, Y: 0}, {X: 0, Y: 100}}}},
			check: func(t *testing.T, l Layout) {
				_, low := l.Page(Point{X: 0, Y: 0})
				_, high := l.Page(Point{X: 0, Y: 100})
				if high >= low {
					t.Fatalf("higher world y should be higher on the page: %v vs %v", high, low)
				}
			},
		},
		{
			name:    "single point",
			strokes: []Stroke{{Points: []Point{{X: 7, Y: 7}}}},
			check: func(t *testing.T, l Layout) {
				if x, y := l.Page(Point{X: 7, Y: 7}); x != pageW/2 || y != pageH/2 {
					t.Fatalf("a lone point should land at the center, got (%v, %v)", x, y)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, FitPage(tt.strokes))
		})
	}
}

func TestWritePDF(t *testing.T) {
	w := ecs.NewWorld()
	addDrawing(t, w, color.RGBA{R: 60, G: 179, B: 113, A: 255}, cp.Vector{}, cp.Vector{X: 30}, cp.Vector{X: 30, Y: 30})
	addDrawing(t, w, color.RGBA{R: 255, G: 215, B: 0, A: 255}, cp.Vector{X: 100, Y: 100})

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := WritePDF(path, Snapshot(w), PDFOptions{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Fatalf("output is not a pdf")
	}

	bad := []Stroke{{ID: "x", Color: "nope", Points: []Point{{}, {X: 20}}}}
	if err := WritePDF(filepath.Join(t.TempDir(), "bad.pdf"), bad, PDFOptions{}); err == nil {
		t.Fatalf("expected an error for an unparseable color")
	}
}
