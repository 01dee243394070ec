package export

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/jung-kurt/gofpdf"
	"github.com/milk9111/trazo/prefabs"
)

const (
	pageW      = 210.0
	pageH      = 297.0
	pageMargin = 10.0
)

// PDFOptions controls how strokes are placed on the page.
type PDFOptions struct {
	// LineWidth is the stroke width in world units.
	LineWidth float64
}

// Layout maps world coordinates onto the page, y flipped, keeping aspect.
type Layout struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	Bounds  cp.BB
}

// FitPage computes a layout that centers every point of strokes inside the
// printable area of an A4 page.
func FitPage(strokes []Stroke) Layout {
	var (
		bb    cp.BB
		found bool
	)
	for _, s := range strokes {
		for _, p := range s.Points {
			v := cp.Vector{X: p.X, Y: p.Y}
			if !found {
				bb = cp.NewBBForExtents(v, 0, 0)
				found = true
				continue
			}
			bb = bb.Expand(v)
		}
	}
	if !found {
		return Layout{Scale: 1, OffsetX: pageW / 2, OffsetY: pageH / 2}
	}

	availW, availH := pageW-2*pageMargin, pageH-2*pageMargin
	bw, bh := bb.R-bb.L, bb.T-bb.B
	scale := math.Inf(1)
	if bw > 0 {
		scale = availW / bw
	}
	if bh > 0 {
		scale = math.Min(scale, availH/bh)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	center := bb.Center()
	return Layout{
		Scale:   scale,
		OffsetX: pageW/2 - center.X*scale,
		OffsetY: pageH/2 + center.Y*scale,
		Bounds:  bb,
	}
}

// Page converts a world point to page millimetres.
func (l Layout) Page(p Point) (float64, float64) {
	return p.X*l.Scale + l.OffsetX, l.OffsetY - p.Y*l.Scale
}

// WritePDF draws strokes onto a single A4 page at path.
func WritePDF(path string, strokes []Stroke, opts PDFOptions) error {
	if opts.LineWidth <= 0 {
		opts.LineWidth = 10
	}
	layout := FitPage(strokes)
	width := math.Max(opts.LineWidth*layout.Scale, 0.2)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("trazo", true)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	pdf.SetLineWidth(width)

	for _, s := range strokes {
		clr, err := prefabs.ParseColor(s.Color)
		if err != nil {
			return fmt.Errorf("export: pdf stroke %s: %w", s.ID, err)
		}
		r, g, b := rgb(clr)
		pdf.SetDrawColor(r, g, b)
		pdf.SetFillColor(r, g, b)

		if len(s.Points) == 1 {
			x, y := layout.Page(s.Points[0])
			pdf.Circle(x, y, width/2, "F")
			continue
		}
		for i, p := range s.Points {
			x, y := layout.Page(p)
			if i == 0 {
				pdf.MoveTo(x, y)
				continue
			}
			pdf.LineTo(x, y)
		}
		pdf.DrawPath("D")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: write pdf %s: %w", path, err)
	}
	return nil
}
