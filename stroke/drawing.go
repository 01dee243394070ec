package stroke

import (
	"image/color"
	"iter"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/common"
)

// MinDistance is the smallest gap between two consecutive recorded points.
const MinDistance = 10.0

// Drawing is one free-hand stroke.
type Drawing struct {
	points []cp.Vector
	color  color.Color
	curve  *SampleCurve
	bounds cp.BB
}

// New starts a stroke at start. The color never changes afterwards.
func New(start cp.Vector, clr color.Color) *Drawing {
	return &Drawing{
		points: []cp.Vector{start},
		color:  clr,
		bounds: cp.NewBBForExtents(start, 0, 0),
	}
}

// Extend records p unless it lies within MinDistance of the last point. It
// reports whether p was kept.
func (d *Drawing) Extend(p cp.Vector) bool {
	if p.Distance(d.Last()) < MinDistance {
		return false
	}

	d.points = append(d.points, p)
	d.bounds = d.bounds.Expand(p)

	if len(d.points) > 1 {
		curve, err := NewSampleCurve(UnitInterval(), d.points)
		if err != nil {
			panic("stroke: rebuild curve: " + err.Error())
		}
		d.curve = curve
	}
	return true
}

// Len returns the number of recorded points.
func (d *Drawing) Len() int {
	return len(d.points)
}

// Last returns the most recently recorded point.
func (d *Drawing) Last() cp.Vector {
	return d.points[len(d.points)-1]
}

// Points returns a copy of the recorded points in recording order.
func (d *Drawing) Points() []cp.Vector {
	return append([]cp.Vector(nil), d.points...)
}

func (d *Drawing) Color() color.Color {
	return d.color
}

// Curve returns the interpolated curve, which exists once two points are
// recorded.
func (d *Drawing) Curve() (*SampleCurve, bool) {
	return d.curve, d.curve != nil
}

// Bounds returns the axis-aligned box around every recorded point.
func (d *Drawing) Bounds() cp.BB {
	return d.bounds
}

// Samples yields one position per recorded point, evaluated along the curve
// at evenly spaced parameters. It yields nothing until a curve exists.
func (d *Drawing) Samples() iter.Seq[cp.Vector] {
	return func(yield func(cp.Vector) bool) {
		if d == nil || d.curve == nil {
			return
		}
		length := len(d.points) - 1
		domain := d.curve.Domain()
		for i := 0; i <= length; i++ {
			t := common.Lerp(domain.Start, domain.End, float64(i)/float64(length))
			if !yield(d.curve.At(t)) {
				return
			}
		}
	}
}
