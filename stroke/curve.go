package stroke

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trazo/common"
)

var (
	ErrInvalidInterval = errors.New("stroke: invalid interval")
	ErrTooFewSamples   = errors.New("stroke: sample curve needs at least two samples")
)

// Interval is a closed, non-empty range of curve parameters.
type Interval struct {
	Start float64
	End   float64
}

// NewInterval validates that start < end and both are finite.
func NewInterval(start, end float64) (Interval, error) {
	if math.IsNaN(start) || math.IsNaN(end) || math.IsInf(start, 0) || math.IsInf(end, 0) || !(start < end) {
		return Interval{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidInterval, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// UnitInterval is [0, 1].
func UnitInterval() Interval {
	return Interval{Start: 0, End: 1}
}

func (i Interval) Length() float64 {
	return i.End - i.Start
}

func (i Interval) Clamp(t float64) float64 {
	return common.Clamp(t, i.Start, i.End)
}

// SampleCurve interpolates linearly between samples spaced evenly over its
// domain. It passes through sample k at parameter Start + k*Length/(n-1).
type SampleCurve struct {
	domain  Interval
	samples []cp.Vector
}

// NewSampleCurve copies samples into a curve over domain.
func NewSampleCurve(domain Interval, samples []cp.Vector) (*SampleCurve, error) {
	if _, err := NewInterval(domain.Start, domain.End); err != nil {
		return nil, err
	}
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(samples))
	}
	return &SampleCurve{
		domain:  domain,
		samples: append([]cp.Vector(nil), samples...),
	}, nil
}

func (c *SampleCurve) Domain() Interval {
	return c.domain
}

// Len returns the number of samples the curve was built from.
func (c *SampleCurve) Len() int {
	return len(c.samples)
}

// At evaluates the curve. Parameters outside the domain are clamped.
func (c *SampleCurve) At(t float64) cp.Vector {
	t = c.domain.Clamp(t)
	last := len(c.samples) - 1
	pos := common.InverseLerp(c.domain.Start, c.domain.End, t) * float64(last)
	// knot parameters must land exactly on their sample
	if r := math.Round(pos); math.Abs(pos-r) < 1e-9 {
		pos = r
	}
	i := int(math.Floor(pos))
	if i >= last {
		return c.samples[last]
	}
	if i < 0 {
		return c.samples[0]
	}
	return c.samples[i].Lerp(c.samples[i+1], pos-float64(i))
}
