package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InverseLerp maps v from [a, b] onto [0, 1]. A degenerate range maps to 0.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
