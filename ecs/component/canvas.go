package component

import "image/color"

// Canvas is the background surface strokes are drawn on. It always covers
// the window.
type Canvas struct {
	Width  float64
	Height float64
	Color  color.Color
}

var CanvasComponent = NewComponent[Canvas]()
