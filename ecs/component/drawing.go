package component

import "github.com/milk9111/trazo/stroke"

var DrawingComponent = NewComponent[stroke.Drawing]()

// StrokeStyle holds how drawings are stroked on screen.
type StrokeStyle struct {
	Width     float32
	RoundJoin bool
	AntiAlias bool
}

var StrokeStyleComponent = NewComponent[StrokeStyle]()
