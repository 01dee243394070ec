package component

import (
	"image/color"

	"github.com/tanema/gween"
)

// ClearFlash is a full-screen overlay that fades out after the canvas is
// cleared.
type ClearFlash struct {
	Tween *gween.Tween
	Color color.Color
	Alpha float32
}

var ClearFlashComponent = NewComponent[ClearFlash]()
