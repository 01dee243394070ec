package component

// Camera looks at its entity's Transform. World space is y-up with the
// camera position at the center of the viewport.
type Camera struct {
	Zoom      float64
	ViewportW float64
	ViewportH float64
}

var CameraComponent = NewComponent[Camera]()
