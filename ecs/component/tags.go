package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type CanvasTag struct{}

var CanvasTagComponent = NewComponent[CanvasTag]()
