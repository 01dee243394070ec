package component

import "github.com/milk9111/trazo/common"

// LaterCommand runs Run once its timer finishes, then the entity carrying it
// is destroyed.
type LaterCommand struct {
	Timer common.Timer
	Run   func()
}

var LaterCommandComponent = NewComponent[LaterCommand]()
