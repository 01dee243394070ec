package component

// GameState tells which part of the game is active.
type GameState int

const (
	// StateStartup runs before anything else and moves on immediately.
	StateStartup GameState = iota
	StateMenu
	StatePlay
)

func (s GameState) String() string {
	switch s {
	case StateStartup:
		return "startup"
	case StateMenu:
		return "menu"
	case StatePlay:
		return "play"
	}
	return "unknown"
}

// StateScoped entities are destroyed when the game leaves State.
type StateScoped struct {
	State GameState
}

var StateScopedComponent = NewComponent[StateScoped]()
