package engine

// GameState is the race lifecycle state
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateFinished
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

var validTransitions = map[GameState][]GameState{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StateFinished, StateMenu},
	StateFinished: {StateMenu},
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to GameState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
