package bazooka

// State is the session state of the game.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ShowsTitle reports whether the heading/tutorial overlay is shown.
// Idle and GameOver look the same on screen.
func (s State) ShowsTitle() bool {
	return s != StatePlaying
}
