// Package game provides the movement rules, play sessions and the main
// game loop.
package game

// State represents the current loop state.
type State int

const (
	// StatePlaying is the normal exploration mode.
	StatePlaying State = iota
	// StateLevelComplete is shown for one frame after the exit is reached,
	// before the next level starts.
	StateLevelComplete
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}
