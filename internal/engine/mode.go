// Package engine implements the barber simulation: a fixed-step reducer that
// advances the scissors, judges cuts, keeps score and drives the
// Ready -> Playing -> GameOver state machine for both game modes.
//
// Everything in this package is deterministic given a seed and an event
// sequence. The only I/O happens in Engine when a run ends, through the
// HighScoreStore collaborator.
package engine

import "fmt"

// Mode selects the collision rule and spawner used by the engine.
type Mode int

const (
	// ModeAlign is the tap-when-aligned mode with a single target line.
	ModeAlign Mode = iota
	// ModeRush is the falling-hair mode with proximity collisions.
	ModeRush
)

// String returns the mode identifier used for CLI arguments and score slots.
func (m Mode) String() string {
	switch m {
	case ModeAlign:
		return "align"
	case ModeRush:
		return "rush"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode identifier back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "align":
		return ModeAlign, nil
	case "rush":
		return ModeRush, nil
	default:
		return 0, fmt.Errorf("engine: unknown mode %q", s)
	}
}
