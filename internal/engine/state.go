package engine

import (
	"github.com/vovakirdan/new-barber/internal/config"
	"github.com/vovakirdan/new-barber/internal/core"
)

// Phase is the top-level game state.
type Phase int

const (
	// PhaseReady waits for Start. It is the initial phase and the target of Reset.
	PhaseReady Phase = iota
	// PhasePlaying runs the simulation.
	PhasePlaying
	// PhaseGameOver holds the final score until Restart or Reset.
	PhaseGameOver
)

// String returns the phase name used in logs and traces.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Stance is the scissors sub-state while Playing.
type Stance int

const (
	// StanceIdle means the mover oscillates and accepts a trigger.
	StanceIdle Stance = iota
	// StanceCutting is the align-mode window between a trigger and its outcome.
	StanceCutting
	// StanceSlicing is the rush-mode horizontal sweep.
	StanceSlicing
)

// String returns the stance name used in logs and traces.
func (s Stance) String() string {
	switch s {
	case StanceIdle:
		return "idle"
	case StanceCutting:
		return "cutting"
	case StanceSlicing:
		return "slicing"
	default:
		return "unknown"
	}
}

// State is the complete simulation state. Treat it as a value: Reduce never
// modifies the slices of the state it is given.
type State struct {
	Mode   Mode
	Phase  Phase
	Stance Stance
	Paused bool
	Tick   uint64

	Score ScoreState
	Mover Mover
	// SweepX is the rush cutter's horizontal position.
	SweepX float64

	Target    Target
	HasTarget bool

	Objects   []FallingObject
	Particles []Particle
	NextID    uint64

	CutStart uint64
	Pending  []Scheduled
}

// NewState returns the Ready state for a mode. It draws no randomness, so
// repeated calls with the same config are identical.
func NewState(cfg config.Config, mode Mode) State {
	s := State{
		Mode:   mode,
		Phase:  PhaseReady,
		Score:  NewScoreState(cfg.MaxLives),
		NextID: 1,
	}
	switch mode {
	case ModeRush:
		s.Mover = NewMover(cfg.Rush.MoverStart, cfg.Rush.BaseSpeed)
		s.SweepX = cfg.Rush.SweepStartX
	default:
		s.Mover = NewMover(cfg.Align.MoverStart, SpeedForLevel(cfg.Align.BaseSpeed, cfg.Align.SpeedPerLevel, 1))
	}
	return s
}

// Cutter returns the 2-D position of the rush cutter.
func (s State) Cutter() core.Vec2 {
	return core.Vec2{X: s.SweepX, Y: s.Mover.Position}
}

// Bounds returns the oscillation axis for the state's mode.
func Bounds(cfg config.Config, mode Mode) config.Range {
	if mode == ModeRush {
		return cfg.Rush.Axis
	}
	return cfg.Align.Axis
}

// CuttingProgress returns how far the current cut is in [0, 1].
// It is 0 outside the Cutting stance.
func (s State) CuttingProgress(delayTicks int) float64 {
	if s.Stance != StanceCutting || delayTicks <= 0 {
		return 0
	}
	p := float64(s.Tick-s.CutStart) / float64(delayTicks)
	return core.ClampF(p, 0, 1)
}
