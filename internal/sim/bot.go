package sim

import (
	"math"

	"github.com/vovakirdan/new-barber/internal/engine"
)

// Bot decides, once per tick, whether to press the trigger.
type Bot interface {
	Decide(s engine.Snapshot) bool
}

// AlignBot cuts when the mover is within Margin times the target tolerance.
// A margin below 1 only takes safe cuts; above 1 it gets greedy and misses.
type AlignBot struct {
	Margin float64
}

// Decide implements Bot.
func (b AlignBot) Decide(s engine.Snapshot) bool {
	if !canAct(s) || !s.HasTarget {
		return false
	}
	margin := b.Margin
	if margin <= 0 {
		margin = 1
	}
	return math.Abs(s.Mover.Position-s.Target.Position) < s.Target.Tolerance*margin
}

// RushBot starts a sweep when a strand falls within Reach of the cutter line
// and has not yet been passed by the blade.
type RushBot struct {
	Reach float64
}

// Decide implements Bot.
func (b RushBot) Decide(s engine.Snapshot) bool {
	if !canAct(s) {
		return false
	}
	reach := b.Reach
	if reach <= 0 {
		reach = 20
	}
	for _, o := range s.Objects {
		if o.Pos.X >= s.Cutter.X && math.Abs(o.Pos.Y-s.Cutter.Y) < reach {
			return true
		}
	}
	return false
}

// BotFor returns the default bot for mode.
func BotFor(mode engine.Mode) Bot {
	if mode == engine.ModeRush {
		return RushBot{}
	}
	return AlignBot{Margin: 0.8}
}

func canAct(s engine.Snapshot) bool {
	return s.Phase == engine.PhasePlaying && !s.Paused && s.Stance == engine.StanceIdle
}
