package engine

import (
	"math"

	"github.com/vovakirdan/new-barber/internal/config"
)

// Verdict is the result of a collision test.
type Verdict struct {
	Hit    bool
	HitIDs []uint64 // rush only, creation order
}

// Judge decides whether the mover hits its target(s).
type Judge interface {
	Evaluate(s State) Verdict
}

// AlignJudge hits when the mover is strictly within tolerance of the target.
type AlignJudge struct{}

// Evaluate implements Judge.
func (AlignJudge) Evaluate(s State) Verdict {
	if !s.HasTarget {
		return Verdict{}
	}
	return Verdict{Hit: Aligned(s.Mover.Position, s.Target)}
}

// Aligned reports whether pos lies strictly inside the target's tolerance.
func Aligned(pos float64, t Target) bool {
	return math.Abs(pos-t.Position) < t.Tolerance
}

// ProximityJudge hits every object closer to the cutter than Radius.
type ProximityJudge struct {
	Radius float64
}

// Evaluate implements Judge.
func (j ProximityJudge) Evaluate(s State) Verdict {
	var v Verdict
	cutter := s.Cutter()
	for _, o := range s.Objects {
		if cutter.Dist(o.Pos) < j.Radius {
			v.HitIDs = append(v.HitIDs, o.ID)
		}
	}
	v.Hit = len(v.HitIDs) > 0
	return v
}

// JudgeFor returns the collision rule for a mode.
func JudgeFor(mode Mode, cfg config.Config) Judge {
	if mode == ModeRush {
		return ProximityJudge{Radius: cfg.Rush.HitRadius}
	}
	return AlignJudge{}
}
