package engine

// ScoreState holds the run counters.
type ScoreState struct {
	Score int
	Level int
	Lives int
}

// NewScoreState returns the counters for a fresh run.
func NewScoreState(maxLives int) ScoreState {
	return ScoreState{Score: 0, Level: 1, Lives: maxLives}
}

// ApplyHit awards points for count hits. levelUp adds one level.
func (s ScoreState) ApplyHit(count, points int, levelUp bool) ScoreState {
	if count <= 0 {
		return s
	}
	s.Score += points * count
	if levelUp {
		s.Level++
	}
	return s
}

// ApplyMiss costs one life and reports whether the run is over.
func (s ScoreState) ApplyMiss() (ScoreState, bool) {
	return s.ApplyLeak(1)
}

// ApplyLeak costs count lives, clamped at zero, and reports whether the run is over.
func (s ScoreState) ApplyLeak(count int) (ScoreState, bool) {
	if count <= 0 {
		return s, s.Lives == 0
	}
	s.Lives -= count
	if s.Lives < 0 {
		s.Lives = 0
	}
	return s, s.Lives == 0
}
