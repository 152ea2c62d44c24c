package engine

import "github.com/vovakirdan/new-barber/internal/config"

// Event is an input to Reduce.
type Event int

const (
	// EventStart begins a run from Ready.
	EventStart Event = iota
	// EventTick advances the simulation one step.
	EventTick
	// EventTrigger is the player's cut.
	EventTrigger
	// EventPause toggles pause while playing.
	EventPause
	// EventRestart begins a fresh run after game over.
	EventRestart
	// EventReset returns to Ready from any phase.
	EventReset
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventTick:
		return "tick"
	case EventTrigger:
		return "trigger"
	case EventPause:
		return "pause"
	case EventRestart:
		return "restart"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Reduce applies one event to s and returns the next state.
// It is total: events that do not apply in the current phase return s unchanged.
func Reduce(cfg config.Config, rng RNG, s State, ev Event) State {
	switch ev {
	case EventReset:
		return NewState(cfg, s.Mode)
	case EventStart:
		if s.Phase != PhaseReady {
			return s
		}
		return begin(cfg, rng, s.Mode)
	case EventRestart:
		if s.Phase != PhaseGameOver {
			return s
		}
		return begin(cfg, rng, s.Mode)
	case EventPause:
		if s.Phase == PhasePlaying {
			s.Paused = !s.Paused
		}
		return s
	case EventTrigger:
		if s.Phase != PhasePlaying || s.Paused || s.Stance != StanceIdle {
			return s
		}
		if s.Mode == ModeRush {
			s.Stance = StanceSlicing
			return s
		}
		return triggerAlign(cfg, rng, s)
	case EventTick:
		if s.Phase != PhasePlaying || s.Paused {
			return s
		}
		if s.Mode == ModeRush {
			return tickRush(cfg, rng, s)
		}
		return tickAlign(cfg, rng, s)
	}
	return s
}

// begin returns a fresh Playing state.
func begin(cfg config.Config, rng RNG, mode Mode) State {
	s := NewState(cfg, mode)
	s.Phase = PhasePlaying
	if mode == ModeAlign {
		s.Target = SpawnTarget(rng, cfg.Align.TargetBand, cfg.Align.Tolerance)
		s.HasTarget = true
	}
	return s
}

func triggerAlign(cfg config.Config, rng RNG, s State) State {
	hit := JudgeFor(s.Mode, cfg).Evaluate(s).Hit
	delay := cfg.Align.CuttingDelayTicks
	if delay <= 0 {
		return resolveCut(cfg, rng, s, hit)
	}
	s.Stance = StanceCutting
	s.CutStart = s.Tick
	s.Pending = schedule(s.Pending, Scheduled{
		At:   s.Tick + uint64(delay),
		Kind: TimerResolveCut,
		Hit:  hit,
	})
	return s
}

// resolveCut applies a decided align outcome and returns the mover to Idle.
func resolveCut(cfg config.Config, rng RNG, s State, hit bool) State {
	s.Stance = StanceIdle
	if hit {
		s.Score = s.Score.ApplyHit(1, cfg.PointsPerHit, true)
		s.Mover.Speed = SpeedForLevel(cfg.Align.BaseSpeed, cfg.Align.SpeedPerLevel, s.Score.Level)
		s.Target = SpawnTarget(rng, cfg.Align.TargetBand, cfg.Align.Tolerance)
		return s
	}
	var over bool
	s.Score, over = s.Score.ApplyMiss()
	if over {
		s = gameOver(s)
	}
	return s
}

func gameOver(s State) State {
	s.Phase = PhaseGameOver
	s.Stance = StanceIdle
	s.Pending = nil
	return s
}

func tickAlign(cfg config.Config, rng RNG, s State) State {
	s.Tick++

	ready, rest := due(s.Pending, s.Tick)
	s.Pending = rest
	for _, ev := range ready {
		if ev.Kind == TimerResolveCut {
			s = resolveCut(cfg, rng, s, ev.Hit)
		}
		if s.Phase != PhasePlaying {
			return s
		}
	}

	if s.Stance == StanceIdle {
		s.Mover = s.Mover.Advance(cfg.Align.Axis)
	}
	return s
}

func tickRush(cfg config.Config, rng RNG, s State) State {
	r := cfg.Rush
	s.Tick++

	if s.Stance == StanceSlicing {
		s.SweepX += r.SweepSpeed
		if s.SweepX > r.SweepEndX {
			s.SweepX = r.SweepStartX
			s.Stance = StanceIdle
		}
	} else {
		s.Mover = s.Mover.Advance(r.Axis)
	}

	res := NewObjectSpawner(r).Tick(rng, s.Objects, s.NextID)
	s.Objects = res.Objects
	s.NextID = res.NextID
	if res.Leaked > 0 {
		var over bool
		s.Score, over = s.Score.ApplyLeak(res.Leaked)
		if over {
			return gameOver(s)
		}
	}

	s.Particles = decay(s.Particles)

	if s.Stance != StanceSlicing {
		return s
	}
	v := JudgeFor(s.Mode, cfg).Evaluate(s)
	if !v.Hit {
		return s
	}
	cut := make(map[uint64]bool, len(v.HitIDs))
	for _, id := range v.HitIDs {
		cut[id] = true
	}
	survivors := make([]FallingObject, 0, len(s.Objects)-len(v.HitIDs))
	var particles []Particle
	for _, o := range s.Objects {
		if cut[o.ID] {
			particles = append(particles, burst(rng, o, r.ParticleCount, r.ParticleLife)...)
			continue
		}
		survivors = append(survivors, o)
	}
	s.Objects = survivors
	s.Particles = append(s.Particles, particles...)
	s.Score = s.Score.ApplyHit(len(v.HitIDs), cfg.PointsPerHit, false)
	return s
}
