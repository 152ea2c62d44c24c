// Package sim drives an engine without a terminal, pressing the trigger on
// behalf of a bot. It backs the sim command and soak tests.
package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/new-barber/internal/engine"
)

// Options controls a headless run.
type Options struct {
	// MaxTicks stops the run early. Zero runs until game over.
	MaxTicks int

	// Trace receives the snapshot of every tick when set.
	Trace *engine.TraceWriter

	Logger *log.Logger
}

// Result summarizes a finished run.
type Result struct {
	Mode      string
	Ticks     int
	Triggers  int
	Score     int
	Level     int
	Lives     int
	HighScore int
	GameOver  bool
}

// Run starts (or restarts) the engine and advances it once per clock tick
// until the run ends, MaxTicks is reached or ctx is done. The clock is
// stopped on return.
func Run(ctx context.Context, eng *engine.Engine, clock engine.Clock, bot Bot, opts Options) (Result, error) {
	defer clock.Stop()

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	snap := eng.Snapshot()
	switch snap.Phase {
	case engine.PhaseReady:
		snap = eng.Start()
	case engine.PhaseGameOver:
		snap = eng.Restart()
	}

	res := Result{Mode: snap.Mode}
	for opts.MaxTicks <= 0 || res.Ticks < opts.MaxTicks {
		select {
		case <-ctx.Done():
			res.fill(snap)
			return res, ctx.Err()
		case <-clock.C():
		}

		if bot.Decide(snap) {
			eng.Trigger()
			res.Triggers++
		}
		before := snap.Score
		snap = eng.Tick()
		res.Ticks++

		if snap.Score > before {
			logger.Debug("scored", "tick", snap.Tick, "score", snap.Score, "level", snap.Level)
		}
		if opts.Trace != nil {
			if err := opts.Trace.Write(snap); err != nil {
				res.fill(snap)
				return res, fmt.Errorf("sim: %w", err)
			}
		}
		if snap.Phase == engine.PhaseGameOver {
			break
		}
	}

	res.fill(snap)
	return res, nil
}

func (r *Result) fill(s engine.Snapshot) {
	r.Score = s.Score
	r.Level = s.Level
	r.Lives = s.Lives
	r.HighScore = s.HighScore
	r.GameOver = s.Phase == engine.PhaseGameOver
}
