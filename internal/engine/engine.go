package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/new-barber/internal/config"
)

// HighScoreStore persists one high score per slot.
type HighScoreStore interface {
	LoadHighScore(slot string) (int, error)
	SaveHighScoreIfHigher(slot string, score int) (bool, error)
}

// Options configures an Engine.
type Options struct {
	Seed   int64
	RNG    RNG // overrides Seed when set
	Store  HighScoreStore
	Logger *log.Logger
}

// Engine is the stateful driver around Reduce. It owns the random source,
// the high score slot and the logger. It is not safe for concurrent use.
type Engine struct {
	cfg    config.Config
	mode   Mode
	rng    RNG
	store  HighScoreStore
	logger *log.Logger

	state     State
	highScore int
}

// New validates cfg and creates an engine in the Ready phase.
// A failing store is logged and treated as an empty slot.
func New(cfg config.Config, mode Mode, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if mode != ModeAlign && mode != ModeRush {
		return nil, fmt.Errorf("engine: unknown mode %d", mode)
	}

	e := &Engine{
		cfg:    cfg,
		mode:   mode,
		rng:    opts.RNG,
		store:  opts.Store,
		logger: opts.Logger,
		state:  NewState(cfg, mode),
	}
	if e.rng == nil {
		e.rng = NewRNG(opts.Seed)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}

	if e.store != nil {
		hs, err := e.store.LoadHighScore(mode.String())
		if err != nil {
			e.logger.Warn("could not load high score", "mode", mode, "error", err)
		} else {
			e.highScore = hs
		}
	}
	return e, nil
}

// Dispatch applies ev and returns the resulting snapshot.
// The high score is persisted on the update that ends a run.
func (e *Engine) Dispatch(ev Event) Snapshot {
	prev := e.state.Phase
	e.state = Reduce(e.cfg, e.rng, e.state, ev)
	if prev != PhaseGameOver && e.state.Phase == PhaseGameOver {
		e.finish()
	}
	return e.Snapshot()
}

func (e *Engine) Start() Snapshot   { return e.Dispatch(EventStart) }
func (e *Engine) Tick() Snapshot    { return e.Dispatch(EventTick) }
func (e *Engine) Trigger() Snapshot { return e.Dispatch(EventTrigger) }
func (e *Engine) Pause() Snapshot   { return e.Dispatch(EventPause) }
func (e *Engine) Restart() Snapshot { return e.Dispatch(EventRestart) }
func (e *Engine) Reset() Snapshot   { return e.Dispatch(EventReset) }

func (e *Engine) finish() {
	score := e.state.Score.Score
	e.logger.Info("game over",
		"mode", e.mode,
		"score", score,
		"level", e.state.Score.Level,
		"ticks", e.state.Tick,
	)
	if score <= e.highScore {
		return
	}
	e.highScore = score
	if e.store == nil {
		return
	}
	saved, err := e.store.SaveHighScoreIfHigher(e.mode.String(), score)
	if err != nil {
		e.logger.Warn("could not save high score", "mode", e.mode, "score", score, "error", err)
		return
	}
	if saved {
		e.logger.Info("new high score", "mode", e.mode, "score", score)
	}
}

// State returns the current state. Callers must not modify its slices.
func (e *Engine) State() State {
	return e.state
}

// Mode returns the engine's mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// HighScore returns the best score known for this mode.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Snapshot returns a read-only copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return NewSnapshot(e.cfg, e.state, e.highScore)
}
