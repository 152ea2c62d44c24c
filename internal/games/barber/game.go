// Package barber adapts the barber engine to the platform's Game interface.
// Both modes are registered: "align" (The New Barber) and "rush" (Hair Rush).
package barber

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/new-barber/internal/config"
	"github.com/vovakirdan/new-barber/internal/core"
	"github.com/vovakirdan/new-barber/internal/engine"
	"github.com/vovakirdan/new-barber/internal/registry"
)

// Package-level config shared by every session, set once by the CLI.
var (
	cfgMu        sync.RWMutex
	activeConfig = config.DefaultConfig()
)

// Configure loads, adjusts and validates the game configuration and makes
// it the one used by new sessions.
func Configure(path, difficulty string) (config.Config, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	cfgMu.Lock()
	activeConfig = cfg
	cfgMu.Unlock()
	return cfg, nil
}

// ActiveConfig returns the configuration used by new sessions.
func ActiveConfig() config.Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return activeConfig
}

// Game is one barber session.
type Game struct {
	mode   engine.Mode
	eng    *engine.Engine
	snap   engine.Snapshot
	store  engine.HighScoreStore
	logger *log.Logger
	err    error
}

// New creates a session for mode.
func New(mode engine.Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	registry.Register(engine.ModeAlign.String(), func() registry.Game {
		return New(engine.ModeAlign)
	})
	registry.Register(engine.ModeRush.String(), func() registry.Game {
		return New(engine.ModeRush)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.String()
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeRush {
		return "Hair Rush"
	}
	return "The New Barber"
}

// AttachStore sets the high score slot and logger used by the next Reset.
func (g *Game) AttachStore(store engine.HighScoreStore, logger *log.Logger) {
	g.store = store
	g.logger = logger
}

// Reset builds a fresh engine in the Ready phase.
func (g *Game) Reset(rc core.RuntimeConfig) {
	eng, err := engine.New(ActiveConfig(), g.mode, engine.Options{
		Seed:   rc.Seed,
		Store:  g.store,
		Logger: g.logger,
	})
	if err != nil {
		g.err = fmt.Errorf("barber: %w", err)
		g.eng = nil
		return
	}
	g.err = nil
	g.eng = eng
	g.snap = eng.Snapshot()
}

// config returns the configuration of the running engine. Configure only
// affects sessions reset after it.
func (g *Game) config() config.Config {
	if g.eng != nil {
		return g.eng.Config()
	}
	return ActiveConfig()
}

// Step maps the frame's actions onto engine events and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionReset):
		g.eng.Reset()
	case in.Has(core.ActionRestart):
		g.eng.Restart()
	}
	if in.Has(core.ActionPause) {
		g.eng.Pause()
	}
	if in.Has(core.ActionTrigger) {
		switch g.eng.State().Phase {
		case engine.PhaseReady:
			g.eng.Start()
		case engine.PhaseGameOver:
			g.eng.Restart()
		default:
			g.eng.Trigger()
		}
	}

	g.snap = g.eng.Tick()
	return core.StepResult{State: g.State()}
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		Level:    g.snap.Level,
		Lives:    g.snap.Lives,
		GameOver: g.snap.Phase == engine.PhaseGameOver,
		Paused:   g.snap.Paused,
		Running:  g.snap.Phase == engine.PhasePlaying && !g.snap.Paused,
	}
}

// Snapshot returns the last published engine snapshot.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}
