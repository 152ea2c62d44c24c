package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/new-barber/internal/config"
)

// seqRNG replays vals cyclically.
type seqRNG struct {
	vals []float64
	i    int
}

func (r *seqRNG) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// noSpawn never passes the spawn roll with default settings.
func noSpawn() *seqRNG {
	return &seqRNG{vals: []float64{0.99}}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func playingAlign(cfg config.Config, mover, target float64) State {
	s := Reduce(cfg, noSpawn(), NewState(cfg, ModeAlign), EventStart)
	s.Mover.Position = mover
	s.Target = Target{Position: target, Tolerance: cfg.Align.Tolerance}
	return s
}

func playingRush(cfg config.Config) State {
	return Reduce(cfg, noSpawn(), NewState(cfg, ModeRush), EventStart)
}
