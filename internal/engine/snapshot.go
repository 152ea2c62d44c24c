package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/new-barber/internal/config"
	"github.com/vovakirdan/new-barber/internal/core"
)

// Snapshot is what the presentation layer sees after each update.
// Slices are copies and may be kept across ticks.
type Snapshot struct {
	Mode      string `msgpack:"mode"`
	Phase     Phase  `msgpack:"phase"`
	Stance    Stance `msgpack:"stance"`
	Paused    bool   `msgpack:"paused"`
	Tick      uint64 `msgpack:"tick"`
	Score     int    `msgpack:"score"`
	Level     int    `msgpack:"level"`
	Lives     int    `msgpack:"lives"`
	MaxLives  int    `msgpack:"max_lives"`
	HighScore int    `msgpack:"high_score"`

	Mover     Mover           `msgpack:"mover"`
	Cutter    core.Vec2       `msgpack:"cutter"`
	Target    Target          `msgpack:"target"`
	HasTarget bool            `msgpack:"has_target"`
	Objects   []FallingObject `msgpack:"objects"`
	Particles []Particle      `msgpack:"particles"`

	CuttingProgress float64 `msgpack:"cutting_progress"`
}

// NewSnapshot builds a snapshot of s.
func NewSnapshot(cfg config.Config, s State, highScore int) Snapshot {
	return Snapshot{
		Mode:            s.Mode.String(),
		Phase:           s.Phase,
		Stance:          s.Stance,
		Paused:          s.Paused,
		Tick:            s.Tick,
		Score:           s.Score.Score,
		Level:           s.Score.Level,
		Lives:           s.Score.Lives,
		MaxLives:        cfg.MaxLives,
		HighScore:       max(highScore, s.Score.Score),
		Mover:           s.Mover,
		Cutter:          s.Cutter(),
		Target:          s.Target,
		HasTarget:       s.HasTarget,
		Objects:         append([]FallingObject(nil), s.Objects...),
		Particles:       append([]Particle(nil), s.Particles...),
		CuttingProgress: s.CuttingProgress(cfg.Align.CuttingDelayTicks),
	}
}

// TraceWriter streams snapshots as consecutive msgpack values.
type TraceWriter struct {
	enc   *msgpack.Encoder
	count int
}

// NewTraceWriter creates a trace writer on w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{enc: msgpack.NewEncoder(w)}
}

// Write appends one snapshot to the trace.
func (t *TraceWriter) Write(s Snapshot) error {
	if err := t.enc.Encode(&s); err != nil {
		return fmt.Errorf("engine: encode snapshot %d: %w", t.count, err)
	}
	t.count++
	return nil
}

// Count returns the number of snapshots written.
func (t *TraceWriter) Count() int {
	return t.count
}

// ReadTrace decodes every snapshot from r until EOF.
func ReadTrace(r io.Reader) ([]Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var out []Snapshot
	for {
		var s Snapshot
		if err := dec.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("engine: decode snapshot %d: %w", len(out), err)
		}
		out = append(out, s)
	}
}
