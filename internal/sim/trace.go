package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/new-barber/internal/engine"
)

// TraceFile buffers a snapshot trace on its way to a file. Snapshots are
// only durable once Close returns nil.
type TraceFile struct {
	*engine.TraceWriter
	buf *bufio.Writer
	dst io.Closer
}

// CreateTrace creates (or truncates) the trace file at path.
func CreateTrace(path string) (*TraceFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sim: create trace: %w", err)
	}
	return newTraceFile(f), nil
}

func newTraceFile(w io.WriteCloser) *TraceFile {
	buf := bufio.NewWriter(w)
	return &TraceFile{
		TraceWriter: engine.NewTraceWriter(buf),
		buf:         buf,
		dst:         w,
	}
}

// Close flushes buffered snapshots and closes the file. The file is closed
// even when the flush fails.
func (t *TraceFile) Close() error {
	flushErr := t.buf.Flush()
	closeErr := t.dst.Close()
	if flushErr != nil {
		return fmt.Errorf("sim: flush trace: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("sim: close trace: %w", closeErr)
	}
	return nil
}

// TraceSummary describes a recorded run.
type TraceSummary struct {
	Mode       string
	Snapshots  int
	FirstTick  uint64
	LastTick   uint64
	Score      int
	Level      int
	Lives      int
	HighScore  int
	GameOver   bool
	Hits       int // ticks on which the score went up
	MaxObjects int
}

// ErrEmptyTrace is returned for a trace without snapshots.
var ErrEmptyTrace = errors.New("sim: empty trace")

// SummarizeTrace decodes a trace written by Run and summarizes it.
func SummarizeTrace(r io.Reader) (TraceSummary, error) {
	snaps, err := engine.ReadTrace(r)
	if err != nil {
		return TraceSummary{}, err
	}
	if len(snaps) == 0 {
		return TraceSummary{}, ErrEmptyTrace
	}

	first, last := snaps[0], snaps[len(snaps)-1]
	sum := TraceSummary{
		Mode:      last.Mode,
		Snapshots: len(snaps),
		FirstTick: first.Tick,
		LastTick:  last.Tick,
		Score:     last.Score,
		Level:     last.Level,
		Lives:     last.Lives,
		HighScore: last.HighScore,
		GameOver:  last.Phase == engine.PhaseGameOver,
	}
	prev := first.Score
	for i, s := range snaps {
		if i > 0 && s.Score > prev {
			sum.Hits++
		}
		prev = s.Score
		sum.MaxObjects = max(sum.MaxObjects, len(s.Objects))
	}
	return sum, nil
}
