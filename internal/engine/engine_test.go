package engine

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/new-barber/internal/config"
)

type fakeStore struct {
	scores  map[string]int
	loadErr error
	saveErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{scores: map[string]int{}}
}

func (f *fakeStore) LoadHighScore(slot string) (int, error) {
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	return f.scores[slot], nil
}

func (f *fakeStore) SaveHighScoreIfHigher(slot string, score int) (bool, error) {
	f.saves++
	if f.saveErr != nil {
		return false, f.saveErr
	}
	if score <= f.scores[slot] {
		return false, nil
	}
	f.scores[slot] = score
	return true, nil
}

// loseAlign plays an align run to game over with missed cuts only.
func loseAlign(t *testing.T, e *Engine) Snapshot {
	t.Helper()
	snap := e.Start()
	for i := 0; i < 100000 && snap.Phase == PhasePlaying; i++ {
		if snap.Stance == StanceIdle && !Aligned(snap.Mover.Position, snap.Target) {
			snap = e.Trigger()
		}
		snap = e.Tick()
	}
	if snap.Phase != PhaseGameOver {
		t.Fatalf("run did not end, phase %v", snap.Phase)
	}
	return snap
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxLives = 0
	_, err := New(cfg, ModeAlign, Options{Logger: quietLogger()})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, expected ErrInvalid", err)
	}
}

func TestEngineDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()
	for _, mode := range []Mode{ModeAlign, ModeRush} {
		e1, err := New(cfg, mode, Options{Seed: 12345, Logger: quietLogger()})
		if err != nil {
			t.Fatal(err)
		}
		e2, _ := New(cfg, mode, Options{Seed: 12345, Logger: quietLogger()})

		e1.Start()
		e2.Start()
		for i := 0; i < 3000; i++ {
			if i%45 == 0 {
				e1.Trigger()
				e2.Trigger()
			}
			s1, s2 := e1.Tick(), e2.Tick()
			if !reflect.DeepEqual(s1, s2) {
				t.Fatalf("%v: snapshots diverged at tick %d", mode, i)
			}
		}
	}
}

func TestEnginePersistsHighScore(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Align.CuttingDelayTicks = 0
	store := newFakeStore()
	store.scores["align"] = 5

	e, err := New(cfg, ModeAlign, Options{Seed: 1, Store: store, Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	if e.HighScore() != 5 {
		t.Fatalf("HighScore = %d, expected 5 from store", e.HighScore())
	}

	// One perfect cut, then miss until the run ends.
	e.Start()
	st := e.State()
	for !Aligned(st.Mover.Position, st.Target) {
		e.Tick()
		st = e.State()
	}
	if snap := e.Trigger(); snap.Score != 10 {
		t.Fatalf("Score = %d, expected 10", snap.Score)
	}
	snap := loseAlignFromPlaying(t, e)

	if snap.HighScore != 10 || e.HighScore() != 10 {
		t.Errorf("HighScore = %d/%d, expected 10", snap.HighScore, e.HighScore())
	}
	if store.scores["align"] != 10 || store.saves != 1 {
		t.Errorf("store = %v after %d saves", store.scores, store.saves)
	}
}

func loseAlignFromPlaying(t *testing.T, e *Engine) Snapshot {
	t.Helper()
	snap := e.Snapshot()
	for i := 0; i < 100000 && snap.Phase == PhasePlaying; i++ {
		if !Aligned(snap.Mover.Position, snap.Target) {
			snap = e.Trigger()
			continue
		}
		snap = e.Tick()
	}
	return snap
}

func TestEngineIgnoresStoreFailures(t *testing.T) {
	cfg := config.DefaultConfig()
	store := newFakeStore()
	store.loadErr = errors.New("disk gone")
	store.saveErr = errors.New("disk gone")

	e, err := New(cfg, ModeAlign, Options{Seed: 4, Store: store, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New() with failing store: %v", err)
	}
	snap := loseAlign(t, e)
	if snap.Lives != 0 || snap.Phase != PhaseGameOver {
		t.Errorf("unexpected final snapshot %+v", snap)
	}

	snap = e.Restart()
	if snap.Phase != PhasePlaying || snap.Lives != cfg.MaxLives {
		t.Errorf("restart after failed save: %+v", snap)
	}
}

func TestEngineLowScoreNotSaved(t *testing.T) {
	store := newFakeStore()
	store.scores["align"] = 100
	e, _ := New(config.DefaultConfig(), ModeAlign, Options{Seed: 2, Store: store, Logger: quietLogger()})

	loseAlign(t, e)
	if store.saves != 0 {
		t.Errorf("saves = %d, expected none for a losing score", store.saves)
	}
	if e.HighScore() != 100 {
		t.Errorf("HighScore = %d, expected 100", e.HighScore())
	}
}

func TestEngineResetSnapshots(t *testing.T) {
	e, _ := New(config.DefaultConfig(), ModeRush, Options{Seed: 8, Logger: quietLogger()})
	e.Start()
	e.Trigger()
	for i := 0; i < 300; i++ {
		e.Tick()
	}

	a := e.Reset()
	b := e.Reset()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("reset snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Phase != PhaseReady || a.Score != 0 || len(a.Objects) != 0 {
		t.Errorf("reset snapshot not fresh: %+v", a)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rush.SpawnProbability = 1
	e, _ := New(cfg, ModeRush, Options{Seed: 5, Logger: quietLogger()})
	e.Start()
	snap := e.Tick()
	if len(snap.Objects) != 1 {
		t.Fatalf("Objects = %d, expected 1", len(snap.Objects))
	}
	snap.Objects[0].Pos.Y = -999

	if e.State().Objects[0].Pos.Y == -999 {
		t.Error("snapshot shares memory with engine state")
	}
}

func TestTraceRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rush.SpawnProbability = 0.5
	e, _ := New(cfg, ModeRush, Options{Seed: 11, Logger: quietLogger()})

	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)
	var want []Snapshot
	e.Start()
	e.Trigger()
	for i := 0; i < 40; i++ {
		snap := e.Tick()
		want = append(want, snap)
		if err := tw.Write(snap); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if tw.Count() != 40 {
		t.Errorf("Count = %d, expected 40", tw.Count())
	}

	got, err := ReadTrace(&buf)
	if err != nil {
		t.Fatalf("ReadTrace: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("read %d snapshots, expected %d", len(got), len(want))
	}
	last := got[len(got)-1]
	if last.Tick != want[len(want)-1].Tick || last.Mode != "rush" || last.Stance != want[len(want)-1].Stance {
		t.Errorf("last snapshot = %+v", last)
	}
	if len(last.Objects) != len(want[len(want)-1].Objects) {
		t.Errorf("objects: %d vs %d", len(last.Objects), len(want[len(want)-1].Objects))
	}
}

func TestManualClock(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewManualClock(start, 16*time.Millisecond)
	defer c.Stop()

	c.Fire()
	if got := <-c.C(); !got.Equal(start) {
		t.Errorf("first tick = %v, expected %v", got, start)
	}
	c.Fire()
	if got := <-c.C(); !got.Equal(start.Add(16 * time.Millisecond)) {
		t.Errorf("second tick = %v", got)
	}
}

func TestFastClock(t *testing.T) {
	c := NewFastClock(time.Unix(0, 0), time.Second)
	var prev time.Time
	for i := 0; i < 5; i++ {
		got := <-c.C()
		if i > 0 && got.Sub(prev) != time.Second {
			t.Errorf("tick %d step = %v", i, got.Sub(prev))
		}
		prev = got
	}
	c.Stop()
	c.Stop()
}

func TestTickInterval(t *testing.T) {
	if got := TickInterval(0); got != time.Second/60 {
		t.Errorf("TickInterval(0) = %v", got)
	}
	if got := TickInterval(30); got != time.Second/30 {
		t.Errorf("TickInterval(30) = %v", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeAlign, ModeRush} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m, got, err)
		}
	}
	if _, err := ParseMode("mullet"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
