package barber

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/new-barber/internal/config"
	"github.com/vovakirdan/new-barber/internal/core"
	"github.com/vovakirdan/new-barber/internal/engine"
	"github.com/vovakirdan/new-barber/internal/registry"
)

func newGame(t *testing.T, mode engine.Mode) *Game {
	t.Helper()
	g := New(mode)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"align", "rush"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, expected %q", g.ID(), id)
		}
		if _, ok := g.(registry.Persistent); !ok {
			t.Errorf("%s should accept a high score store", id)
		}
	}
}

func TestTriggerStartsThenCuts(t *testing.T) {
	g := newGame(t, engine.ModeAlign)
	if g.Snapshot().Phase != engine.PhaseReady {
		t.Fatalf("Phase = %v, expected ready", g.Snapshot().Phase)
	}

	g.Step(press(core.ActionTrigger))
	if g.Snapshot().Phase != engine.PhasePlaying {
		t.Fatalf("Phase = %v, expected playing", g.Snapshot().Phase)
	}

	g.Step(press(core.ActionTrigger))
	if g.Snapshot().Stance != engine.StanceCutting {
		t.Errorf("Stance = %v, expected cutting", g.Snapshot().Stance)
	}
}

func TestPlayUntilGameOverAndRestart(t *testing.T) {
	g := newGame(t, engine.ModeAlign)
	g.Step(press(core.ActionTrigger))

	idle := core.NewInputFrame()
	for i := 0; i < 10000 && !g.State().GameOver; i++ {
		s := g.Snapshot()
		if s.Stance == engine.StanceIdle && !engine.Aligned(s.Mover.Position, s.Target) {
			g.Step(press(core.ActionTrigger))
			continue
		}
		g.Step(idle)
	}
	st := g.State()
	if !st.GameOver || st.Lives != 0 {
		t.Fatalf("State = %+v, expected game over", st)
	}

	g.Step(press(core.ActionRestart))
	st = g.State()
	if st.GameOver || st.Lives != config.DefaultConfig().MaxLives || st.Score != 0 {
		t.Errorf("after restart: %+v", st)
	}
}

func TestPauseAndReset(t *testing.T) {
	g := newGame(t, engine.ModeRush)
	g.Step(press(core.ActionTrigger))
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("paused game advanced")
	}

	g.Step(press(core.ActionReset))
	if g.Snapshot().Phase != engine.PhaseReady {
		t.Errorf("Phase = %v, expected ready after reset", g.Snapshot().Phase)
	}
}

func TestRenderReadyAndHUD(t *testing.T) {
	g := newGame(t, engine.ModeAlign)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(out, "Press SPACE to start") {
		t.Error("ready overlay missing")
	}
	if !strings.Contains(out, "♥♥♥") {
		t.Error("lives missing from HUD")
	}
}

func TestRenderRushObjects(t *testing.T) {
	g := newGame(t, engine.ModeRush)
	g.Step(press(core.ActionTrigger))
	for i := 0; i < 400 && len(g.Snapshot().Objects) == 0; i++ {
		g.Step(core.NewInputFrame())
	}
	if len(g.Snapshot().Objects) == 0 {
		t.Skip("no strand spawned with this seed")
	}
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), '✂') {
		t.Error("cutter not drawn")
	}
	var strands int
	for y := hudHeight; y < 23; y++ {
		for x := 0; x < 80; x++ {
			if screen.GetCell(x, y).Rune == '│' {
				strands++
			}
		}
	}
	if strands == 0 {
		t.Error("no strands drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, engine.ModeAlign)
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small notice, got:\n%s", screen.String())
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { activeConfig = config.DefaultConfig() })

	if _, err := Configure("", "brutal"); err == nil {
		t.Error("unknown difficulty should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Configure(path, ""); err == nil {
		t.Error("invalid config should fail")
	}

	good := filepath.Join(t.TempDir(), "good.yaml")
	if err := os.WriteFile(good, []byte("max_lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Configure(good, "hard")
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	if cfg.MaxLives != 2 || ActiveConfig().MaxLives != 2 {
		t.Errorf("MaxLives = %d, expected hard preset 2", cfg.MaxLives)
	}
}

func TestRenderKeepsSessionConfig(t *testing.T) {
	t.Cleanup(func() { activeConfig = config.DefaultConfig() })

	g := newGame(t, engine.ModeAlign)
	before := core.NewScreen(80, 24)
	g.Render(before)

	path := filepath.Join(t.TempDir(), "tall.yaml")
	data := "align:\n  axis: {min: 0, max: 2000}\n  target_band: {min: 1500, max: 1900}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Configure(path, ""); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}

	after := core.NewScreen(80, 24)
	g.Render(after)
	if before.String() != after.String() {
		t.Errorf("running session redrawn with the new axis:\n%s", after.String())
	}

	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24})
	fresh := core.NewScreen(80, 24)
	g.Render(fresh)
	if fresh.String() == before.String() {
		t.Error("reset session still drawn with the old axis")
	}
}
