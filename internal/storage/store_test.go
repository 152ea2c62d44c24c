package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []struct{ score, level int }{{100, 11}, {50, 6}, {200, 21}} {
		if _, err := store.SaveScore("align", sc.score, sc.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("rush", 500, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("align", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 21 || scores[0].Mode != "align" {
		t.Errorf("top entry = %+v", scores[0])
	}

	limited, err := store.TopScores("align", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestHighScoreSlot(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.LoadHighScore("align")
	if err != nil || hs != 0 {
		t.Fatalf("empty slot = %d, %v; expected 0, nil", hs, err)
	}

	tests := []struct {
		score     int
		wantSaved bool
		wantHigh  int
	}{
		{30, true, 30},
		{20, false, 30},
		{30, false, 30},
		{45, true, 45},
	}
	for _, tc := range tests {
		saved, err := store.SaveHighScoreIfHigher("align", tc.score)
		if err != nil {
			t.Fatalf("SaveHighScoreIfHigher(%d) failed: %v", tc.score, err)
		}
		if saved != tc.wantSaved {
			t.Errorf("SaveHighScoreIfHigher(%d) = %v, expected %v", tc.score, saved, tc.wantSaved)
		}
		hs, _ := store.LoadHighScore("align")
		if hs != tc.wantHigh {
			t.Errorf("after %d: high score = %d, expected %d", tc.score, hs, tc.wantHigh)
		}
	}

	if hs, _ := store.LoadHighScore("rush"); hs != 0 {
		t.Errorf("rush slot = %d, expected slots to be independent", hs)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("align", 100, 3)
	store.SaveScore("rush", 200, 1)
	store.SaveHighScoreIfHigher("align", 100)

	if err := store.ClearScores("align"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("align", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 align scores after clear, got %d", len(scores))
	}
	if hs, _ := store.LoadHighScore("align"); hs != 0 {
		t.Errorf("align high score = %d after clear", hs)
	}
	rush, _ := store.TopScores("rush", 10)
	if len(rush) != 1 {
		t.Errorf("Expected rush history untouched, got %d", len(rush))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("rush")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("align", 10, 2)
	store.SaveScore("align", 30, 4)

	stats, err := store.Stats("align")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.BestLevel != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %g, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
