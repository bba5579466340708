package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-tank/internal/core"
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

func run(gameID string, score, level int) core.RunRecord {
	return core.RunRecord{GameID: gameID, Score: score, Level: level, Ticks: uint64(score * 3)}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []core.RunRecord{
		run("tank", 100, 1),
		run("tank", 50, 1),
		{GameID: "tank", Score: 2200, Level: 3, Ticks: 9000, Seed: 42, NewRecord: true},
		run("other", 500, 1),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("tank", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	if runs[0].Score != 2200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %+v", runs)
	}

	best := runs[0]
	if best.Level != 3 || best.Ticks != 9000 || best.Seed != 42 || !best.NewRecord {
		t.Errorf("Run fields not preserved: %+v", best)
	}
	if runs[1].NewRecord {
		t.Errorf("NewRecord should default to false")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.RecordRun(run("tank", (i+1)*100, 1)); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("tank", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 100, 200} {
		store.RecordRun(run("tank", score, 1))
	}

	runs, err := store.RecentRuns("tank", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 200 || runs[1].Score != 100 {
		t.Errorf("Expected latest runs first, got %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tank")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.RecordRun(run("tank", 100, 1))
	store.RecordRun(run("tank", 300, 1))
	store.RecordRun(run("tank", 200, 1))

	high, err = store.HighScore("tank")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(run("tank", 100, 1))
	store.RecordRun(run("tank", 200, 1))
	store.RecordRun(run("other", 300, 1))

	if err := store.ClearRuns("tank"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	tankRuns, _ := store.TopRuns("tank", 10)
	if len(tankRuns) != 0 {
		t.Errorf("Expected 0 tank runs after clear, got %d", len(tankRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Errorf("Other games should not be affected by clearing tank")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tank")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordRun(run("tank", 100, 1))
	store.RecordRun(run("tank", 1300, 2))

	stats, err = store.GetGameStats("tank")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 1300 || stats.BestLevel != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 700 {
		t.Errorf("AvgScore = %v, expected 700", stats.AvgScore)
	}
	if stats.TotalTicks != 4200 {
		t.Errorf("TotalTicks = %d, expected 4200", stats.TotalTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tank/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tank", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
