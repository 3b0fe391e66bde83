package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Score: 300, Level: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300 after reopening", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Score: 100, Level: 2, Host: "terminal"},
		{Score: 50, Level: 1, Host: "terminal"},
		{Score: 200, Level: 3, Host: "window", Difficulty: "hard"},
		{Score: 100, Level: 3, Host: "ssh"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(runs))
	}

	expected := []struct {
		score, level int
		host         string
	}{
		{200, 3, "window"},
		{100, 3, "ssh"}, // same score, higher level first
		{100, 2, "terminal"},
		{50, 1, "terminal"},
	}
	for i, e := range expected {
		if runs[i].Score != e.score || runs[i].Level != e.level || runs[i].Host != e.host {
			t.Errorf("run %d = %d/%d/%s, expected %d/%d/%s",
				i, runs[i].Score, runs[i].Level, runs[i].Host, e.score, e.level, e.host)
		}
		if runs[i].RunID == uuid.Nil {
			t.Errorf("run %d has no run ID", i)
		}
		if runs[i].CreatedAt.IsZero() {
			t.Errorf("run %d has no timestamp", i)
		}
	}
	if runs[0].Difficulty != "hard" {
		t.Errorf("Difficulty = %q, expected hard", runs[0].Difficulty)
	}

	top2, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns(2) failed: %v", err)
	}
	if len(top2) != 2 {
		t.Errorf("TopRuns(2) returned %d runs", len(top2))
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.New()
	saved, err := store.SaveRun(Run{RunID: id, Score: 750, Level: 4})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.RunID != id || saved.ID == 0 {
		t.Errorf("SaveRun() = %+v, expected run ID %s and a row ID", saved, id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.Score != 750 || got.Level != 4 {
		t.Errorf("RunByID() = %+v, expected score 750 level 4", got)
	}

	if _, err := store.RunByID(uuid.New()); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID(unknown) error = %v, expected ErrRunNotFound", err)
	}

	if _, err := store.SaveRun(Run{RunID: id, Score: 1}); err == nil {
		t.Error("saving a duplicate run ID should fail")
	}
}

func TestStoreEmptyLog(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0", high)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("TopRuns() returned %d runs, expected none", len(runs))
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() = %+v, expected empty", stats)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{{Score: 100, Level: 1}, {Score: 300, Level: 5}, {Score: 200, Level: 2}} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.HighScore != 300 || stats.BestLevel != 5 {
		t.Errorf("Stats() = %+v, expected 3 runs, high 300, level 5", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %g, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
}
