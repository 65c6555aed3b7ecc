package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	records := []RunRecord{
		{Seed: 1, GridSize: 20, Score: 5, Length: 6, DurationTicks: 120, Outcome: "collided"},
		{Seed: 2, GridSize: 20, Score: 12, Length: 13, DurationTicks: 400, Outcome: "collided"},
		{Seed: 3, GridSize: 4, Score: 15, Length: 16, DurationTicks: 90, Outcome: "board_full"},
	}
	for _, r := range records {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Seed != 3 {
		t.Errorf("Expected newest run (seed 3) first, got seed %d", runs[0].Seed)
	}
	if runs[0].Outcome != "board_full" {
		t.Errorf("Outcome = %q, expected board_full", runs[0].Outcome)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Seed: int64(i + 1), GridSize: 20, Score: i, Length: i + 1, Outcome: "collided"})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
}

func TestStoreRunEvents(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runID, err := store.SaveRun(RunRecord{Seed: 9, GridSize: 20, Score: 2, Length: 3, DurationTicks: 50, Outcome: "collided"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	events := []RunEvent{
		{Tick: 10, Kind: "grew", X: 5, Y: 5, Score: 1},
		{Tick: 30, Kind: "grew", X: 8, Y: 2, Score: 2},
		{Tick: 50, Kind: "collided", X: 20, Y: 2, Score: 2},
	}
	if err := store.SaveEvents(runID, events); err != nil {
		t.Fatalf("SaveEvents() failed: %v", err)
	}

	got, err := store.RunEvents(runID)
	if err != nil {
		t.Fatalf("RunEvents() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(got))
	}
	if got[0].Kind != "grew" || got[0].Tick != 10 {
		t.Errorf("First event = %+v, expected the tick-10 growth", got[0])
	}
	if got[2].Kind != "collided" {
		t.Errorf("Last event kind = %q, expected collided", got[2].Kind)
	}
}

func TestStoreSaveEventsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveEvents(1, nil); err != nil {
		t.Errorf("SaveEvents() with no events should be a no-op, got %v", err)
	}
}

func TestStoreRunByID(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(RunRecord{Seed: 42, GridSize: 16, Score: 7, Length: 8, DurationTicks: 210, Outcome: "collided"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() returned nil for an existing run")
	}
	if r.Seed != 42 || r.Score != 7 {
		t.Errorf("RunByID() = %+v, expected seed 42 score 7", r)
	}

	missing, err := store.RunByID(id + 1000)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Error("RunByID() should return nil for a missing run")
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, _ := store.SaveRun(RunRecord{Seed: 1, GridSize: 20, Score: 1, Length: 2, Outcome: "collided"})
	store.SaveEvents(id, []RunEvent{{Tick: 5, Kind: "grew", X: 1, Y: 1, Score: 1}})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	events, _ := store.RunEvents(id)
	if len(events) != 0 {
		t.Errorf("Expected 0 events after clear, got %d", len(events))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
