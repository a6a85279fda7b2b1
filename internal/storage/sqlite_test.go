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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

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
	if _, err := store.SaveRun(Run{DemoID: "curves", Ticks: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns("curves", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Run{
		DemoID:         "orbit",
		Ticks:          600,
		TweensStarted:  42,
		TweensComplete: 40,
		PeakActive:     7,
		TimeScale:      0.5,
		WallSeconds:    10.25,
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d, expected positive", id)
	}

	runs, err := store.RecentRuns("orbit", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id || got.Ticks != 600 || got.TweensStarted != 42 || got.TweensComplete != 40 {
		t.Errorf("RecentRuns() = %+v", got)
	}
	if got.PeakActive != 7 || got.TimeScale != 0.5 || got.WallSeconds != 10.25 {
		t.Errorf("RecentRuns() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(Run{DemoID: "curves", Ticks: int64(i)}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(Run{DemoID: "sequence", Ticks: 99})

	runs, err := store.RecentRuns("curves", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Ticks != 5 || runs[1].Ticks != 4 || runs[2].Ticks != 3 {
		t.Errorf("Runs not newest first: %v", runs)
	}

	all, err := store.RecentRuns("", 100)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 runs across demos, got %d", len(all))
	}
}

func TestStoreSummaries(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{DemoID: "sequence", Ticks: 10, TweensComplete: 2, WallSeconds: 1})
	store.SaveRun(Run{DemoID: "curves", Ticks: 5, TweensComplete: 1, WallSeconds: 0.5})
	store.SaveRun(Run{DemoID: "curves", Ticks: 15, TweensComplete: 3, WallSeconds: 1.5})

	sums, err := store.Summaries()
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(sums))
	}

	curves := sums[0]
	if curves.DemoID != "curves" || curves.Runs != 2 || curves.Ticks != 20 || curves.Completed != 4 || curves.WallSeconds != 2 {
		t.Errorf("curves summary = %+v", curves)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{DemoID: "curves"})
	store.SaveRun(Run{DemoID: "orbit"})

	n, err := store.ClearRuns("curves")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("ClearRuns() = %d, expected 1", n)
	}

	runs, _ := store.RecentRuns("curves", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.RecentRuns("orbit", 10)
	if len(runs) != 1 {
		t.Errorf("Clearing one demo affected another, got %d", len(runs))
	}

	store.SaveRun(Run{DemoID: "sequence"})
	n, err = store.ClearRuns("")
	if err != nil {
		t.Fatalf("ClearRuns(\"\") failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearRuns(\"\") = %d, expected 2", n)
	}
}

func TestStoreEmptySummaries(t *testing.T) {
	store := openTestStore(t)

	sums, err := store.Summaries()
	if err != nil {
		t.Fatalf("Summaries() failed: %v", err)
	}
	if len(sums) != 0 {
		t.Errorf("Expected no summaries, got %d", len(sums))
	}
}
