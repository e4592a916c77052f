package storage

import (
	"errors"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

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

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("platformer", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("runner", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "platformer" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
	}

	runnerScores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runnerScores) != 1 {
		t.Errorf("Expected 1 runner score, got %d", len(runnerScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 200)

	high, err = store.HighScore("platformer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 200)
	store.SaveScore("runner", 300)
	store.SaveRun(Run{GameID: "platformer", Score: 100})

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("platformer", 10); len(scores) != 0 {
		t.Errorf("Expected 0 platformer scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("platformer", 10); len(runs) != 0 {
		t.Errorf("Expected 0 platformer runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("runner", 10); len(scores) != 1 {
		t.Error("runner scores should not be affected by clearing platformer")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	store.SaveScore("platformer", 10)
	store.SaveScore("platformer", 30)
	store.SaveScore("runner", 7)

	st, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if st.GamesCount != 2 || st.HighScore != 30 || st.TotalScore != 40 || st.AvgScore != 20 {
		t.Errorf("unexpected stats: %+v", st)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["runner"] == nil || all["runner"].HighScore != 7 {
		t.Errorf("unexpected all-games stats: %v", all)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:   "runner",
		Score:    321,
		Ticks:    600,
		Seed:     42,
		Checksum: 0xfedcba9876543210,
		Won:      true,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("run ID %q is not a UUID", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.GameID != run.GameID || got.Score != run.Score || got.Ticks != run.Ticks ||
		got.Seed != run.Seed || got.Checksum != run.Checksum || !got.Won {
		t.Errorf("RunByID() = %+v, expected %+v", got, run)
	}

	// Explicit IDs are kept
	fixed := "run-fixed"
	if id, err := store.SaveRun(Run{ID: fixed, GameID: "runner"}); err != nil || id != fixed {
		t.Errorf("SaveRun() with ID = %q, %v", id, err)
	}
	if _, err := store.SaveRun(Run{ID: fixed, GameID: "runner"}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RunByID("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("RunByID() err = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRun(Run{GameID: "platformer", Score: i})
	}
	store.SaveRun(Run{GameID: "shooter", Score: 99})

	runs, err := store.RecentRuns("platformer", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 4 || runs[2].Score != 2 {
		t.Errorf("runs not newest-first: %v", runs)
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 5 || all[0].GameID != "shooter" {
		t.Errorf("unexpected runs across games: %v", all)
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
