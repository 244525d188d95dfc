package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
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

func TestStoreInMemory(t *testing.T) {
	for _, path := range []string{"", MemoryPath} {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", path, err)
		}

		if _, err := store.SaveScore("Easy", 7, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		// Reads must see the same database as writes.
		high, err := store.HighScore("Easy")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != 7 {
			t.Errorf("got high score %d, expected 7", high)
		}
		store.Close()
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	saves := []struct {
		difficulty string
		score      int
		level      int
	}{
		{"Normal", 10, 2},
		{"Normal", 5, 1},
		{"Normal", 20, 4},
		{"Hard", 50, 10},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.difficulty, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("Normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}
	want := []int{20, 10, 5}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("rank %d: got score %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].Difficulty != "Normal" {
			t.Errorf("rank %d: got difficulty %q, expected Normal", i, scores[i].Difficulty)
		}
	}
	if scores[0].Level != 4 {
		t.Errorf("got level %d, expected 4", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 50 {
		t.Errorf("got %v, expected all 4 scores led by 50", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("Easy", (i+1)*10, 0)
	}

	scores, err := store.TopScores("Easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("Hard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("got %d for empty table, expected 0", high)
	}

	store.SaveScore("Hard", 10, 2)
	store.SaveScore("Hard", 30, 6)
	store.SaveScore("Easy", 90, 18)

	high, err = store.HighScore("Hard")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("got high score %d, expected 30", high)
	}
}

func TestStoreSaveRejectsEmptyDifficulty(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore("", 1, 0); err == nil {
		t.Error("expected error for empty difficulty")
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("Normal", 4, 0)
	store.SaveScore("Normal", 8, 1)
	store.SaveScore("Hard", 3, 0)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d difficulties, expected 2", len(stats))
	}

	normal := stats["Normal"]
	if normal == nil {
		t.Fatal("missing Normal stats")
	}
	if normal.Games != 2 || normal.HighScore != 8 || normal.AvgScore != 6 {
		t.Errorf("got %+v, expected 2 games, high 8, avg 6", *normal)
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
