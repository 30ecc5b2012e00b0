package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoresClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("snake", "r1", 8)
	store.SaveScore("snake_fullscreen", "r2", 3)
	store.Close()

	oldPath, oldClear := flagDBPath, flagClear
	t.Cleanup(func() { flagDBPath, flagClear = oldPath, oldClear })
	flagDBPath, flagClear = dbPath, true

	if err := runScores(scoresCmd, []string{"snake"}); err != nil {
		t.Fatalf("runScores(--clear) failed: %v", err)
	}

	store, err = storage.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("snake"); high != 0 {
		t.Errorf("snake high score = %d after clear, expected 0", high)
	}
	if high, _ := store.HighScore("snake_fullscreen"); high != 3 {
		t.Errorf("snake_fullscreen high score = %d, other variants must be kept", high)
	}
}

func TestScoresUnknownVariant(t *testing.T) {
	if err := runScores(scoresCmd, []string{"tetris"}); err == nil {
		t.Error("unknown variant should be an error")
	}
}
