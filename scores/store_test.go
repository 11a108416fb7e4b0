package scores

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEmptyStoreHasZeroHighScore(t *testing.T) {
	s := openTestStore(t)

	best, err := s.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 0 {
		t.Fatalf("high score on empty store = %d, want 0", best)
	}
}

func TestSaveAndQueryScores(t *testing.T) {
	s := openTestStore(t)

	for _, run := range []struct{ level, score int }{
		{1, 150}, {1, 320}, {2, 90}, {3, 500},
	} {
		if _, err := s.SaveScore(run.level, run.score); err != nil {
			t.Fatalf("SaveScore(%d, %d): %v", run.level, run.score, err)
		}
	}

	best, err := s.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 500 {
		t.Fatalf("high score = %d, want 500", best)
	}

	levelBest, err := s.LevelHighScore(1)
	if err != nil {
		t.Fatalf("LevelHighScore: %v", err)
	}
	if levelBest != 320 {
		t.Fatalf("level 1 high score = %d, want 320", levelBest)
	}

	top, err := s.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopScores returned %d entries, want 2", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 320 {
		t.Fatalf("top scores = %d, %d, want 500, 320", top[0].Score, top[1].Score)
	}
}

func TestStoreReopensWithData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.SaveScore(4, 275); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	best, err := s.LevelHighScore(4)
	if err != nil {
		t.Fatalf("LevelHighScore: %v", err)
	}
	if best != 275 {
		t.Fatalf("level 4 high score after reopen = %d, want 275", best)
	}
}
