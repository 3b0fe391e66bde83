package invasion

import (
	"sync"
	"testing"
)

func TestStatsReset(t *testing.T) {
	s := Stats{ShipsLeft: 0, Score: 900, Level: 4, HighScore: 900}
	s.Reset(3)

	if s.ShipsLeft != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("Reset(3) = %+v, expected 3 ships, score 0, level 1", s)
	}
	if s.HighScore != 900 {
		t.Errorf("HighScore = %d, expected 900 to survive a reset", s.HighScore)
	}
}

func TestHighScoreBoardNeverDecreases(t *testing.T) {
	b := NewHighScoreBoard()

	steps := []struct {
		submit   int
		expected int
	}{
		{100, 100},
		{50, 100},
		{250, 250},
		{0, 250},
	}
	for _, s := range steps {
		if got := b.Submit(s.submit); got != s.expected {
			t.Errorf("Submit(%d) = %d, expected %d", s.submit, got, s.expected)
		}
	}
	if b.Best() != 250 {
		t.Errorf("Best() = %d, expected 250", b.Best())
	}
}

func TestHighScoreBoardConcurrent(t *testing.T) {
	b := NewHighScoreBoard()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			b.Submit(score)
			_ = b.Best()
		}(i * 10)
	}
	wg.Wait()

	if b.Best() != 490 {
		t.Errorf("Best() = %d, expected 490", b.Best())
	}
}
