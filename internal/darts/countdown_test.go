package darts

import (
	"errors"
	"testing"
)

func TestIsBust(t *testing.T) {
	tests := []struct {
		current, thrown int
		want            bool
	}{
		{50, 51, true},
		{50, 49, true}, // leaves 1
		{50, 50, false},
		{50, 48, false},
		{2, 1, true},
		{2, 2, false},
		{501, 180, false},
		{0, 0, false},
		{1, 0, true},
	}

	for _, tt := range tests {
		if got := IsBust(tt.current, tt.thrown); got != tt.want {
			t.Errorf("IsBust(%d, %d) = %v, want %v", tt.current, tt.thrown, got, tt.want)
		}
	}
}

func TestCountdownBustThenWin(t *testing.T) {
	fixClock(t, 1_000, 10)
	s := newTestGame(t, ModeCountdown, 50, "Alice", "Bob")

	s = mustThrow(t, s, 0, 51)
	alice := s.Players[0]
	if alice.Score != 50 {
		t.Errorf("score after bust = %d, want 50", alice.Score)
	}
	if !s.LastThrowWasBust {
		t.Error("LastThrowWasBust = false, want true")
	}
	if s.CurrentPlayerIndex != 0 {
		t.Errorf("CurrentPlayerIndex = %d, want 0 after bust", s.CurrentPlayerIndex)
	}
	if len(alice.ScoreHistory) != 1 || alice.ScoreHistory[0].Score != 51 || alice.ScoreHistory[0].PreviousScore != 50 {
		t.Errorf("bust history = %+v", alice.ScoreHistory)
	}

	s = mustThrow(t, s, 0, 50)
	alice = s.Players[0]
	if alice.Score != 0 || !alice.IsWinner {
		t.Errorf("Alice score = %d winner = %v, want 0 true", alice.Score, alice.IsWinner)
	}
	if !s.GameFinished {
		t.Error("GameFinished = false, want true")
	}
	if w, ok := s.Winner(); !ok || w.ID != alice.ID {
		t.Errorf("Winner() = %+v, %v, want Alice", w, ok)
	}
	if s.LastThrowWasBust {
		t.Error("LastThrowWasBust should be cleared by a successful throw")
	}
	if alice.ScoreHistory[1].TurnNumber != 2 {
		t.Errorf("TurnNumber = %d, want 2", alice.ScoreHistory[1].TurnNumber)
	}
}

func TestCountdownBustNeverChangesScoreOrTurn(t *testing.T) {
	for thrown := MinThrow; thrown <= MaxThrow; thrown++ {
		if !IsBust(60, thrown) {
			continue
		}
		s := newTestGame(t, ModeCountdown, 60, "A", "B")
		next := mustThrow(t, s, 0, thrown)
		if next.Players[0].Score != s.Players[0].TurnStartScore {
			t.Errorf("thrown %d: score = %d, want %d", thrown, next.Players[0].Score, s.Players[0].TurnStartScore)
		}
		if next.CurrentPlayerIndex != 0 {
			t.Errorf("thrown %d: turn advanced to %d", thrown, next.CurrentPlayerIndex)
		}
	}
}

func TestCountdownSuccessAdvances(t *testing.T) {
	s := newTestGame(t, ModeCountdown, 501, "A", "B")

	s = mustThrow(t, s, 0, 100)
	if s.Players[0].Score != 401 {
		t.Errorf("score = %d, want 401", s.Players[0].Score)
	}
	if s.CurrentPlayerIndex != 1 {
		t.Errorf("CurrentPlayerIndex = %d, want 1", s.CurrentPlayerIndex)
	}
	if s.Players[1].TurnStartScore != 501 {
		t.Errorf("incoming TurnStartScore = %d, want 501", s.Players[1].TurnStartScore)
	}

	s = mustThrow(t, s, 1, 60)
	if s.CurrentPlayerIndex != 0 {
		t.Errorf("CurrentPlayerIndex = %d, want 0", s.CurrentPlayerIndex)
	}
	if s.Players[0].TurnStartScore != 401 {
		t.Errorf("TurnStartScore = %d, want 401", s.Players[0].TurnStartScore)
	}
}

func TestCountdownHistoryMonotonic(t *testing.T) {
	fixClock(t, 0, 1)
	s := newTestGame(t, ModeCountdown, 501, "A", "B")
	throws := []int{20, 40, 60, 26, 45}
	for _, v := range throws {
		s = mustThrow(t, s, 0, v)
		s = mustThrow(t, s, 1, 1)
	}

	h := s.Players[0].ScoreHistory
	if len(h) != len(throws) {
		t.Fatalf("history length = %d, want %d", len(h), len(throws))
	}
	for i, e := range h {
		if e.TurnNumber != i+1 {
			t.Errorf("entry %d TurnNumber = %d, want %d", i, e.TurnNumber, i+1)
		}
		if i > 0 && e.Seq <= h[i-1].Seq {
			t.Errorf("entry %d Seq %d not after %d", i, e.Seq, h[i-1].Seq)
		}
	}
}

func TestCountdownDoesNotMutateInput(t *testing.T) {
	s := newTestGame(t, ModeCountdown, 501, "A", "B")
	_ = mustThrow(t, s, 0, 60)

	if s.Players[0].Score != 501 || len(s.Players[0].ScoreHistory) != 0 || s.CurrentPlayerIndex != 0 {
		t.Errorf("input state mutated: %+v", s.Players[0])
	}
}

func TestCountdownErrors(t *testing.T) {
	s := newTestGame(t, ModeCountdown, 501, "A", "B")
	finished := s
	finished.GameFinished = true
	hl := newTestGame(t, ModeHighLow, 3, "A", "B")

	tests := []struct {
		name     string
		state    GameState
		playerID string
		thrown   int
		want     error
	}{
		{"negative", s, s.Players[0].ID, -1, ErrInvalidScore},
		{"too high", s, s.Players[0].ID, 181, ErrInvalidScore},
		{"unknown player", s, "nobody", 20, ErrPlayerNotFound},
		{"wrong mode", hl, hl.Players[0].ID, 20, ErrInvalidMode},
		{"finished", finished, s.Players[0].ID, 20, ErrGameFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UpdatePlayerScore(tt.state, tt.playerID, tt.thrown)
			if !errors.Is(err, tt.want) {
				t.Errorf("UpdatePlayerScore() error = %v, want %v", err, tt.want)
			}
		})
	}
}
