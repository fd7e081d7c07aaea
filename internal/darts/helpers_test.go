package darts

import (
	"testing"
	"time"
)

// fixClock makes the engine clock start at startMs and advance by stepMs on
// every read.
func fixClock(t *testing.T, startMs, stepMs int64) {
	t.Helper()
	ms := startMs
	prev := timeNow
	timeNow = func() time.Time {
		v := ms
		ms += stepMs
		return time.UnixMilli(v)
	}
	t.Cleanup(func() { timeNow = prev })
}

func newTestGame(t *testing.T, mode Mode, setting int, names ...string) GameState {
	t.Helper()
	s, err := NewGame(names, OptionsFor(mode, setting))
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return StartGame(s)
}

func mustThrow(t *testing.T, s GameState, playerIdx, thrown int) GameState {
	t.Helper()
	next, err := Throw(s, s.Players[playerIdx].ID, thrown)
	if err != nil {
		t.Fatalf("Throw(%s, %d) failed: %v", s.Players[playerIdx].Name, thrown, err)
	}
	return next
}

func mustChallenge(t *testing.T, s GameState, playerIdx int, dir Direction, target int) GameState {
	t.Helper()
	next, err := SetHighLowChallenge(s, s.Players[playerIdx].ID, dir, target)
	if err != nil {
		t.Fatalf("SetHighLowChallenge() failed: %v", err)
	}
	return next
}
