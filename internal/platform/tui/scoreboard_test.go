package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-darts/internal/darts"
	"github.com/vovakirdan/tui-darts/internal/storage"
)

type fakeHistory struct {
	results []storage.Result
	err     error
	modes   []darts.Mode // Modes requested, in order
}

func (f *fakeHistory) RecentResults(mode darts.Mode, limit int) ([]storage.Result, error) {
	f.modes = append(f.modes, mode)
	if f.err != nil {
		return nil, f.err
	}
	var out []storage.Result
	for _, r := range f.results {
		if mode == "" || r.Mode == mode {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHistory) WinLeaders(mode darts.Mode, limit int) ([]storage.Leader, error) {
	return []storage.Leader{{Name: "Ann", Wins: 2}}, nil
}

func historyPress(t *testing.T, m HistoryModel, msgs ...tea.Msg) HistoryModel {
	t.Helper()
	out, ok := press(t, m, msgs...).(HistoryModel)
	if !ok {
		t.Fatal("Update() did not return a HistoryModel")
	}
	return out
}

func TestHistoryShowsResults(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := &fakeHistory{results: []storage.Result{
		{Mode: darts.ModeCountdown, WinnerName: "Ann", PlayerCount: 2, Turns: 14, Duration: 95, CreatedAt: now.Add(-3 * time.Minute)},
		{Mode: darts.ModeRounds, WinnerName: "Cid", PlayerCount: 3, Turns: 30, CreatedAt: now.Add(-2 * time.Hour)},
	}}

	m := NewHistoryModel(src, "", 100, 30)
	m.now = func() time.Time { return now }
	m.updateTableRows()

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "3 minutes ago" {
		t.Errorf("when = %q, want 3 minutes ago", rows[0][0])
	}
	if rows[0][2] != "Ann" || rows[0][5] != "1m35s" {
		t.Errorf("row = %v", rows[0])
	}
	if rows[1][5] != "-" {
		t.Errorf("zero duration = %q, want -", rows[1][5])
	}

	view := m.View()
	if !strings.Contains(view, "All modes") || !strings.Contains(view, "Ann (2 wins)") {
		t.Errorf("View() missing title or leaders:\n%s", view)
	}
}

func TestHistoryModeFilter(t *testing.T) {
	src := &fakeHistory{results: []storage.Result{
		{Mode: darts.ModeCountdown, WinnerName: "Ann"},
		{Mode: darts.ModeRounds, WinnerName: "Cid"},
	}}

	m := NewHistoryModel(src, darts.ModeRounds, 100, 30)
	if got := len(m.table.Rows()); got != 1 {
		t.Fatalf("rounds rows = %d, want 1", got)
	}

	m = historyPress(t, m, keyTab) // wraps to all modes
	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("all rows = %d, want 2", got)
	}

	m = historyPress(t, m, keyShiftTab)
	want := []darts.Mode{darts.ModeRounds, "", darts.ModeRounds}
	if len(src.modes) != len(want) {
		t.Fatalf("requested modes = %v, want %v", src.modes, want)
	}
	for i := range want {
		if src.modes[i] != want[i] {
			t.Errorf("requested modes = %v, want %v", src.modes, want)
			break
		}
	}
}

func TestHistoryEmptyStates(t *testing.T) {
	tests := []struct {
		name   string
		source HistorySource
		want   string
	}{
		{"no database", nil, "unavailable"},
		{"no games", &fakeHistory{}, "No finished games"},
		{"load error", &fakeHistory{err: errors.New("locked")}, "locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewHistoryModel(tt.source, "", 100, 30)
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("View() does not mention %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestHistoryBackAndQuit(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)

	if back := historyPress(t, m, keyEsc); !back.IsGoingBack() {
		t.Error("esc should go back")
	}
	if quit := historyPress(t, m, keyRunes("q")); !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
