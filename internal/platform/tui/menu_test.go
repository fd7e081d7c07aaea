package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/darts"
)

func setupPress(t *testing.T, m SetupModel, msgs ...tea.Msg) SetupModel {
	t.Helper()
	out, ok := press(t, m, msgs...).(SetupModel)
	if !ok {
		t.Fatal("Update() did not return a SetupModel")
	}
	return out
}

func TestSetupListsModesInOrder(t *testing.T) {
	m := NewSetupModel(config.Default(), 80, 24)
	want := []string{string(darts.ModeCountdown), string(darts.ModeHighLow), string(darts.ModeRounds)}
	if len(m.modes) != len(want) {
		t.Fatalf("modes = %d, want %d", len(m.modes), len(want))
	}
	for i, id := range want {
		if m.modes[i].ID != id {
			t.Errorf("modes[%d] = %s, want %s", i, m.modes[i].ID, id)
		}
	}
}

func TestSetupStartsGame(t *testing.T) {
	cfg := config.Default()
	cfg.Countdown.StartingScore = 301

	m := NewSetupModel(cfg, 80, 24)
	m = setupPress(t, m, keyEnter) // countdown
	if m.stage != stageForm {
		t.Fatal("enter should open the form")
	}
	if got := m.setting.Value(); got != "301" {
		t.Errorf("setting = %q, want configured 301", got)
	}

	m = setupPress(t, m, keyRunes("Ann"), keyTab, keyRunes("Bob"), keyEnter)
	game := m.Game()
	if game == nil {
		t.Fatalf("Game() = nil, error %q", m.errMsg)
	}
	if game.Mode != darts.ModeCountdown || game.StartingScore != 301 {
		t.Errorf("game = %s from %d, want countdown from 301", game.Mode, game.StartingScore)
	}
	if len(game.Players) != 2 || game.Players[0].Name != "Ann" || game.Players[1].Name != "Bob" {
		t.Errorf("players = %+v", game.Players)
	}
}

func TestSetupRoundsWithThreePlayers(t *testing.T) {
	m := NewSetupModel(config.Default(), 80, 24)
	m = setupPress(t, m, keyRunes("j"), keyRunes("j"), keyEnter) // rounds
	m = setupPress(t, m, keyCtrlN)
	if len(m.names) != 3 || m.focus != 3 {
		t.Fatalf("names = %d focus = %d, want 3 and 3", len(m.names), m.focus)
	}

	m = setupPress(t, m, keyRunes("Cid"), keyShiftTab, keyRunes("Bob"), keyShiftTab, keyRunes("Ann"))
	// Back to the setting field for 5 rounds.
	m = setupPress(t, m, keyShiftTab)
	if m.focus != 0 {
		t.Fatalf("focus = %d, want the setting", m.focus)
	}
	m.setting.SetValue("")
	m = setupPress(t, m, keyRunes("x"), keyRunes("5"), keyEnter)

	game := m.Game()
	if game == nil {
		t.Fatalf("Game() = nil, error %q", m.errMsg)
	}
	if game.Mode != darts.ModeRounds || game.TotalRounds != 5 {
		t.Errorf("game = %s with %d rounds, want rounds with 5", game.Mode, game.TotalRounds)
	}
	if game.Players[2].Name != "Cid" {
		t.Errorf("third player = %s, want Cid", game.Players[2].Name)
	}
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.Msg
		value string
	}{
		{"empty name", []tea.Msg{keyRunes("Ann"), keyEnter}, ""},
		{"setting out of range", []tea.Msg{keyRunes("Ann"), keyTab, keyRunes("Bob"), keyEnter}, "1"},
		{"blank setting", []tea.Msg{keyRunes("Ann"), keyTab, keyRunes("Bob"), keyEnter}, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSetupModel(config.Default(), 80, 24)
			m = setupPress(t, m, keyEnter)
			if tt.value != "" {
				m.setting.SetValue(tt.value)
			}
			m = setupPress(t, m, tt.keys...)
			if m.Game() != nil {
				t.Error("Game() should be nil")
			}
			if m.errMsg == "" {
				t.Error("an error should be shown")
			}
		})
	}
}

func TestSetupPlayerLimits(t *testing.T) {
	cfg := config.Default()
	cfg.Players.Max = 3

	m := NewSetupModel(cfg, 80, 24)
	m = setupPress(t, m, keyEnter, keyCtrlN, keyCtrlN)
	if len(m.names) != 3 {
		t.Errorf("names = %d, want capped at 3", len(m.names))
	}
	if m.errMsg == "" {
		t.Error("adding past the limit should explain why")
	}

	m = setupPress(t, m, tea.KeyMsg{Type: tea.KeyCtrlX}, tea.KeyMsg{Type: tea.KeyCtrlX})
	if len(m.names) != 2 {
		t.Errorf("names = %d, want floor of 2", len(m.names))
	}
}

func TestSetupNavigation(t *testing.T) {
	m := NewSetupModel(config.Default(), 80, 24)

	history := setupPress(t, m, keyRunes("h"))
	if !history.WantsHistory() {
		t.Error("h should request the history screen")
	}

	form := setupPress(t, m, keyEnter)
	back := setupPress(t, form, keyEsc)
	if back.stage != stagePickMode || back.IsQuitting() {
		t.Error("esc on the form should return to the mode list")
	}

	// Letters are names on the form, not shortcuts.
	typed := setupPress(t, form, keyRunes("q"))
	if typed.IsQuitting() {
		t.Error("q on the form should be typed, not quit")
	}

	quit := setupPress(t, m, keyRunes("q"))
	if !quit.IsQuitting() {
		t.Error("q on the mode list should quit")
	}
}
