package tui

import (
	"strconv"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-darts/internal/storage"
)

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
	keyCtrlN    = tea.KeyMsg{Type: tea.KeyCtrlN}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msgs to m in order and returns the resulting model.
func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

// score types v digit by digit and submits it.
func score(v int) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range strconv.Itoa(v) {
		msgs = append(msgs, keyRunes(string(r)))
	}
	return append(msgs, keyEnter)
}

type fakeRecorder struct {
	mu      sync.Mutex
	results []storage.Result
}

func (f *fakeRecorder) RecordResult(r storage.Result) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, r)
	return int64(len(f.results)), nil
}
