// Package tui provides the Bubble Tea front end for the darts scorekeeper.
// It handles game setup, score entry, history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a transient status line stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg is sent when the status line with the given id expires.
// Newer status lines carry a higher id and are left alone.
type clearStatusMsg struct {
	id int
}

// clearStatusCmd returns a Bubble Tea command that expires status id.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
