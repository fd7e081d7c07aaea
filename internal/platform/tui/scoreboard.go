package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-darts/internal/darts"
	"github.com/vovakirdan/tui-darts/internal/storage"
)

// History layout constants
const (
	maxResults = 100 // Max results to load
	maxLeaders = 3   // Leaders shown under the table
)

// HistorySource provides finished games.
type HistorySource interface {
	RecentResults(mode darts.Mode, limit int) ([]storage.Result, error)
	WinLeaders(mode darts.Mode, limit int) ([]storage.Leader, error)
}

// HistoryModel is the Bubble Tea model for the history screen.
type HistoryModel struct {
	filters   []darts.Mode // "" means every mode
	filter    int
	source    HistorySource
	results   []storage.Result
	leaders   []storage.Leader
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	now       func() time.Time
}

// NewHistoryModel creates a new history model starting on mode, or on every
// mode if mode is empty.
func NewHistoryModel(source HistorySource, mode darts.Mode, width, height int) HistoryModel {
	filters := append([]darts.Mode{""}, darts.Modes()...)

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		filters: filters,
		source:  source,
		keys:    DefaultHistoryKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		now:     time.Now,
	}
	for i, f := range filters {
		if f == mode {
			m.filter = i
		}
	}

	// Initialize table
	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Mode", Width: 10},
		{Title: "Winner", Width: darts.MaxNameLength},
		{Title: "Players", Width: 7},
		{Title: "Throws", Width: 6},
		{Title: "Took", Width: 10},
	}

	height := m.height - 12 // Leave room for header, leaders, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches results for the current filter.
func (m *HistoryModel) load() {
	m.results, m.leaders, m.loadErr = nil, nil, nil
	if m.source != nil {
		mode := m.filters[m.filter]
		m.results, m.loadErr = m.source.RecentResults(mode, maxResults)
		if m.loadErr == nil {
			m.leaders, m.loadErr = m.source.WinLeaders(mode, maxLeaders)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current results.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			humanize.RelTime(r.CreatedAt, m.now(), "ago", "from now"),
			r.Mode.Title(),
			r.WinnerName,
			fmt.Sprintf("%d", r.PlayerCount),
			fmt.Sprintf("%d", r.Turns),
			formatDuration(r.Duration),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// formatDuration renders a game length in seconds as minutes and seconds.
func formatDuration(secs int) string {
	if secs <= 0 {
		return "-"
	}
	return (time.Duration(secs) * time.Second).String()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.filter = (m.filter + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.filter--
			if m.filter < 0 {
				m.filter = len(m.filters) - 1
			}
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// filterTitle names the current filter.
func (m HistoryModel) filterTitle() string {
	if mode := m.filters[m.filter]; mode != "" {
		return mode.Title()
	}
	return "All modes"
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	title := fmt.Sprintf("HISTORY - %s", m.filterTitle())
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	// Mode tabs
	activeTabStyle := currentStyle.Padding(0, 1)
	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		name := "All"
		if f != "" {
			name = f.Title()
		}
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = subtleStyle.Render(" " + name + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	// Table
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	// Leaders
	if len(m.leaders) > 0 {
		parts := make([]string, len(m.leaders))
		for i, l := range m.leaders {
			parts[i] = fmt.Sprintf("%d. %s (%s)", i+1, l.Name, pluralWins(l.Wins))
		}
		b.WriteString(centerText(subtleStyle.Render("Most wins: "+strings.Join(parts, "   ")), m.width))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func pluralWins(n int) string {
	if n == 1 {
		return "1 win"
	}
	return humanize.Comma(int64(n)) + " wins"
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := subtleStyle.Italic(true).Padding(2, 4)
	switch {
	case m.source == nil:
		return emptyStyle.Render("History is unavailable without a database.")
	case m.loadErr != nil:
		return errorStyle.Padding(2, 4).Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No finished games yet.\nPlay one to see it here!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to setup.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back, false if quitting.
func RunHistory(deps Deps, mode darts.Mode, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(deps.history(), mode, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
