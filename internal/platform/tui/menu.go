package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/darts"
	"github.com/vovakirdan/tui-darts/internal/registry"
)

type setupStage int

const (
	stagePickMode setupStage = iota
	stageForm
)

// SetupModel is the Bubble Tea model for starting a new game: pick a mode,
// set its value and enter the player names.
type SetupModel struct {
	cfg     config.Config
	modes   []registry.ModeInfo
	cursor  int
	stage   setupStage
	setting textinput.Model
	names   []textinput.Model
	focus   int // 0 is the setting, 1.. the names
	keys    SetupKeyMap
	help    help.Model
	errMsg  string
	width   int
	height  int

	game         *darts.GameState // Set when the user starts a game
	wantsHistory bool
	quitting     bool
}

// NewSetupModel creates a new setup model.
func NewSetupModel(cfg config.Config, width, height int) SetupModel {
	h := help.New()
	h.Width = width

	m := SetupModel{
		cfg:    cfg,
		modes:  registry.List(),
		keys:   DefaultSetupKeyMap().pickerKeys(),
		help:   h,
		width:  width,
		height: height,
	}
	return m
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.stage == stagePickMode {
			return m.handlePickerKey(msg)
		}
		return m.handleFormKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m.updateFocused(msg)
}

// handlePickerKey processes keyboard input while choosing a mode.
func (m SetupModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.History):
		m.wantsHistory = true
		return m, tea.Quit // Exit setup to show history

	case key.Matches(msg, m.keys.Select):
		if len(m.modes) == 0 {
			return m, nil
		}
		return m.openForm()
	}

	return m, nil
}

// openForm switches to the form for the selected mode.
func (m SetupModel) openForm() (tea.Model, tea.Cmd) {
	info := m.modes[m.cursor]
	value := m.cfg.SettingFor(darts.Mode(info.ID))
	if value == 0 {
		value = info.Setting.Default
	}

	m.setting = textinput.New()
	m.setting.Prompt = ""
	m.setting.CharLimit = 5
	m.setting.Width = 6
	m.setting.SetValue(strconv.Itoa(value))

	if len(m.names) == 0 {
		for range m.cfg.Players.Min {
			m.names = append(m.names, newNameInput(m.cfg.Players.MaxNameLength))
		}
	}

	m.stage = stageForm
	m.keys = m.keys.formKeys()
	m.errMsg = ""
	return m.focusOn(1)
}

func newNameInput(limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = limit
	return ti
}

// handleFormKey processes keyboard input on the form.
func (m SetupModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.stage = stagePickMode
		m.keys = m.keys.pickerKeys()
		m.errMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.focusOn((m.focus + 1) % (len(m.names) + 1))

	case key.Matches(msg, m.keys.Prev):
		return m.focusOn((m.focus + len(m.names)) % (len(m.names) + 1))

	case key.Matches(msg, m.keys.AddPlayer):
		if len(m.names) >= m.cfg.Players.Max {
			m.errMsg = fmt.Sprintf("at most %d players", m.cfg.Players.Max)
			return m, nil
		}
		m.names = append(m.names, newNameInput(m.cfg.Players.MaxNameLength))
		return m.focusOn(len(m.names))

	case key.Matches(msg, m.keys.DelPlayer):
		if len(m.names) <= m.cfg.Players.Min {
			m.errMsg = fmt.Sprintf("at least %d players", m.cfg.Players.Min)
			return m, nil
		}
		m.names = m.names[:len(m.names)-1]
		return m.focusOn(min(m.focus, len(m.names)))

	case key.Matches(msg, m.keys.Start):
		return m.start()
	}

	// The setting only takes digits
	if m.focus == 0 && !numericKey(msg) {
		return m, nil
	}
	return m.updateFocused(msg)
}

// focusOn moves the cursor to field i.
func (m SetupModel) focusOn(i int) (tea.Model, tea.Cmd) {
	m.focus = i
	m.setting.Blur()
	for j := range m.names {
		m.names[j].Blur()
	}
	if i == 0 {
		return m, m.setting.Focus()
	}
	return m, m.names[i-1].Focus()
}

// updateFocused passes msg to the focused input.
func (m SetupModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stage != stageForm {
		return m, nil
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.setting, cmd = m.setting.Update(msg)
		return m, cmd
	}
	m.names[m.focus-1], cmd = m.names[m.focus-1].Update(msg)
	return m, cmd
}

// start validates the form and creates the game.
func (m SetupModel) start() (tea.Model, tea.Cmd) {
	info := m.modes[m.cursor]
	mode := darts.Mode(info.ID)

	value, err := strconv.Atoi(strings.TrimSpace(m.setting.Value()))
	if err != nil || value < info.Setting.Min || value > info.Setting.Max {
		m.errMsg = fmt.Sprintf("%s must be between %d and %d", info.Setting.Label, info.Setting.Min, info.Setting.Max)
		return m, nil
	}

	names := make([]string, len(m.names))
	for i, ti := range m.names {
		names[i] = strings.TrimSpace(ti.Value())
	}
	if err := m.validateNames(names); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	s, err := darts.NewGame(names, darts.OptionsFor(mode, value))
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	s = darts.StartGame(s)
	m.game = &s
	return m, tea.Quit // Exit setup to start the game
}

// validateNames applies the engine's name rules and the configured limits.
func (m SetupModel) validateNames(names []string) error {
	if len(names) < m.cfg.Players.Min || len(names) > m.cfg.Players.Max {
		return fmt.Errorf("need %d to %d players", m.cfg.Players.Min, m.cfg.Players.Max)
	}
	err := darts.ValidateNames(names, m.cfg.Players.MaxNameLength)
	if errors.Is(err, darts.ErrInvalidName) {
		return errors.New(strings.TrimPrefix(err.Error(), darts.ErrInvalidName.Error()+": "))
	}
	return err
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  D A R T S  "), m.width))
	b.WriteString("\n\n")

	if m.stage == stagePickMode {
		b.WriteString(m.viewPicker())
	} else {
		b.WriteString(m.viewForm())
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(centerText(errorStyle.Render(m.errMsg), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m SetupModel) viewPicker() string {
	var b strings.Builder

	b.WriteString(centerText("Choose a mode", m.width))
	b.WriteString("\n\n")

	for i, info := range m.modes {
		cursor := "  "
		line := info.Title
		if i == m.cursor {
			cursor = "> "
			line = currentStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	if len(m.modes) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(subtleStyle.Render(m.modes[m.cursor].Summary), m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m SetupModel) viewForm() string {
	info := m.modes[m.cursor]

	var rows []string
	rows = append(rows, titleStyle.Render(info.Title), "")
	rows = append(rows, fmt.Sprintf("%s %-16s %s", fieldMarker(m.focus == 0), info.Setting.Label+":", m.setting.View()))
	rows = append(rows, "")
	for i, ti := range m.names {
		label := fmt.Sprintf("Player %d:", i+1)
		rows = append(rows, fmt.Sprintf("%s %-16s %s", fieldMarker(m.focus == i+1), label, ti.View()))
	}

	return centerText(boxStyle.Render(strings.Join(rows, "\n")), m.width) + "\n"
}

func fieldMarker(focused bool) string {
	if focused {
		return ">"
	}
	return " "
}

// Game returns the game the user started, or nil.
func (m SetupModel) Game() *darts.GameState {
	return m.game
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m SetupModel) WantsHistory() bool {
	return m.wantsHistory
}
