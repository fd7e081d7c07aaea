package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/darts"
	"github.com/vovakirdan/tui-darts/internal/storage"
)

// Deps carries the services shared by every screen. Store may be nil, in
// which case nothing is saved or recorded.
type Deps struct {
	Store  *storage.Store
	Config config.Config
	Logger *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// saver, recorder and history return nil interfaces rather than interfaces
// holding a nil *storage.Store.
func (d Deps) saver() GameSaver {
	if d.Store == nil {
		return nil
	}
	return d.Store
}

func (d Deps) recorder() ResultRecorder {
	if d.Store == nil {
		return nil
	}
	return d.Store
}

func (d Deps) history() HistorySource {
	if d.Store == nil {
		return nil
	}
	return d.Store
}

// ResultRecorder stores finished games.
type ResultRecorder interface {
	RecordResult(r storage.Result) (int64, error)
}

// resultRecordedMsg reports the outcome of recording a finished game.
type resultRecordedMsg struct {
	id     int64
	winner string
	err    error
}

// PlayOptions configures a PlayModel.
type PlayOptions struct {
	Persister *Persister
	Recorder  ResultRecorder
	Logger    *log.Logger
	Width     int
	Height    int
}

// PlayModel is the Bubble Tea model for scoring a game.
type PlayModel struct {
	state     darts.GameState
	input     textinput.Model
	keys      PlayKeyMap
	help      help.Model
	persister *Persister
	recorder  ResultRecorder
	logger    *log.Logger

	status      string
	statusStyle lipgloss.Style
	statusID    int

	width      int
	height     int
	recorded   bool // Whether the current finished game has been recorded
	quitting   bool
	goingBack  bool
	quitOnBack bool
}

// NewPlayModel creates a scoring screen for state. A state that is already
// finished is assumed to have been recorded.
func NewPlayModel(state darts.GameState, opts PlayOptions) PlayModel {
	input := textinput.New()
	input.Placeholder = "0-180"
	input.CharLimit = 3
	input.Width = 5
	input.Prompt = ""
	input.Focus()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return PlayModel{
		state:     state,
		input:     input,
		keys:      DefaultPlayKeyMap(state.Mode == darts.ModeHighLow),
		help:      h,
		persister: opts.Persister,
		recorder:  opts.Recorder,
		logger:    logger,
		width:     opts.Width,
		height:    opts.Height,
		recorded:  state.GameFinished,
	}
}

// Init starts the cursor blinking.
func (m PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case resultRecordedMsg:
		if msg.err != nil {
			m.logger.Error("could not record result", "mode", m.state.Mode, "error", msg.err)
			return m, nil
		}
		m.logger.Info("result recorded", "mode", m.state.Mode, "winner", msg.winner, "id", msg.id)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Undo):
		return m.undo()

	case key.Matches(msg, m.keys.Reset):
		return m.reset()

	case key.Matches(msg, m.keys.Higher):
		return m.call(darts.DirectionHigher)

	case key.Matches(msg, m.keys.Lower):
		return m.call(darts.DirectionLower)
	}

	if !numericKey(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// numericKey reports whether msg may reach the score input: digits and
// editing keys only.
func numericKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return false
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

// submit applies the typed score for the current player.
func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m.withStatus(fmt.Sprintf("type a score from %d to %d", darts.MinThrow, darts.MaxThrow), errorStyle)
	}
	m.input.Reset()
	thrown, err := strconv.Atoi(raw)
	if err != nil {
		return m.withStatus(fmt.Sprintf("%q is not a score", raw), errorStyle)
	}

	p, ok := m.state.CurrentPlayer()
	if !ok {
		return m.withStatus("no player to score", errorStyle)
	}

	next, err := darts.Throw(m.state, p.ID, thrown)
	if err != nil {
		return m.withStatus(describeError(err), errorStyle)
	}

	status, style := throwStatus(next, p, thrown)
	return m.commit(next, status, style)
}

// throwStatus describes what thrown did for p.
func throwStatus(next darts.GameState, p darts.Player, thrown int) (string, lipgloss.Style) {
	if w, ok := next.Winner(); ok {
		return fmt.Sprintf("%s wins!", w.Name), winnerStyle
	}
	if next.LastThrowWasBust {
		if next.Mode == darts.ModeHighLow {
			return fmt.Sprintf("%s threw %d and missed the call: one life lost", p.Name, thrown), bustStyle
		}
		return fmt.Sprintf("BUST! %s stays on %d", p.Name, next.Players[next.PlayerIndex(p.ID)].Score), bustStyle
	}
	return fmt.Sprintf("%s threw %d", p.Name, thrown), okStyle
}

// undo takes back the most recent throw.
func (m PlayModel) undo() (tea.Model, tea.Cmd) {
	if m.state.TurnCount() == 0 {
		return m.withStatus("nothing to undo", subtleStyle)
	}
	return m.commit(darts.UndoLastScore(m.state), "last throw undone", okStyle)
}

// reset starts the same game over with the same players.
func (m PlayModel) reset() (tea.Model, tea.Cmd) {
	m.recorded = false
	m.input.Reset()
	return m.commit(darts.ResetGame(m.state, darts.ResetOptions{}), "new game", okStyle)
}

// call sets the current player's high-low call against the default target.
func (m PlayModel) call(dir darts.Direction) (tea.Model, tea.Cmd) {
	p, ok := m.state.CurrentPlayer()
	if !ok {
		return m, nil
	}
	target := darts.DefaultChallengeTarget(m.state)
	next, err := darts.SetHighLowChallenge(m.state, p.ID, dir, target)
	if err != nil {
		return m.withStatus(describeError(err), errorStyle)
	}
	return m.commit(next, fmt.Sprintf("%s calls %s than %d", p.Name, dir, target), okStyle)
}

// commit adopts next, queues it for saving and records the result the
// first time the game finishes.
func (m PlayModel) commit(next darts.GameState, status string, style lipgloss.Style) (tea.Model, tea.Cmd) {
	m.state = next
	m.persister.Save(next)

	var record tea.Cmd
	if next.GameFinished && !m.recorded {
		m.recorded = true
		record = m.recordCmd(next)
	}

	model, statusCmd := m.withStatus(status, style)
	return model, tea.Batch(statusCmd, record)
}

// recordCmd stores the result of a finished game off the update loop.
func (m PlayModel) recordCmd(s darts.GameState) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	recorder := m.recorder
	return func() tea.Msg {
		r, err := storage.ResultFromGame(s)
		if err != nil {
			return resultRecordedMsg{err: err}
		}
		id, err := recorder.RecordResult(r)
		return resultRecordedMsg{id: id, winner: r.WinnerName, err: err}
	}
}

// withStatus shows text on the status line until it expires.
func (m PlayModel) withStatus(text string, style lipgloss.Style) (PlayModel, tea.Cmd) {
	m.statusID++
	m.status = text
	m.statusStyle = style
	return m, clearStatusCmd(m.statusID)
}

// describeError turns an engine error into a status line.
func describeError(err error) string {
	switch {
	case errors.Is(err, darts.ErrInvalidScore):
		return fmt.Sprintf("scores run from %d to %d", darts.MinThrow, darts.MaxThrow)
	case errors.Is(err, darts.ErrGameFinished):
		return "the game is over: ctrl+r starts a new one"
	case errors.Is(err, darts.ErrNoChallengeSet):
		return "call higher (tab) or lower (shift+tab) first"
	case errors.Is(err, darts.ErrWrongPlayer):
		return "that call belongs to another player"
	case errors.Is(err, darts.ErrPlayerNotFound):
		return "unknown player"
	}
	return err.Error()
}

// View renders the scoring screen.
func (m PlayModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("D A R T S"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(renderHeader(m.state)), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(boxStyle.Render(renderPlayers(m.state)), m.width))
	b.WriteString("\n\n")

	if w, ok := m.state.Winner(); ok {
		b.WriteString(centerText(bannerStyle.Render(fmt.Sprintf("%s wins!", w.Name)), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(subtleStyle.Render("u: undo  |  ctrl+r: play again  |  esc: back"), m.width))
		b.WriteString("\n")
	} else {
		if line := renderChallenge(m.state); line != "" {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		if p, ok := m.state.CurrentPlayer(); ok {
			b.WriteString(centerText(fmt.Sprintf("Score for %s: %s", p.Name, m.input.View()), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.statusStyle.Render(m.status), m.width))
	}
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// State returns the game as currently scored.
func (m PlayModel) State() darts.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants to leave the game.
func (m PlayModel) IsGoingBack() bool {
	return m.goingBack
}

// RunPlay scores state on the terminal until the user leaves, saving to slot
// as it goes. revision is the revision already stored for the slot.
// Returns the final state.
func RunPlay(ctx context.Context, deps Deps, slot string, state darts.GameState, revision int64, width, height int) (darts.GameState, error) {
	persister := NewPersister(ctx, deps.saver(), slot, revision, deps.logger())
	defer persister.Close()

	model := NewPlayModel(state, PlayOptions{
		Persister: persister,
		Recorder:  deps.recorder(),
		Logger:    deps.logger(),
		Width:     width,
		Height:    height,
	})
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return state, err
	}

	m, ok := finalModel.(PlayModel)
	if !ok {
		return state, nil
	}
	return m.State(), nil
}
