package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.darts/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHSlot returns the save slot used for an SSH user. Every user gets one
// game that survives reconnecting.
func SSHSlot(user string) string {
	return "ssh:" + user
}

// SSHServer wraps a Wish SSH server serving one scorekeeper per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	deps   Deps
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// The store in deps stays owned by the caller.
func NewSSHServer(cfg SSHServerConfig, deps Deps) (*SSHServer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "darts-ssh",
		})
		deps.Logger = logger
	}
	if deps.Store == nil {
		logger.Warn("no database: games will not be saved")
	}

	srv := &SSHServer{
		config: cfg,
		deps:   deps,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".darts", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	deps := s.deps
	deps.Logger = s.logger.With("user", sshSession.User())

	// Create session model that handles setup + play flow
	model := NewSessionModel(sshSession.Context(), deps, SSHSlot(sshSession.User()), pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenSetup sessionScreen = iota
	screenPlay
	screenHistory
)

// SessionModel manages the full scorekeeper flow: setup -> play -> setup,
// with the history screen reachable from setup. A game left unfinished in
// the session's slot is resumed on start.
// This is the top-level model used for SSH sessions and bare `darts`.
type SessionModel struct {
	ctx       context.Context
	deps      Deps
	slot      string
	revision  int64 // Last revision written to slot
	width     int
	height    int
	screen    sessionScreen
	setup     SetupModel
	play      PlayModel
	history   HistoryModel
	persister *Persister
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(ctx context.Context, deps Deps, slot string, width, height int) SessionModel {
	m := SessionModel{
		ctx:    ctx,
		deps:   deps,
		slot:   slot,
		width:  width,
		height: height,
		setup:  NewSetupModel(deps.Config, width, height),
	}

	if deps.Store == nil {
		return m
	}
	state, revision, err := deps.Store.LoadGameRevision(slot)
	if err != nil {
		deps.logger().Warn("could not load saved game", "slot", slot, "error", err)
		return m
	}
	m.revision = revision
	if state != nil && !state.GameFinished {
		deps.logger().Info("resuming saved game", "slot", slot, "mode", state.Mode, "revision", revision)
		m = m.startPlay(*state)
	}
	return m
}

// startPlay switches to the scoring screen for state.
func (m SessionModel) startPlay(state darts.GameState) SessionModel {
	m.persister = NewPersister(m.ctx, m.deps.saver(), m.slot, m.revision, m.deps.logger())
	m.play = NewPlayModel(state, PlayOptions{
		Persister: m.persister,
		Recorder:  m.deps.recorder(),
		Logger:    m.deps.logger(),
		Width:     m.width,
		Height:    m.height,
	})
	m.screen = screenPlay
	return m
}

// stopPlay flushes and stops the persister of the current game.
func (m SessionModel) stopPlay() SessionModel {
	if m.persister != nil {
		m.revision = m.persister.Revision()
		m.persister.Close()
		m.persister = nil
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenPlay {
		return m.play.Init()
	}
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates on the setup screen.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	newSetup, cmd := m.setup.Update(msg)
	if setup, ok := newSetup.(SetupModel); ok {
		m.setup = setup
	}

	// Check if user quit
	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.setup.WantsHistory() {
		m.history = NewHistoryModel(m.deps.history(), "", m.width, m.height)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	// Check if a game was started
	if game := m.setup.Game(); game != nil {
		m.deps.logger().Info("game started", "slot", m.slot, "mode", game.Mode, "players", len(game.Players))
		m = m.startPlay(*game)
		m.persister.Save(*game)
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates on the scoring screen.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPlay, cmd := m.play.Update(msg)
	if play, ok := newPlay.(PlayModel); ok {
		m.play = play
	}

	// Check if user quit entirely
	if m.play.IsQuitting() {
		m = m.stopPlay()
		m.quitting = true
		return m, tea.Quit
	}

	// Check if user left the game (back to setup)
	if m.play.IsGoingBack() {
		m = m.stopPlay()
		m.setup = NewSetupModel(m.deps.Config, m.width, m.height)
		m.screen = screenSetup
		return m, m.setup.Init()
	}

	return m, cmd
}

// updateHistory handles updates on the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	if history, ok := newHistory.(HistoryModel); ok {
		m.history = history
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		m.setup = NewSetupModel(m.deps.Config, m.width, m.height)
		m.screen = screenSetup
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenHistory:
		return m.history.View()
	}
	return m.setup.View()
}

// Close stops the persister of a game still on screen.
func (m SessionModel) Close() {
	m.stopPlay()
}

// RunSession runs the full setup, play and history flow on the terminal,
// saving games to slot.
func RunSession(ctx context.Context, deps Deps, slot string, width, height int) error {
	model := NewSessionModel(ctx, deps, slot, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if m, ok := finalModel.(SessionModel); ok {
		m.Close()
	} else {
		model.Close()
	}
	return err
}
