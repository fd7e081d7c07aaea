package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/darts"
	"github.com/vovakirdan/tui-darts/internal/platform/tui"
	"github.com/vovakirdan/tui-darts/internal/registry"
	"github.com/vovakirdan/tui-darts/internal/storage"
)

var (
	flagStart    int
	flagPreset   string
	flagLives    int
	flagRounds   int
	flagPlaySlot string
)

var playCmd = &cobra.Command{
	Use:   "play <mode> <names...>",
	Short: "Start a game",
	Long: `Start scoring a new game of the given mode for the named players.
The game replaces whatever is saved in the slot.

Controls:
  0-9        - Enter the score of a throw
  Enter      - Submit the score
  Tab        - Call higher (high-low)
  Shift+Tab  - Call lower (high-low)
  U          - Undo the last throw
  Ctrl+R     - Start over with the same players
  Q/Esc      - Quit (the game stays saved)

Countdown presets:
  301, 501, 701, 1001

Examples:
  darts play countdown Ann Bob
  darts play countdown Ann Bob --preset 301
  darts play high-low Ann Bob Cid --lives 3
  darts play rounds Ann Bob --rounds 5`,
	Args: cobra.MinimumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStart, "start", 0, "Countdown starting score")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Countdown preset: 301, 501, 701, 1001")
	playCmd.Flags().IntVar(&flagLives, "lives", 0, "High-low starting lives")
	playCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Number of rounds")
	playCmd.Flags().StringVar(&flagPlaySlot, "slot", storage.DefaultSlot, "Save slot")
	playCmd.MarkFlagsMutuallyExclusive("start", "preset")
}

func runPlay(_ *cobra.Command, args []string) {
	mode, err := darts.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'darts modes' to see available modes.")
		os.Exit(1)
	}

	cfg := mustLoadConfig()
	if err := applyPlayFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	state, err := newGame(cfg, mode, args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newFileLogger(cfg)
	defer closeLog()

	store := openStoreOrWarn(cfg)
	revision := saveNewGame(store, flagPlaySlot, state, logger)

	width, height := terminalSize()
	deps := tui.Deps{Store: store, Config: cfg, Logger: logger}

	final, err := tui.RunPlay(context.Background(), deps, flagPlaySlot, state, revision, width, height)
	closeStore(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printOutcome(final, flagPlaySlot, store != nil)
}

// applyPlayFlags layers the mode flags over the config.
func applyPlayFlags(cfg *config.Config) error {
	if err := config.ApplyCountdownPreset(cfg, config.CountdownPreset(flagPreset)); err != nil {
		return err
	}
	if flagStart != 0 {
		cfg.Countdown.StartingScore = flagStart
	}
	if flagLives != 0 {
		cfg.HighLow.StartingLives = flagLives
	}
	if flagRounds != 0 {
		cfg.Rounds.TotalRounds = flagRounds
	}
	return nil
}

// newGame validates the players and the mode setting and starts a game.
func newGame(cfg config.Config, mode darts.Mode, names []string) (darts.GameState, error) {
	info, err := registry.Lookup(string(mode))
	if err != nil {
		return darts.GameState{}, err
	}

	value := cfg.SettingFor(mode)
	if value < info.Setting.Min || value > info.Setting.Max {
		return darts.GameState{}, fmt.Errorf("%s must be between %d and %d, got %d",
			info.Setting.Label, info.Setting.Min, info.Setting.Max, value)
	}

	if len(names) < cfg.Players.Min || len(names) > cfg.Players.Max {
		return darts.GameState{}, fmt.Errorf("need %d to %d player names, got %d",
			cfg.Players.Min, cfg.Players.Max, len(names))
	}
	if err := darts.ValidateNames(names, cfg.Players.MaxNameLength); err != nil {
		return darts.GameState{}, err
	}

	s, err := darts.NewGame(names, darts.OptionsFor(mode, value))
	if err != nil {
		return darts.GameState{}, err
	}
	return darts.StartGame(s), nil
}

// saveNewGame stores the fresh game in slot and returns its revision.
func saveNewGame(store *storage.Store, slot string, state darts.GameState, logger *log.Logger) int64 {
	if store == nil {
		return 0
	}

	_, revision, err := store.LoadGameRevision(slot)
	if err != nil {
		logger.Warn("could not read saved game", "slot", slot, "error", err)
	}
	revision++

	if _, err := store.SaveGame(slot, revision, state); err != nil {
		logger.Error("could not save new game", "slot", slot, "error", err)
	}
	return revision
}

// printOutcome reports how the game was left.
func printOutcome(s darts.GameState, slot string, saved bool) {
	if winner, ok := s.Winner(); ok {
		fmt.Printf("%s won %s after %d throws.\n", winner.Name, s.Mode.Title(), s.TurnCount())
		return
	}
	if saved {
		fmt.Printf("Game saved. Run 'darts resume --slot %s' to continue.\n", slot)
	}
}
