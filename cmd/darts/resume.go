package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/platform/tui"
	"github.com/vovakirdan/tui-darts/internal/storage"
)

var flagResumeSlot string

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Continue a saved game",
	Long: `Continue scoring the game saved in a slot. Games played with
'darts' or 'darts play' are saved to the "local" slot; SSH users have a
slot named "ssh:<user>".

With no game in the slot the saved games are listed instead.

Examples:
  darts resume
  darts resume --slot ssh:ann`,
	Args: cobra.NoArgs,
	Run:  runResume,
}

func init() {
	resumeCmd.Flags().StringVar(&flagResumeSlot, "slot", storage.DefaultSlot, "Save slot")
}

func runResume(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	state, revision, err := store.LoadGameRevision(flagResumeSlot)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading saved game: %v\n", err)
		os.Exit(1)
	}
	if state == nil {
		defer store.Close()
		fmt.Printf("No game saved in slot %q.\n", flagResumeSlot)
		printSavedGames(store)
		return
	}
	if state.GameFinished {
		fmt.Printf("The game in slot %q is finished; it is shown as left.\n", flagResumeSlot)
	}

	logger, closeLog := newFileLogger(cfg)
	defer closeLog()
	logger.Info("resuming saved game", "slot", flagResumeSlot, "mode", state.Mode, "revision", revision)

	width, height := terminalSize()
	deps := tui.Deps{Store: store, Config: cfg, Logger: logger}

	final, err := tui.RunPlay(context.Background(), deps, flagResumeSlot, *state, revision, width, height)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printOutcome(final, flagResumeSlot, true)
}

// printSavedGames lists every slot with a saved game.
func printSavedGames(store *storage.Store) {
	games, err := store.ListSavedGames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saved games: %v\n", err)
		return
	}
	if len(games) == 0 {
		fmt.Println("There are no saved games. Run 'darts' to start one.")
		return
	}

	fmt.Println()
	fmt.Println("Saved games:")
	fmt.Println()
	fmt.Printf("  %-16s  %-10s  %-9s  %-14s  %s\n", "Slot", "Mode", "Status", "Saved", "Players")
	fmt.Printf("  %-16s  %-10s  %-9s  %-14s  %s\n", "----", "----", "------", "-----", "-------")
	for _, g := range games {
		status := "playing"
		if g.Finished {
			status = "finished"
		}
		fmt.Printf("  %-16s  %-10s  %-9s  %-14s  %s\n",
			g.Slot, g.Mode, status, humanize.Time(g.UpdatedAt), strings.Join(g.Players, ", "))
	}
}
