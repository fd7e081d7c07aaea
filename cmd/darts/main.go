// darts is a terminal scorekeeper for darts games.
//
// Usage:
//
//	darts                    - Set up and score games interactively
//	darts modes              - List game modes
//	darts play <mode> <names...>
//	                         - Start a game straight away
//	darts resume             - Continue the saved game
//	darts history [mode]     - Show finished games
//	darts stats              - Show per-mode statistics and top winners
//	darts serve              - Start SSH server for remote scoring
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.darts/config.yaml)
//	--db <path>         - Database path (default: from config, ~/.darts/darts.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/platform/tui"
	"github.com/vovakirdan/tui-darts/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "darts",
	Short: "TUI Darts - Keep darts scores in your terminal",
	Long: `TUI Darts keeps score for countdown, high-low and rounds games
right in your terminal. Games are saved after every throw and can be
resumed later.

Run without a command to pick a mode and enter players interactively.

Examples:
  darts
  darts modes
  darts play countdown Ann Bob --preset 301
  darts resume
  darts history rounds
  darts serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runSession,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to darts database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

func runSession(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	logger, closeLog := newFileLogger(cfg)
	defer closeLog()

	store := openStoreOrWarn(cfg)
	width, height := terminalSize()
	deps := tui.Deps{Store: store, Config: cfg, Logger: logger}

	err := tui.RunSession(context.Background(), deps, storage.DefaultSlot, width, height)
	closeStore(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
