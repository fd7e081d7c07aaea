package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/darts"
	"github.com/vovakirdan/tui-darts/internal/platform/tui"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [mode]",
	Short: "Show finished games",
	Long: `Lists the most recent finished games, newest first, optionally
for a single mode.

Examples:
  darts history
  darts history countdown --limit 5
  darts history -i              # Browse in the interactive table`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVarP(&flagHistoryTUI, "interactive", "i", false, "Browse history in the interactive table")
}

// modeArg parses the optional mode argument. An empty mode means every mode.
func modeArg(args []string) darts.Mode {
	if len(args) == 0 {
		return ""
	}
	mode, err := darts.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'darts modes' to see available modes.")
		os.Exit(1)
	}
	return mode
}

func runHistory(_ *cobra.Command, args []string) {
	mode := modeArg(args)
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	if flagHistoryTUI {
		width, height := terminalSize()
		_, err := tui.RunHistory(tui.Deps{Store: store, Config: cfg}, mode, width, height)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.RecentResults(mode, flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := "All modes"
	if mode != "" {
		title = mode.Title()
	}
	fmt.Printf("Finished games - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Println("Run 'darts' to score your first game!")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-20s  %-7s  %-6s  %s\n", "When", "Mode", "Winner", "Players", "Throws", "Took")
	fmt.Printf("  %-16s  %-10s  %-20s  %-7s  %-6s  %s\n", "----", "----", "------", "-------", "------", "----")

	for _, r := range results {
		took := "-"
		if r.Duration > 0 {
			took = (time.Duration(r.Duration) * time.Second).String()
		}
		fmt.Printf("  %-16s  %-10s  %-20s  %-7d  %-6d  %s\n",
			humanize.Time(r.CreatedAt), r.Mode, r.WinnerName, r.PlayerCount, r.Turns, took)
	}
}
