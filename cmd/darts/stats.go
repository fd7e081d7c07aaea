package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/darts"
)

var flagStatsTop int

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show game statistics and top winners",
	Long: `Shows how many games were finished in each mode, how long they
took on average and who has won the most.

Examples:
  darts stats
  darts stats high-low --top 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsTop, "top", 5, "Number of winners to list")
}

func runStats(_ *cobra.Command, args []string) {
	mode := modeArg(args)
	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)

	stats, err := store.GetModeStats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	leaders, err := store.WinLeaders(mode, flagStatsTop)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving winners: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-10s  %-10s  %s\n", "Mode", "Games", "Avg throws", "Avg time", "Last played")
	fmt.Printf("  %-10s  %-6s  %-10s  %-10s  %s\n", "----", "-----", "----------", "--------", "-----------")

	for _, m := range darts.Modes() {
		if mode != "" && m != mode {
			continue
		}
		st, ok := stats[m]
		if !ok {
			fmt.Printf("  %-10s  %-6d  %-10s  %-10s  %s\n", m, 0, "-", "-", "never")
			continue
		}
		avgTime := time.Duration(st.AvgDuration * float64(time.Second)).Round(time.Second)
		fmt.Printf("  %-10s  %-6s  %-10.1f  %-10s  %s\n",
			m, humanize.Comma(int64(st.GamesCount)), st.AvgTurns, avgTime, humanize.Time(st.LastPlayed))
	}

	fmt.Println()
	if len(leaders) == 0 {
		fmt.Println("No winners yet.")
		return
	}
	fmt.Println("Top winners:")
	for i, l := range leaders {
		fmt.Printf("  %d. %-20s %s\n", i+1, l.Name, humanize.Comma(int64(l.Wins)))
	}
}
