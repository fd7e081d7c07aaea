package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all game modes",
	Long:  `Shows the game modes the scorekeeper supports and the setting each is played with.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Setting", "Rules")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-------", "-----")

	for _, m := range modes {
		setting := fmt.Sprintf("%s %d", m.Setting.Label, m.Setting.Default)
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, m.ID, setting, m.Summary)
	}

	fmt.Println()
	fmt.Println("Run 'darts play <id> <names...>' to start a game.")
}
