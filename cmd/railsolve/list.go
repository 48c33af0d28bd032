package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/railsolve/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available puzzles",
	Long:  `Shows the puzzles found in the levels directory and the registered search strategies.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	lvls, err := newLoader().LoadAll()
	if err != nil {
		fail("loading levels: %v", err)
	}

	if len(lvls) == 0 {
		fmt.Printf("No puzzles found in %s.\n", cfg.Levels.Dir)
	} else {
		fmt.Println("Available puzzles:")
		fmt.Println()

		// Calculate column widths
		maxIDLen := 2 // "ID" header
		maxNameLen := 4
		for _, l := range lvls {
			maxIDLen = max(maxIDLen, len(l.ID))
			maxNameLen = max(maxNameLen, len(l.Name))
		}

		// Print header
		fmt.Printf("  %-*s  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Trains", "Max tracks")
		fmt.Printf("  %-*s  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "------", "----------")

		// Print levels
		for _, l := range lvls {
			size := fmt.Sprintf("%dx%d", l.Width, l.Height)
			fmt.Printf("  %-*s  %-*s  %-7s  %-6d  %d\n", maxIDLen, l.ID, maxNameLen, l.Name, size, len(l.Trains), l.MaxTracks)
		}
	}

	fmt.Println()
	fmt.Println("Strategies:")
	for _, s := range registry.List() {
		fmt.Printf("  %-4s  %s\n", s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'railsolve solve <id>' to solve a puzzle.")
}
