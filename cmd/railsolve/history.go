package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recorded runs",
	Long: `Display the most recent solver runs, optionally for one puzzle, with the
best known solution.

Examples:
  railsolve history
  railsolve history 1-2 --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	store := openStore()
	if store == nil {
		fail("run history unavailable at %s", cfg.Storage.DB)
	}
	defer store.Close()

	runs, err := store.RecentRuns(levelID, flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if levelID != "" {
		fmt.Printf("Run History - %s\n", levelID)
	} else {
		fmt.Println("Run History")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-8s  %-4s  %-7s  %-12s  %-10s  %s\n", "ID", "Level", "Alg", "Placed", "Iterations", "Time", "Date")
	fmt.Printf("  %-8s  %-8s  %-4s  %-7s  %-12s  %-10s  %s\n", "--", "-----", "---", "------", "----------", "----", "----")

	for _, r := range runs {
		placed := "-"
		if r.Found {
			placed = fmt.Sprintf("%d", r.Placed)
		}
		fmt.Printf("  %-8s  %-8s  %-4s  %-7s  %-12d  %-10s  %s\n",
			r.ID[:8], r.LevelID, r.Strategy, placed, r.Iterations,
			r.Elapsed.Round(time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if levelID == "" {
		return
	}

	stats, err := store.GetLevelStats(levelID)
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d, solved: %d, average time: %s\n",
		stats.RunsCount, stats.Solved, stats.AvgElapsed.Round(time.Millisecond))

	best, err := store.BestRun(levelID)
	if err != nil {
		fail("retrieving best run: %v", err)
	}
	if best != nil {
		fmt.Printf("Best: %d tiles (%s, %s)\n", best.Placed, best.Strategy, best.CreatedAt.Format("2006-01-02"))
	}
}
