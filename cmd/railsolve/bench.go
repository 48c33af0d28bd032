package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/railsolve/internal/registry"
	"github.com/vovakirdan/railsolve/internal/storage"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve every puzzle with every strategy",
	Long: `Runs each registered strategy on every puzzle in the levels directory and
prints placed tiles, iterations and time per run.

Examples:
  railsolve bench
  railsolve bench --preset quick --no-save`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Wall-clock budget per run (0 = none)")
	benchCmd.Flags().IntVar(&flagMaxIterations, "max-iterations", 0, "Iteration budget per run (0 = unlimited)")
	benchCmd.Flags().StringVarP(&flagPreset, "preset", "p", "", "Budget preset (quick, normal, exhaustive)")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the runs")
}

func runBench(cmd *cobra.Command, args []string) {
	lvls, err := newLoader().LoadAll()
	if err != nil {
		fail("loading levels: %v", err)
	}
	if len(lvls) == 0 {
		fail("no puzzles found in %s", cfg.Levels.Dir)
	}

	opts, timeout := searchSettings(cmd)

	var store *storage.Store
	if !flagNoSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	fmt.Printf("  %-8s  %-4s  %-7s  %-12s  %-10s  %s\n", "Level", "Alg", "Placed", "Iterations", "Time", "Stop")
	fmt.Printf("  %-8s  %-4s  %-7s  %-12s  %-10s  %s\n", "-----", "---", "------", "----------", "----", "----")

	var total time.Duration
	for i := range lvls {
		lvl := &lvls[i]
		for _, s := range registry.List() {
			opts.Strategy = s.ID
			res, err := solveLevel(lvl, opts, timeout)
			if err != nil {
				logger.Error("solve failed", "level", lvl.ID, "strategy", s.ID, "error", err)
				continue
			}
			total += res.Elapsed
			recordRun(store, lvl, s.ID, res)

			placed := "-"
			if res.Found() {
				placed = fmt.Sprintf("%d", res.Best.Placed)
			}
			fmt.Printf("  %-8s  %-4s  %-7s  %-12d  %-10s  %s\n",
				lvl.ID, s.ID, placed, res.Iterations, res.Elapsed.Round(time.Millisecond), res.Stop)
		}
	}

	fmt.Println()
	fmt.Printf("Total time: %s\n", total.Round(time.Millisecond))
}
