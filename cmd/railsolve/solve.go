package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/railsolve/internal/config"
	"github.com/vovakirdan/railsolve/internal/railbound/core"
	"github.com/vovakirdan/railsolve/internal/railbound/levels"
	"github.com/vovakirdan/railsolve/internal/railbound/search"
	"github.com/vovakirdan/railsolve/internal/storage"
)

var (
	flagStrategy      string
	flagTimeout       time.Duration
	flagMaxIterations int
	flagMaxRounds     int
	flagPreset        string
	flagNoSave        bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <level|file>",
	Short: "Solve a puzzle",
	Long: `Runs the branch-and-bound search on a puzzle and prints the layout with
the fewest placed tiles among the solutions found.

Budget presets:
  quick       - 100k iterations, 10s
  normal      - 5M iterations, 2m
  exhaustive  - no limits

Examples:
  railsolve solve 1-2
  railsolve solve 1-2 --strategy dfs
  railsolve solve ./my-level.json --preset quick
  railsolve solve 3-1 --timeout 30s --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "Search strategy (bfs, dfs)")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Wall-clock budget (0 = none)")
	solveCmd.Flags().IntVar(&flagMaxIterations, "max-iterations", 0, "Iteration budget (0 = unlimited)")
	solveCmd.Flags().IntVar(&flagMaxRounds, "max-rounds", 0, "Simulation rounds per state")
	solveCmd.Flags().StringVarP(&flagPreset, "preset", "p", "", "Budget preset (quick, normal, exhaustive)")
	solveCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

// searchSettings merges config, preset and flags into search options and
// a timeout.
func searchSettings(cmd *cobra.Command) (search.Options, time.Duration) {
	sc := cfg.Search
	if flagPreset != "" {
		preset, err := config.ParseBudgetPreset(flagPreset)
		if err != nil {
			fail("%v", err)
		}
		config.ApplyBudgetPreset(&sc, preset)
	}

	timeout, err := sc.TimeoutDuration()
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		sc.Strategy = flagStrategy
	}
	if flags.Changed("max-iterations") {
		sc.MaxIterations = flagMaxIterations
	}
	if flags.Changed("max-rounds") {
		sc.MaxRounds = flagMaxRounds
	}
	if flags.Changed("timeout") {
		timeout = flagTimeout
	}

	return search.Options{
		Strategy:      sc.Strategy,
		MaxRounds:     sc.MaxRounds,
		MaxIterations: sc.MaxIterations,
		ProgressEvery: sc.ProgressEvery,
		Logger:        logger,
	}, timeout
}

// solveLevel runs one search with an optional wall-clock budget. Ctrl-C
// stops the search and keeps the best solution so far.
func solveLevel(lvl *levels.Level, opts search.Options, timeout time.Duration) (search.Result, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return search.Solve(ctx, lvl, opts)
}

// recordRun stores a result in the run history.
func recordRun(store *storage.Store, lvl *levels.Level, strategy string, res search.Result) {
	if store == nil {
		return
	}
	run := storage.Run{
		LevelID:    lvl.ID,
		Strategy:   strategy,
		Found:      res.Found(),
		Iterations: res.Iterations,
		Generated:  res.Generated,
		Stop:       res.Stop.String(),
		Elapsed:    res.Elapsed,
	}
	if res.Found() {
		run.Placed = res.Best.Placed
		run.Solution = res.Best.Grid.Rows()
	}
	id, err := store.SaveRun(run)
	if err != nil {
		logger.Warn("could not record run", "level", lvl.ID, "error", err)
		return
	}
	logger.Debug("run recorded", "id", id, "level", lvl.ID)
}

// solutionView places the best grid under the puzzle's starting trains.
func solutionView(lvl *levels.Level, best *core.State) *core.State {
	view, err := lvl.NewState()
	if err != nil {
		return best
	}
	view.Grid = best.Grid
	view.Placed = best.Placed
	return view
}

func runSolve(cmd *cobra.Command, args []string) {
	lvl, err := newLoader().Resolve(args[0])
	if err != nil {
		fail("%v", err)
	}

	opts, timeout := searchSettings(cmd)
	if opts.Strategy == "" {
		opts.Strategy = search.StrategyBFS
	}

	logger.Info("solving", "level", lvl.ID, "strategy", opts.Strategy, "max_tracks", lvl.MaxTracks)
	res, err := solveLevel(&lvl, opts, timeout)
	if err != nil {
		fail("%v", err)
	}

	if !flagNoSave {
		if store := openStore(); store != nil {
			recordRun(store, &lvl, opts.Strategy, res)
			store.Close()
		}
	}

	r := newRenderer()
	fmt.Println(r.Title(r.Truncate(fmt.Sprintf("%s - %s", lvl.ID, lvl.Name))))
	if res.Found() {
		fmt.Println(r.Field("Result", r.Verdict(true, "solved")))
		fmt.Println(r.Field("Placed tiles", res.Best.Placed))
	} else {
		fmt.Println(r.Field("Result", r.Verdict(false, "no solution found")))
	}
	fmt.Println(r.Field("Strategy", opts.Strategy))
	fmt.Println(r.Field("Iterations", res.Iterations))
	fmt.Println(r.Field("Generated", res.Generated))
	fmt.Println(r.Field("Pruned", res.Pruned))
	fmt.Println(r.Field("Stopped", res.Stop))
	fmt.Println(r.Field("Elapsed", res.Elapsed.Round(time.Millisecond)))

	fmt.Println()
	fmt.Println("Outcomes:")
	for _, o := range core.Outcomes {
		if n := res.Outcomes[o]; n > 0 {
			fmt.Printf("  %-14s %d\n", o, n)
		}
	}

	if res.Found() {
		logger.Debug("best layout", "cells", fmt.Sprintf("%016x", res.Best.CellsKey()))
		fmt.Println()
		fmt.Print(r.State(solutionView(&lvl, res.Best)))
	}
}
