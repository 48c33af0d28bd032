// railsolve is a solver for railbound track-laying puzzles.
//
// Usage:
//
//	railsolve list              - List available puzzles and strategies
//	railsolve show <level>      - Render a puzzle
//	railsolve solve <level>     - Search for the cheapest track layout
//	railsolve bench             - Solve every puzzle with every strategy
//	railsolve history [level]   - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Solver config file (default: search order, then built-in)
//	--db <path>         - Run history database (default: ~/.railsolve/runs.db)
//	--levels <dir>      - Puzzle directory (default: ./levels)
//	--log-level <lvl>   - debug, info, warn or error
//	--mono              - Grayscale output
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/railsolve/internal/config"
	"github.com/vovakirdan/railsolve/internal/platform/tui"
	"github.com/vovakirdan/railsolve/internal/railbound/levels"
	"github.com/vovakirdan/railsolve/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
	flagMono      bool

	// Loaded in PersistentPreRunE
	cfg    config.SolverConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "railsolve",
	Short: "railsolve - solve railbound track-laying puzzles",
	Long: `railsolve finds the cheapest set of track tiles that brings every train
to the destination in order, without collisions or derailments.

Available commands:
  list     - Show all puzzles and search strategies
  show     - Render a puzzle
  solve    - Solve a puzzle
  bench    - Solve every puzzle with every strategy
  history  - View recorded runs

Examples:
  railsolve list
  railsolve show 1-2
  railsolve solve 1-2 --strategy dfs
  railsolve solve ./my-level.json --timeout 30s
  railsolve bench --preset quick
  railsolve history 1-2`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to solver config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with puzzle files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use grayscale styling")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads the configuration and applies global flag overrides.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadSolver(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "railsolve",
		Level:           level,
	})
	return nil
}

// newLoader returns a puzzle loader for the configured directory.
func newLoader() *levels.Loader {
	loader := levels.NewLoader(cfg.Levels.Dir)
	loader.DefaultMaxTracks = cfg.Search.DefaultMaxTracks
	return loader
}

// newRenderer returns a stdout renderer with the selected theme.
func newRenderer() *tui.Renderer {
	r := tui.NewRenderer(os.Stdout)
	if flagMono {
		r.Theme = tui.MonochromeTheme()
	}
	return r
}

// openStore opens the run history. Failure is logged and returns nil so
// solving continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
