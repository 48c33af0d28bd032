package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/railsolve/internal/config"
)

func TestLoadSolverCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	body := "search:\n  strategy: dfs\n  timeout: 5s\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.LoadSolver(path)
	require.NoError(t, err)
	require.Equal(t, "dfs", cfg.Search.Strategy)
	require.Equal(t, "debug", cfg.Log.Level)

	// Keys absent from the file keep their defaults.
	require.Equal(t, 100, cfg.Search.MaxRounds)
	require.Equal(t, 10000, cfg.Search.DefaultMaxTracks)

	d, err := cfg.Search.TimeoutDuration()
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, d)
}

func TestLoadSolverErrors(t *testing.T) {
	_, err := config.LoadSolver(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unclosed"), 0o644))
	_, err = config.LoadSolver(path)
	require.Error(t, err)
}

func TestLoadSolverEmbeddedDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.LoadSolver("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultSolverConfig(), cfg)
}

func TestTimeoutDuration(t *testing.T) {
	d, err := config.SearchConfig{}.TimeoutDuration()
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = config.SearchConfig{Timeout: "soon"}.TimeoutDuration()
	require.Error(t, err)
}

func TestBudgetPresets(t *testing.T) {
	p, err := config.ParseBudgetPreset("quick")
	require.NoError(t, err)

	cfg := config.DefaultSolverConfig().Search
	config.ApplyBudgetPreset(&cfg, p)
	require.Equal(t, 100000, cfg.MaxIterations)
	require.Equal(t, "10s", cfg.Timeout)

	config.ApplyBudgetPreset(&cfg, config.BudgetExhaustive)
	require.Zero(t, cfg.MaxIterations)
	require.Empty(t, cfg.Timeout)

	_, err = config.ParseBudgetPreset("forever")
	require.Error(t, err)
}
