package search_test

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
	"github.com/vovakirdan/railsolve/internal/railbound/levels"
	"github.com/vovakirdan/railsolve/internal/railbound/search"
)

func loadLevel(t *testing.T, id string) levels.Level {
	t.Helper()
	_, filename, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(filename), "..", "levels", "testdata", "levels")
	lvl, err := levels.NewLoader(root).LoadByID(id)
	require.NoError(t, err)
	return lvl
}

var strategies = []string{search.StrategyBFS, search.StrategyDFS}

func TestSolveLevels(t *testing.T) {
	tests := []struct {
		id     string
		placed int
	}{
		{"1-1", 1},
		{"1-2", 3},
		{"2-1", 1},
		{"3-1", 1},
	}

	for _, tt := range tests {
		for _, strategy := range strategies {
			t.Run(tt.id+"/"+strategy, func(t *testing.T) {
				lvl := loadLevel(t, tt.id)
				res, err := search.Solve(context.Background(), &lvl, search.Options{Strategy: strategy})
				require.NoError(t, err)
				require.True(t, res.Found(), "expected a solution")
				require.Equal(t, tt.placed, res.Best.Placed)
				require.Equal(t, search.StopExhausted, res.Stop)
				require.True(t, res.Best.Solved())
				require.Positive(t, res.Outcomes[core.OutcomeSuccess])
			})
		}
	}
}

func TestSolveStraightPlacesStraight(t *testing.T) {
	lvl := loadLevel(t, "1-1")
	res, err := search.Solve(context.Background(), &lvl, search.Options{})
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, core.StraightH, res.Best.Grid.At(core.C(1, 0)))
}

func TestSolveZeroBudget(t *testing.T) {
	lvl := loadLevel(t, "1-1")
	lvl.MaxTracks = 0

	for _, strategy := range strategies {
		res, err := search.Solve(context.Background(), &lvl, search.Options{Strategy: strategy})
		require.NoError(t, err)
		require.Nil(t, res.Best, strategy)
		require.Equal(t, search.StopExhausted, res.Stop)
	}
}

func TestSolveWrongOrderHasNoSolution(t *testing.T) {
	lvl := loadLevel(t, "2-1")
	// The front train now has to wait for the one behind it.
	lvl.Trains[0].Order, lvl.Trains[1].Order = 2, 1

	res, err := search.Solve(context.Background(), &lvl, search.Options{})
	require.NoError(t, err)
	require.False(t, res.Found())
	require.Positive(t, res.Outcomes[core.OutcomeWrongOrder])
}

func TestSolveDeterministic(t *testing.T) {
	for _, strategy := range strategies {
		lvl := loadLevel(t, "1-2")
		opts := search.Options{Strategy: strategy}

		a, err := search.Solve(context.Background(), &lvl, opts)
		require.NoError(t, err)
		b, err := search.Solve(context.Background(), &lvl, opts)
		require.NoError(t, err)

		require.Equal(t, a.Best.Placed, b.Best.Placed)
		require.Equal(t, a.Iterations, b.Iterations)
		require.True(t, a.Best.Grid.Equal(b.Best.Grid), "%s returned different grids", strategy)
		require.Equal(t, a.Best.CellsKey(), b.Best.CellsKey())
	}
}

func TestRunIterationBudget(t *testing.T) {
	lvl := loadLevel(t, "1-2")
	res, err := search.Solve(context.Background(), &lvl, search.Options{MaxIterations: 1})
	require.NoError(t, err)
	require.Equal(t, search.StopIterations, res.Stop)
	require.Equal(t, 1, res.Iterations)
	require.Nil(t, res.Best)
}

func TestRunCanceled(t *testing.T) {
	lvl := loadLevel(t, "1-2")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.Solve(ctx, &lvl, search.Options{})
	require.NoError(t, err)
	require.Equal(t, search.StopCanceled, res.Stop)
	require.Zero(t, res.Iterations)
}

func TestRunUnknownStrategy(t *testing.T) {
	lvl := loadLevel(t, "1-1")
	_, err := search.Solve(context.Background(), &lvl, search.Options{Strategy: "astar"})
	require.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestRunDoesNotModifyRoot(t *testing.T) {
	lvl := loadLevel(t, "1-1")
	root, err := lvl.NewState()
	require.NoError(t, err)
	before := root.Clone()

	_, err = search.Run(context.Background(), root, search.Options{MaxTracks: 1})
	require.NoError(t, err)
	require.True(t, root.Grid.Equal(before.Grid))
	require.Equal(t, before.Trains, root.Trains)
}

func TestRunLogsBestSolution(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	lvl := loadLevel(t, "1-2")
	_, err := search.Solve(context.Background(), &lvl, search.Options{Logger: logger, ProgressEvery: 1})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "new best solution")
	require.Contains(t, buf.String(), "search progress")
}
