package config

import (
	_ "embed"
)

//go:embed defaults/solver.yaml
var defaultSolverYAML []byte

// DefaultSolverConfig returns the default solver configuration.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Search: SearchConfig{
			Strategy:         "bfs",
			MaxRounds:        100,
			MaxIterations:    0,
			Timeout:          "",
			DefaultMaxTracks: 10000,
			ProgressEvery:    100000,
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DB: "~/.railsolve/runs.db",
		},
		Levels: LevelsConfig{
			Dir: "levels",
		},
	}
}
