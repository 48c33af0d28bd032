// Package config provides YAML-based solver configuration loading and
// search budget presets for railsolve.
package config

import (
	"fmt"
	"time"
)

// SolverConfig contains all configuration for the solver CLI.
type SolverConfig struct {
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// SearchConfig defines the search driver budget.
type SearchConfig struct {
	Strategy         string `yaml:"strategy"`
	MaxRounds        int    `yaml:"max_rounds"`
	MaxIterations    int    `yaml:"max_iterations"` // 0 = unlimited
	Timeout          string `yaml:"timeout"`        // Go duration, empty = none
	DefaultMaxTracks int    `yaml:"default_max_tracks"`
	ProgressEvery    int    `yaml:"progress_every"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// LevelsConfig defines where puzzles are loaded from.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// TimeoutDuration parses Search.Timeout. Empty or "0" means no timeout.
func (c SearchConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" || c.Timeout == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid search.timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}
