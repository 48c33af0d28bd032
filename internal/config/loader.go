package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSolver loads the solver configuration.
// Search order: customPath -> ~/.railsolve/configs/solver.yaml -> ./configs/solver.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func LoadSolver(customPath string) (SolverConfig, error) {
	cfg := DefaultSolverConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("solver.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSolverConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/solver.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSolverConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSolverYAML, &cfg); err != nil {
		return DefaultSolverConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".railsolve", "configs", filename)
}
