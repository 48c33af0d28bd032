package config

import "fmt"

// BudgetPreset represents a named search budget.
type BudgetPreset string

const (
	BudgetQuick      BudgetPreset = "quick"
	BudgetNormal     BudgetPreset = "normal"
	BudgetExhaustive BudgetPreset = "exhaustive"
)

// BudgetPresets lists the presets in increasing order of effort.
var BudgetPresets = []BudgetPreset{BudgetQuick, BudgetNormal, BudgetExhaustive}

// ParseBudgetPreset validates a preset name.
func ParseBudgetPreset(name string) (BudgetPreset, error) {
	for _, p := range BudgetPresets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown budget preset %q (want quick, normal or exhaustive)", name)
}

// ApplyBudgetPreset modifies the search config based on a budget preset.
func ApplyBudgetPreset(cfg *SearchConfig, preset BudgetPreset) {
	switch preset {
	case BudgetQuick:
		cfg.MaxIterations = 100000
		cfg.Timeout = "10s"
		cfg.MaxRounds = 50
	case BudgetNormal:
		cfg.MaxIterations = 5000000
		cfg.Timeout = "2m"
		cfg.MaxRounds = 100
	case BudgetExhaustive:
		cfg.MaxIterations = 0
		cfg.Timeout = ""
		cfg.MaxRounds = 200
	}
}
