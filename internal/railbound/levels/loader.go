// Package levels provides puzzle loading for the railbound solver.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
	"github.com/vovakirdan/railsolve/internal/railbound/levels/formats"
)

// Level represents a complete puzzle definition.
type Level struct {
	ID          string
	Name        string
	Width       int
	Height      int
	Grid        [][]int
	Destination core.Coord
	Trains      []core.Train
	MaxTracks   int
	NumberLayer [][]int
	FilePath    string
}

// NewState validates the puzzle and builds the root search state.
func (l *Level) NewState() (*core.State, error) {
	g, err := core.NewGridFromRows(l.Grid)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	if err := core.Validate(g, l.Trains, l.Destination); err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	tunnels, err := core.PairTunnels(g, l.NumberLayer)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return core.NewState(g, l.Trains, l.Destination, tunnels), nil
}

// Loader handles loading puzzles from a directory.
type Loader struct {
	Root string

	// DefaultMaxTracks replaces the built-in budget for puzzles without
	// max_tracks. Zero keeps formats.DefaultMaxTracks.
	DefaultMaxTracks int
}

// NewLoader creates a new puzzle loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all puzzle files.
// Returns levels sorted by ID for deterministic ordering. A malformed
// file is a fatal error.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return err
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single puzzle file. Puzzles without an id take the
// file name without extension.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	maxTracks := parsed.MaxTracks
	if !parsed.HasBudget && l.DefaultMaxTracks > 0 {
		maxTracks = l.DefaultMaxTracks
	}

	trains := make([]core.Train, len(parsed.Trains))
	for i, t := range parsed.Trains {
		trains[i] = core.NewTrain(core.C(t.X, t.Y), core.Dir(t.Direction), t.Order)
	}

	level := Level{
		ID:          id,
		Name:        parsed.Name,
		Height:      len(parsed.Grid),
		Grid:        parsed.Grid,
		Destination: core.C(parsed.Destination[0], parsed.Destination[1]),
		Trains:      trains,
		MaxTracks:   maxTracks,
		NumberLayer: parsed.NumberLayer,
		FilePath:    path,
	}
	if level.Height > 0 {
		level.Width = len(parsed.Grid[0])
	}
	if level.Name == "" {
		level.Name = id
	}
	return level, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Resolve loads ref as a file path when it names an existing file and as
// a level ID otherwise.
func (l *Loader) Resolve(ref string) (Level, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return l.LoadFile(ref)
	}
	return l.LoadByID(ref)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
