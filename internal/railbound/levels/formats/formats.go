// Package formats provides pluggable puzzle file format parsers.
// JSON is the native puzzle format; YAML carries the same schema.
package formats

import (
	"errors"
	"fmt"
)

// DefaultMaxTracks is the tile budget of a puzzle that does not set one.
const DefaultMaxTracks = 10000

// ErrMissingKey is returned when a required puzzle key is absent.
var ErrMissingKey = errors.New("missing required key")

// Train is a train definition as it appears in puzzle files.
type Train struct {
	X         int `json:"x" yaml:"x"`
	Y         int `json:"y" yaml:"y"`
	Direction int `json:"direction" yaml:"direction"`
	Order     int `json:"order" yaml:"order"`
}

// Level represents a parsed puzzle ready for use.
type Level struct {
	ID          string
	Name        string
	Grid        [][]int
	Destination [2]int
	Trains      []Train
	MaxTracks   int
	HasBudget   bool // MaxTracks was present in the file
	NumberLayer [][]int
}

// document is the on-disk schema shared by every format.
type document struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Grid        [][]int `json:"grid" yaml:"grid"`
	Destination []int   `json:"destination" yaml:"destination"`
	Trains      []Train `json:"trains" yaml:"trains"`
	MaxTracks   *int    `json:"max_tracks" yaml:"max_tracks"`
	NumberLayer [][]int `json:"numberLayer" yaml:"number_layer"`
}

// toLevel checks required keys and converts the document.
func (d document) toLevel() (Level, error) {
	switch {
	case d.Grid == nil:
		return Level{}, fmt.Errorf("%w: grid", ErrMissingKey)
	case d.Destination == nil:
		return Level{}, fmt.Errorf("%w: destination", ErrMissingKey)
	case d.Trains == nil:
		return Level{}, fmt.Errorf("%w: trains", ErrMissingKey)
	}
	if len(d.Destination) != 2 {
		return Level{}, fmt.Errorf("destination must be [x, y], got %d values", len(d.Destination))
	}
	for i, t := range d.Trains {
		if t.Direction < 0 || t.Direction > 3 {
			return Level{}, fmt.Errorf("train %d: direction %d not in 0..3", i, t.Direction)
		}
	}

	level := Level{
		ID:          d.ID,
		Name:        d.Name,
		Grid:        d.Grid,
		Destination: [2]int{d.Destination[0], d.Destination[1]},
		Trains:      d.Trains,
		MaxTracks:   DefaultMaxTracks,
		NumberLayer: d.NumberLayer,
	}
	if d.MaxTracks != nil {
		if *d.MaxTracks < 0 {
			return Level{}, fmt.Errorf("max_tracks must not be negative, got %d", *d.MaxTracks)
		}
		level.MaxTracks = *d.MaxTracks
		level.HasBudget = true
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".json", ".yaml", ".yml"}
}

// Parse routes to the parser for the given extension.
func Parse(data []byte, ext string) (Level, error) {
	switch ext {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
