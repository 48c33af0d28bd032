// Package core provides the track-laying engine for railbound puzzles:
// the tile catalog, the grid, trains, the lock-step simulator and the
// tile placement generator. This package is UI-agnostic and deterministic.
package core

// Dir represents a direction of travel.
// Values match the puzzle wire format (0..3, clockwise from top).
type Dir uint8

const (
	DirTop Dir = iota
	DirRight
	DirBottom
	DirLeft
)

// noDir marks an undefined direction in flow tables and hints.
const noDir Dir = 255

// AllDirs lists the four directions in clockwise order.
var AllDirs = [4]Dir{DirTop, DirRight, DirBottom, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirTop:
		return "Top"
	case DirRight:
		return "Right"
	case DirBottom:
		return "Bottom"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Dir) Valid() bool {
	return d <= DirLeft
}

// Delta returns the unit offset for moving one step in this direction.
// Top decreases Y, Bottom increases Y (screen coordinates).
func (d Dir) Delta() Coord {
	switch d {
	case DirTop:
		return Coord{X: 0, Y: -1}
	case DirRight:
		return Coord{X: 1, Y: 0}
	case DirBottom:
		return Coord{X: 0, Y: 1}
	case DirLeft:
		return Coord{X: -1, Y: 0}
	default:
		return Coord{}
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirTop:
		return DirBottom
	case DirRight:
		return DirLeft
	case DirBottom:
		return DirTop
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Rotate turns the direction clockwise by n quarter turns.
// Negative n turns counter-clockwise.
func (d Dir) Rotate(n int) Dir {
	if !d.Valid() {
		return d
	}
	return Dir(((int(d)+n)%4 + 4) % 4)
}

// mirror reflects the direction across the horizontal axis (Top <-> Bottom).
func (d Dir) mirror() Dir {
	switch d {
	case DirTop:
		return DirBottom
	case DirBottom:
		return DirTop
	default:
		return d
	}
}
