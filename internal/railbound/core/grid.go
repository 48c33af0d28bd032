package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every OutOfBoundsError.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ErrImmutable is returned when writing to a puzzle-authored cell.
var ErrImmutable = errors.New("cell is immutable")

// OutOfBoundsError reports an access outside the grid.
type OutOfBoundsError struct {
	At   Coord
	W, H int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v outside %dx%d grid", e.At, e.W, e.H)
}

// Is lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Grid represents the puzzle board as a rectangular grid of tile codes.
// Cells are stored in row-major order: index = y*W + x.
//
// The set of immutable (puzzle-authored) cells is derived once when the
// grid is created and never changes, so clones share it.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Tile // Flat array of tiles, length W*H

	fixed []bool // shared, read-only after construction
	hints []Dir  // travel direction a solver-placed straight was laid for
}

// NewGrid creates a grid from row-major tiles. Every non-Empty cell
// becomes immutable.
func NewGrid(w, h int, cells []Tile) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
		fixed: make([]bool, w*h),
		hints: make([]Dir, w*h),
	}
	copy(g.Cells, cells)
	for i, t := range g.Cells {
		g.fixed[i] = t != Empty
		g.hints[i] = noDir
	}
	return g
}

// NewGridFromRows builds a grid from rows of tile codes as they appear in
// puzzle files (grid[y][x]).
func NewGridFromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ValidationError{Code: CodeEmptyGrid, Message: "grid has no cells"}
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]Tile, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ValidationError{
				Code:    CodeRaggedGrid,
				Message: fmt.Sprintf("row %d has %d cells, want %d", y, len(row), w),
			}
		}
		for x, code := range row {
			if code < 0 || code >= int(tileCount) {
				return nil, ValidationError{
					Code:    CodeUnknownTile,
					Message: fmt.Sprintf("cell %v has unknown tile code %d", C(x, y), code),
				}
			}
			cells = append(cells, Tile(code))
		}
	}
	return NewGrid(w, h, cells), nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// mustIndex is index with a bounds check. An out-of-bounds access inside
// the engine is a logic bug and panics.
func (g *Grid) mustIndex(c Coord) int {
	if !g.InBounds(c) {
		panic(&OutOfBoundsError{At: c, W: g.W, H: g.H})
	}
	return g.index(c)
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the tile at the given coordinate.
func (g *Grid) Get(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Empty, &OutOfBoundsError{At: c, W: g.W, H: g.H}
	}
	return g.Cells[g.index(c)], nil
}

// Set places a tile at the given coordinate. Immutable cells cannot be
// overwritten.
func (g *Grid) Set(c Coord, t Tile) error {
	if !g.InBounds(c) {
		return &OutOfBoundsError{At: c, W: g.W, H: g.H}
	}
	if !t.Valid() {
		return fmt.Errorf("set %v: unknown tile code %d", c, uint8(t))
	}
	i := g.index(c)
	if g.fixed[i] {
		return fmt.Errorf("set %v: %w", c, ErrImmutable)
	}
	g.Cells[i] = t
	g.hints[i] = noDir
	return nil
}

// At returns the tile at c and panics when c is outside the grid.
func (g *Grid) At(c Coord) Tile {
	return g.Cells[g.mustIndex(c)]
}

// put writes a tile without the immutability check; callers have already
// established that the cell is solver-owned.
func (g *Grid) put(c Coord, t Tile) {
	i := g.mustIndex(c)
	g.Cells[i] = t
	g.hints[i] = noDir
}

// IsFixed reports whether c was pre-filled by the puzzle author.
func (g *Grid) IsFixed(c Coord) bool {
	return g.InBounds(c) && g.fixed[g.index(c)]
}

// IsOpen reports whether c is an Empty, solver-placeable cell.
func (g *Grid) IsOpen(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	return g.Cells[i] == Empty && !g.fixed[i]
}

// Hint returns the travel direction a solver-placed straight at c was
// laid for.
func (g *Grid) Hint(c Coord) (Dir, bool) {
	if !g.InBounds(c) {
		return noDir, false
	}
	d := g.hints[g.index(c)]
	return d, d != noDir
}

func (g *Grid) setHint(c Coord, d Dir) {
	g.hints[g.mustIndex(c)] = d
}

// IsLocallyValid checks that every given cell agrees with its neighbors:
// against a non-Empty neighbor the shared edge must connect, and an edge
// facing off the grid must be closed unless the cell is puzzle-authored.
func (g *Grid) IsLocallyValid(cells []Coord) bool {
	for _, c := range cells {
		t := g.At(c)
		fixed := g.IsFixed(c)
		for _, d := range AllDirs {
			n := c.Step(d)
			if !g.InBounds(n) {
				if t.Open(d) && !fixed {
					return false
				}
				continue
			}
			nt := g.At(n)
			if nt == Empty {
				continue
			}
			if !Connects(t, nt, d) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid's mutable cells. The immutable
// position set is shared.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	hints := make([]Dir, len(g.hints))
	copy(hints, g.hints)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
		fixed: g.fixed,
		hints: hints,
	}
}

// Equal returns true if two grids have the same dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Cells {
		if t != other.Cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the tiles as rows of codes, the puzzle file layout.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := 0; y < g.H; y++ {
		row := make([]int, g.W)
		for x := 0; x < g.W; x++ {
			row[x] = int(g.Cells[g.index(C(x, y))])
		}
		rows[y] = row
	}
	return rows
}

// OpenCount returns the number of cells still available to the solver.
func (g *Grid) OpenCount() int {
	count := 0
	for i, t := range g.Cells {
		if t == Empty && !g.fixed[i] {
			count++
		}
	}
	return count
}

// PlacedCoords returns the solver-owned cells holding a tile, ordered by
// row then column.
func (g *Grid) PlacedCoords() []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.index(C(x, y))
			if g.Cells[i] != Empty && !g.fixed[i] {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}
