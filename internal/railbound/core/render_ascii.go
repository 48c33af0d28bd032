package core

import (
	"fmt"
	"strings"
)

// edgeGlyphs maps an edge mask (bit d set when edge d is open) to a
// box-drawing rune.
var edgeGlyphs = map[uint8]rune{
	maskOf(DirTop, DirBottom):            '│',
	maskOf(DirLeft, DirRight):            '─',
	maskOf(DirRight, DirBottom):          '┌',
	maskOf(DirBottom, DirLeft):           '┐',
	maskOf(DirTop, DirLeft):              '┘',
	maskOf(DirTop, DirRight):             '└',
	maskOf(DirTop, DirBottom, DirLeft):   '┤',
	maskOf(DirTop, DirBottom, DirRight):  '├',
	maskOf(DirLeft, DirRight, DirBottom): '┬',
	maskOf(DirLeft, DirRight, DirTop):    '┴',
}

func maskOf(dirs ...Dir) uint8 {
	var m uint8
	for _, d := range dirs {
		m |= 1 << d
	}
	return m
}

// Glyph returns the single-rune picture of a tile.
func Glyph(t Tile) rune {
	switch {
	case t == Empty:
		return '.'
	case t == Rock:
		return '#'
	case t == Fence:
		return 'x'
	case t.IsTunnel():
		side, _ := t.TunnelSide()
		return [4]rune{'^', '>', 'v', '<'}[side]
	}
	var m uint8
	for _, d := range AllDirs {
		if t.Open(d) {
			m |= 1 << d
		}
	}
	if r, ok := edgeGlyphs[m]; ok {
		return r
	}
	return '?'
}

// RenderGrid draws the tiles only, one row per line.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(Glyph(g.At(C(x, y))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderASCII creates an ASCII representation of a state.
// This is used for debugging, testing and the plain CLI output. It never
// modifies the state.
//
// Format:
//   - Header with placed tiles and arrivals
//   - Tiles as box-drawing glyphs, '.' empty, '#' rock, 'x' fence,
//     tunnels as arrows towards their open edge
//   - Trains on the grid as their order (last digit), destination '@'
func RenderASCII(s *State) string {
	var sb strings.Builder

	trains := make(map[Coord]int)
	for _, t := range s.Trains {
		if !t.Arrived && s.Grid.InBounds(t.Pos) {
			trains[t.Pos] = t.Order
		}
	}

	sb.WriteString(fmt.Sprintf("Placed: %d | Arrived: %d/%d\n",
		s.Placed, countArrived(s.Trains), len(s.Trains)))

	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			c := C(x, y)
			if order, ok := trains[c]; ok {
				sb.WriteRune(rune('0' + abs(order)%10))
				continue
			}
			if c == s.Dest {
				sb.WriteRune('@')
				continue
			}
			sb.WriteRune(Glyph(s.Grid.At(c)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func countArrived(trains []Train) int {
	n := 0
	for _, t := range trains {
		if t.Arrived {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
