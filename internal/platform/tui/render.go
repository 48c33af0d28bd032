// Package tui renders puzzle states and search results for the terminal.
// Output is styled with lipgloss when stdout is a terminal and falls back
// to the plain ASCII rendering otherwise.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
)

// Renderer draws states with a theme.
type Renderer struct {
	Theme  Theme
	Styled bool
	Width  int // terminal width, 0 when unknown
}

// NewRenderer creates a renderer for f. Styling is enabled only when f
// is a terminal.
func NewRenderer(f *os.File) *Renderer {
	r := &Renderer{Theme: DefaultTheme()}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		r.Styled = true
		if w, _, err := term.GetSize(fd); err == nil {
			r.Width = w
		}
	}
	return r
}

// State renders the grid, trains and destination of s. Rendering never
// modifies the state.
func (r *Renderer) State(s *core.State) string {
	if !r.Styled {
		return core.RenderASCII(s)
	}

	trains := make(map[core.Coord]int)
	for _, t := range s.Trains {
		if !t.Arrived && s.Grid.InBounds(t.Pos) {
			trains[t.Pos] = t.Order
		}
	}

	var sb strings.Builder
	sb.WriteString(r.Theme.HUDLabel.Render("Placed: "))
	sb.WriteString(r.Theme.HUDValue.Render(fmt.Sprintf("%d", s.Placed)))
	sb.WriteString("\n")

	for y := 0; y < s.Grid.H; y++ {
		for x := 0; x < s.Grid.W; x++ {
			c := core.C(x, y)
			if order, ok := trains[c]; ok {
				sb.WriteString(r.Theme.Train.Render(fmt.Sprintf("%d", (order%10+10)%10)))
				continue
			}
			if c == s.Dest {
				sb.WriteString(r.Theme.Destination.Render("@"))
				continue
			}
			sb.WriteString(r.cellStyle(s.Grid, c).Render(string(core.Glyph(s.Grid.At(c)))))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// cellStyle picks the style for a grid cell.
func (r *Renderer) cellStyle(g *core.Grid, c core.Coord) lipgloss.Style {
	t := g.At(c)
	switch {
	case t.IsEmpty():
		return r.Theme.EmptyCell
	case t.IsObstacle():
		return r.Theme.Obstacle
	case t.IsTunnel():
		return r.Theme.Tunnel
	case t.IsJunction() && !g.IsFixed(c):
		return r.Theme.Junction
	case !g.IsFixed(c):
		return r.Theme.PlacedTrack
	default:
		return r.Theme.FixedTrack
	}
}

// Title renders a heading line.
func (r *Renderer) Title(text string) string {
	if !r.Styled {
		return text
	}
	return r.Theme.HUDTitle.Render(text)
}

// Field renders a "label: value" line.
func (r *Renderer) Field(label string, value any) string {
	v := fmt.Sprint(value)
	if !r.Styled {
		return fmt.Sprintf("%s: %s", label, v)
	}
	return r.Theme.HUDLabel.Render(label+": ") + r.Theme.HUDValue.Render(v)
}

// Verdict renders a success or failure word.
func (r *Renderer) Verdict(ok bool, text string) string {
	if !r.Styled {
		return text
	}
	if ok {
		return r.Theme.HUDGood.Render(text)
	}
	return r.Theme.HUDBad.Render(text)
}

// Truncate shortens a line to the terminal width.
func (r *Renderer) Truncate(line string) string {
	if r.Width <= 0 || lipgloss.Width(line) <= r.Width {
		return line
	}
	runes := []rune(line)
	if len(runes) > r.Width {
		runes = runes[:r.Width]
	}
	return string(runes)
}
