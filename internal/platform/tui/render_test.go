package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
)

func testState(t *testing.T) *core.State {
	t.Helper()
	g, err := core.NewGridFromRows([][]int{{6, 0, 6}, {15, 0, 18}})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(core.C(1, 1), core.CurveBL); err != nil {
		t.Fatal(err)
	}
	trains := []core.Train{core.NewTrain(core.C(0, 0), core.DirRight, 1)}
	return core.NewState(g, trains, core.C(2, 0), nil)
}

func TestRendererPlainMatchesASCII(t *testing.T) {
	s := testState(t)
	r := &Renderer{Theme: DefaultTheme()}

	if got, want := r.State(s), core.RenderASCII(s); got != want {
		t.Errorf("plain render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if got := r.Field("Placed", 3); got != "Placed: 3" {
		t.Errorf("unexpected field %q", got)
	}
}

func TestRendererStyledContainsCells(t *testing.T) {
	s := testState(t)
	before := s.Grid.Clone()

	for _, theme := range []Theme{DefaultTheme(), MonochromeTheme()} {
		r := &Renderer{Theme: theme, Styled: true}
		out := r.State(s)
		for _, want := range []string{"1", "@", "#", "┐", ">"} {
			if !strings.Contains(out, want) {
				t.Errorf("styled render missing %q:\n%s", want, out)
			}
		}
	}
	if !s.Grid.Equal(before) {
		t.Error("rendering modified the grid")
	}
}

func TestRendererCellStyle(t *testing.T) {
	s := testState(t)
	r := &Renderer{Theme: DefaultTheme(), Styled: true}

	tests := []struct {
		at   core.Coord
		want string
	}{
		{core.C(0, 0), r.Theme.FixedTrack.Render("x")},
		{core.C(1, 0), r.Theme.EmptyCell.Render("x")},
		{core.C(1, 1), r.Theme.PlacedTrack.Render("x")},
		{core.C(0, 1), r.Theme.Obstacle.Render("x")},
		{core.C(2, 1), r.Theme.Tunnel.Render("x")},
	}
	for _, tt := range tests {
		if got := r.cellStyle(s.Grid, tt.at).Render("x"); got != tt.want {
			t.Errorf("cell %v: got %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestRendererTruncate(t *testing.T) {
	r := &Renderer{Width: 5}
	if got := r.Truncate("abcdefgh"); got != "abcde" {
		t.Errorf("got %q", got)
	}
	r.Width = 0
	if got := r.Truncate("abcdefgh"); got != "abcdefgh" {
		t.Errorf("got %q", got)
	}
}
