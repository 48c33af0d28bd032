package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
)

func TestRenderASCII(t *testing.T) {
	s := newState(t, [][]int{{6, 0, 6}, {15, 1, 20}}, core.C(2, 0),
		core.NewTrain(core.C(0, 0), core.DirRight, 1))
	before := s.Grid.Clone()

	got := core.RenderASCII(s)
	want := "Placed: 0 | Arrived: 0/1\n" +
		"1.@\n" +
		"#┌<\n"
	if got != want {
		t.Errorf("RenderASCII mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if !s.Grid.Equal(before) {
		t.Error("rendering modified the grid")
	}
}

func TestRenderGridGlyphs(t *testing.T) {
	for _, tile := range core.Tiles() {
		if core.Glyph(tile) == '?' {
			t.Errorf("%v has no glyph", tile)
		}
	}

	out := core.RenderGrid(core.NewGrid(2, 1, []core.Tile{core.StraightH, core.JunctionBottomLeft}))
	if strings.TrimSpace(out) != "─┤" {
		t.Errorf("unexpected grid render %q", out)
	}
}
