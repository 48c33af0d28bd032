package core_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
)

func mustGrid(t *testing.T, rows [][]int) *core.Grid {
	t.Helper()
	g, err := core.NewGridFromRows(rows)
	if err != nil {
		t.Fatalf("NewGridFromRows failed: %v", err)
	}
	return g
}

func TestGridGetSetBounds(t *testing.T) {
	g := mustGrid(t, [][]int{{6, 0, 6}})

	_, err := g.Get(core.C(3, 0))
	if !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	var oob *core.OutOfBoundsError
	if !errors.As(err, &oob) || oob.At != core.C(3, 0) {
		t.Errorf("expected OutOfBoundsError at (3,0), got %v", err)
	}

	if err := g.Set(core.C(-1, 0), core.StraightH); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds from Set, got %v", err)
	}
	if err := g.Set(core.C(0, 0), core.StraightV); !errors.Is(err, core.ErrImmutable) {
		t.Errorf("expected ErrImmutable, got %v", err)
	}
	if err := g.Set(core.C(1, 0), core.StraightH); err != nil {
		t.Fatalf("Set on open cell failed: %v", err)
	}
	if tile, _ := g.Get(core.C(1, 0)); tile != core.StraightH {
		t.Errorf("expected StraightH at (1,0), got %v", tile)
	}
}

func TestGridAtPanicsOutOfBounds(t *testing.T) {
	g := mustGrid(t, [][]int{{0}})
	defer func() {
		if recover() == nil {
			t.Error("expected At to panic outside the grid")
		}
	}()
	g.At(core.C(0, 1))
}

func TestGridOpenAndFixed(t *testing.T) {
	g := mustGrid(t, [][]int{{6, 0, 15}})

	if g.IsOpen(core.C(0, 0)) || !g.IsFixed(core.C(0, 0)) {
		t.Error("(0,0) should be fixed")
	}
	if !g.IsOpen(core.C(1, 0)) || g.IsFixed(core.C(1, 0)) {
		t.Error("(1,0) should be open")
	}
	if g.IsOpen(core.C(5, 0)) {
		t.Error("off-grid cell should not be open")
	}
	if g.OpenCount() != 1 {
		t.Errorf("expected 1 open cell, got %d", g.OpenCount())
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, [][]int{{6, 0, 6}, {0, 0, 0}})
	c := g.Clone()

	if err := c.Set(core.C(1, 0), core.StraightH); err != nil {
		t.Fatal(err)
	}
	if g.At(core.C(1, 0)) != core.Empty {
		t.Error("clone mutation leaked into original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after mutation")
	}
	if !c.IsFixed(core.C(0, 0)) {
		t.Error("clone lost immutable positions")
	}

	want := [][]int{{6, 6, 6}, {0, 0, 0}}
	if diff := cmp.Diff(want, c.Rows()); diff != "" {
		t.Errorf("clone rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]core.Coord{core.C(1, 0)}, c.PlacedCoords()); diff != "" {
		t.Errorf("placed coords mismatch (-want +got):\n%s", diff)
	}
}

func TestGridIsLocallyValid(t *testing.T) {
	// Fixed straights touch the boundary and are trusted.
	g := mustGrid(t, [][]int{{6, 0, 6}})
	if !g.IsLocallyValid([]core.Coord{core.C(0, 0), core.C(2, 0)}) {
		t.Error("fixed boundary stubs should be valid")
	}

	// A placed straight matching both neighbors.
	if err := g.Set(core.C(1, 0), core.StraightH); err != nil {
		t.Fatal(err)
	}
	if !g.IsLocallyValid([]core.Coord{core.C(1, 0)}) {
		t.Error("StraightH between straights should be valid")
	}

	// A placed curve leaves a neighbor stub dangling.
	if err := g.Set(core.C(1, 0), core.CurveBL); err != nil {
		t.Fatal(err)
	}
	if g.IsLocallyValid([]core.Coord{core.C(1, 0)}) {
		t.Error("CurveBL should not match the right neighbor")
	}

	// A placed tile with a stub off the grid.
	g2 := mustGrid(t, [][]int{{0}})
	if err := g2.Set(core.C(0, 0), core.StraightV); err != nil {
		t.Fatal(err)
	}
	if g2.IsLocallyValid([]core.Coord{core.C(0, 0)}) {
		t.Error("placed stub facing off-grid should be invalid")
	}
}

func TestNewGridFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		code string
	}{
		{"empty", [][]int{}, core.CodeEmptyGrid},
		{"ragged", [][]int{{0, 0}, {0}}, core.CodeRaggedGrid},
		{"unknown tile", [][]int{{0, 99}}, core.CodeUnknownTile},
		{"negative tile", [][]int{{-1}}, core.CodeUnknownTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewGridFromRows(tt.rows)
			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, verr.Code)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	g := mustGrid(t, [][]int{{6, 0, 6}})
	got := g.Candidates(core.C(1, 0), core.DirRight)
	if diff := cmp.Diff([]core.Tile{core.StraightH}, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}
