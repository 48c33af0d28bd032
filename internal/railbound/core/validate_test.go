package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
)

func TestValidate(t *testing.T) {
	g := mustGrid(t, [][]int{{6, 0, 6}})
	ok := core.NewTrain(core.C(0, 0), core.DirRight, 1)

	tests := []struct {
		name   string
		trains []core.Train
		dest   core.Coord
		code   string
	}{
		{"valid", []core.Train{ok}, core.C(2, 0), ""},
		{"destination off grid", []core.Train{ok}, core.C(3, 0), core.CodeBadDestination},
		{"no trains", nil, core.C(2, 0), core.CodeNoTrains},
		{"train off grid", []core.Train{core.NewTrain(core.C(0, 4), core.DirRight, 1)}, core.C(2, 0), core.CodeBadTrain},
		{"bad direction", []core.Train{core.NewTrain(core.C(0, 0), core.Dir(7), 1)}, core.C(2, 0), core.CodeBadTrain},
		{"duplicate order", []core.Train{ok, core.NewTrain(core.C(2, 0), core.DirLeft, 1)}, core.C(1, 0), core.CodeDuplicateOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := core.Validate(g, tt.trains, tt.dest)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
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

func TestPairTunnelsErrors(t *testing.T) {
	g := mustGrid(t, [][]int{{int(core.TunnelLeft), int(core.TunnelRight), int(core.TunnelTop)}})

	if _, err := core.PairTunnels(g, [][]int{{1, 1}}); err == nil {
		t.Error("expected error for short number layer row")
	}
	if _, err := core.PairTunnels(g, [][]int{{1, 1, 1}}); err == nil {
		t.Error("expected error for a number shared by three tunnels")
	}

	tunnels, err := core.PairTunnels(g, [][]int{{2, 2, 3}})
	if err != nil {
		t.Fatalf("PairTunnels failed: %v", err)
	}
	if len(tunnels) != 2 {
		t.Fatalf("expected 2 linked tunnels, got %d", len(tunnels))
	}
	if link := tunnels[core.C(0, 0)]; link.To != core.C(1, 0) || link.Side != core.DirRight {
		t.Errorf("unexpected link from (0,0): %+v", link)
	}
	if _, ok := tunnels[core.C(2, 0)]; ok {
		t.Error("unpaired tunnel should stay unlinked")
	}
}
