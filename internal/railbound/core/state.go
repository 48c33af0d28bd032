package core

import (
	"hash/fnv"
	"sort"
)

// Tunnel links a tunnel cell to its paired exit.
type Tunnel struct {
	To   Coord // paired tunnel cell
	Side Dir   // open edge of the paired tunnel, the direction trains leave with
}

// State is one node of the search: a grid snapshot, the trains on it and
// the counters the search bounds on.
//
// States are independently owned. Clone deep-copies the grid cells and
// the trains; the tunnel table is immutable and shared.
type State struct {
	Grid     *Grid
	Trains   []Train
	Dest     Coord
	Placed   int // tiles placed by the solver, never decreases along a path
	Arrivals int // trains arrived in the correct order so far
	Tunnels  map[Coord]Tunnel
}

// NewState builds a root state. Trains are stored sorted by Order.
func NewState(g *Grid, trains []Train, dest Coord, tunnels map[Coord]Tunnel) *State {
	ts := make([]Train, len(trains))
	copy(ts, trains)
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Order < ts[j].Order })
	if tunnels == nil {
		tunnels = map[Coord]Tunnel{}
	}
	return &State{
		Grid:    g,
		Trains:  ts,
		Dest:    dest,
		Tunnels: tunnels,
	}
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	trains := make([]Train, len(s.Trains))
	copy(trains, s.Trains)
	return &State{
		Grid:     s.Grid.Clone(),
		Trains:   trains,
		Dest:     s.Dest,
		Placed:   s.Placed,
		Arrivals: s.Arrivals,
		Tunnels:  s.Tunnels,
	}
}

// Solved reports whether every train has arrived.
func (s *State) Solved() bool {
	for _, t := range s.Trains {
		if !t.Arrived {
			return false
		}
	}
	return true
}

// trainKey encodes the joint train configuration. Two rounds with the
// same key on an unchanged grid replay the same future.
func (s *State) trainKey() string {
	buf := make([]byte, 0, len(s.Trains)*9)
	for _, t := range s.Trains {
		if t.Arrived {
			buf = append(buf, 0xff)
			continue
		}
		buf = appendInt(buf, t.Pos.X)
		buf = appendInt(buf, t.Pos.Y)
		buf = append(buf, byte(t.Dir))
	}
	return string(buf)
}

// CellsKey hashes the grid cells, useful to compare solutions.
func (s *State) CellsKey() uint64 {
	h := fnv.New64a()
	buf := make([]byte, len(s.Grid.Cells))
	for i, t := range s.Grid.Cells {
		buf[i] = byte(t)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

func appendInt(buf []byte, v int) []byte {
	u := uint32(int32(v))
	return append(buf, byte(u), byte(u>>8), byte(u>>16), byte(u>>24))
}
