package core

// Successors enumerates every locally valid way to fill the decision
// cells of a paused state and returns one independent state per
// combination, in candidate order. Each filled cell adds one to Placed;
// junction upgrades of neighbors are free. Combinations that would push
// Placed above maxPlaced are never built.
func (s *State) Successors(decisions []Decision, maxPlaced int) []*State {
	if len(decisions) == 0 || s.Placed+len(decisions) > maxPlaced {
		return nil
	}

	out := make([]*State, 0)
	var expand func(st *State, k int, touched []Coord)
	expand = func(st *State, k int, touched []Coord) {
		if k == len(decisions) {
			if st.Grid.IsLocallyValid(touched) {
				out = append(out, st)
			}
			return
		}
		if st.Placed+1 > maxPlaced {
			return
		}

		d := decisions[k]
		for _, cand := range placeable {
			if _, ok := cand.Exit(d.Dir); !ok || st.Grid.facesOffGrid(d.Pos, cand) {
				continue
			}
			next := st.Clone()
			changed, ok := next.place(d, cand)
			if !ok {
				continue
			}
			next.Placed++

			cells := make([]Coord, 0, len(touched)+len(changed))
			cells = append(cells, touched...)
			cells = append(cells, changed...)
			expand(next, k+1, cells)
		}
	}
	expand(s, 0, nil)

	return out
}

// Candidates returns the placeable tiles that a train travelling dir
// could enter at c, before neighbor checks.
func (g *Grid) Candidates(c Coord, dir Dir) []Tile {
	out := make([]Tile, 0, len(placeable))
	for _, t := range placeable {
		if _, ok := t.Exit(dir); ok && !g.facesOffGrid(c, t) {
			out = append(out, t)
		}
	}
	return out
}

// facesOffGrid reports whether t placed at c would have a stub on the
// grid boundary.
func (g *Grid) facesOffGrid(c Coord, t Tile) bool {
	for _, d := range AllDirs {
		if t.Open(d) && !g.InBounds(c.Step(d)) {
			return true
		}
	}
	return false
}

// place writes tile t on the decision cell and reconciles it with its
// neighbors. It returns the cells it changed, or false when the
// combination is impossible.
//
// A stub of t facing a closed neighbor edge upgrades that neighbor to a
// junction; only solver-placed curves and straights can be upgraded. A
// neighbor stub facing a closed edge of t upgrades t instead, keeping the
// route of the arriving train.
func (s *State) place(d Decision, t Tile) ([]Coord, bool) {
	g := s.Grid
	g.put(d.Pos, t)
	if t.IsStraight() {
		g.setHint(d.Pos, d.Dir)
	}
	changed := []Coord{d.Pos}

	tile := t
	for _, dir := range AllDirs {
		n := d.Pos.Step(dir)
		if !g.InBounds(n) {
			continue
		}
		nt := g.At(n)
		if nt == Empty || Connects(tile, nt, dir) {
			continue
		}

		if tile.Open(dir) {
			if g.IsFixed(n) || !nt.Placeable() {
				return nil, false
			}
			hint, _ := g.Hint(n)
			up, ok := UpgradeToJunction(nt, dir.Opposite(), hint)
			if !ok {
				return nil, false
			}
			g.put(n, up)
			changed = append(changed, n)
			continue
		}

		if !tile.Placeable() {
			return nil, false
		}
		up, ok := UpgradeToJunction(tile, dir, d.Dir)
		if !ok {
			return nil, false
		}
		tile = up
		g.put(d.Pos, tile)
	}

	return changed, true
}
