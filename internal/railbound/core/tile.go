package core

import "fmt"

// Tile is a stable catalog code identifying a track piece.
// Codes are the wire representation used by puzzle files; 0 is always Empty.
type Tile uint8

const (
	Empty Tile = iota
	CurveRB
	CurveBL
	CurveTL
	CurveTR
	StraightV
	StraightH
	JunctionBottomLeft
	JunctionLeftTop
	JunctionTopRight
	JunctionRightBottom
	JunctionTopLeft
	JunctionRightTop
	JunctionBottomRight
	JunctionLeftBottom
	Rock
	Fence
	TunnelTop
	TunnelRight
	TunnelBottom
	TunnelLeft
	tileCount
)

// Kind classifies catalog tiles.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindCurve
	KindStraight
	KindJunction
	KindObstacle
	KindTunnel
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCurve:
		return "curve"
	case KindStraight:
		return "straight"
	case KindJunction:
		return "junction"
	case KindObstacle:
		return "obstacle"
	case KindTunnel:
		return "tunnel"
	default:
		return "unknown"
	}
}

// Flow is one entry -> exit path through a tile.
type Flow struct {
	In  Dir
	Out Dir
}

// shape is the geometric part of a tile: which edges carry a track stub
// and where a train leaves for each direction it may enter with.
type shape struct {
	edges [4]bool
	flow  [4]Dir // indexed by entry direction, noDir when not enterable
}

func newShape(open []Dir, flows ...Flow) shape {
	s := shape{flow: [4]Dir{noDir, noDir, noDir, noDir}}
	for _, d := range open {
		s.edges[d] = true
	}
	for _, f := range flows {
		s.flow[f.In] = f.Out
	}
	return s
}

// rotate turns the shape clockwise by n quarter turns.
func (s shape) rotate(n int) shape {
	r := newShape(nil)
	for _, d := range AllDirs {
		nd := d.Rotate(n)
		r.edges[nd] = s.edges[d]
		if out := s.flow[d]; out != noDir {
			r.flow[nd] = out.Rotate(n)
		}
	}
	return r
}

// mirror reflects the shape across the horizontal axis.
func (s shape) mirror() shape {
	r := newShape(nil)
	for _, d := range AllDirs {
		nd := d.mirror()
		r.edges[nd] = s.edges[d]
		if out := s.flow[d]; out != noDir {
			r.flow[nd] = out.mirror()
		}
	}
	return r
}

type tileInfo struct {
	name  string
	kind  Kind
	shape shape
}

type kindShape struct {
	kind  Kind
	shape shape
}

var (
	catalog     = buildCatalog()
	tileByShape = indexCatalog(catalog)
	placeable   = filterTiles(func(t Tile) bool { return t.Placeable() })
)

// buildCatalog generates every tile from a few canonical shapes.
// The append order defines the tile codes and must match the constants above.
func buildCatalog() []tileInfo {
	curve := newShape([]Dir{DirRight, DirBottom},
		Flow{DirTop, DirRight}, Flow{DirLeft, DirBottom})
	straight := newShape([]Dir{DirTop, DirBottom},
		Flow{DirTop, DirTop}, Flow{DirBottom, DirBottom})
	junction := newShape([]Dir{DirTop, DirBottom, DirLeft},
		Flow{DirBottom, DirBottom}, Flow{DirRight, DirBottom}, Flow{DirTop, DirLeft})
	tunnel := newShape([]Dir{DirTop})
	closed := newShape(nil)

	tiles := make([]tileInfo, 0, tileCount)
	tiles = append(tiles, tileInfo{"Empty", KindEmpty, closed})

	for n, name := range []string{"CurveRB", "CurveBL", "CurveTL", "CurveTR"} {
		tiles = append(tiles, tileInfo{name, KindCurve, curve.rotate(n)})
	}
	for n, name := range []string{"StraightV", "StraightH"} {
		tiles = append(tiles, tileInfo{name, KindStraight, straight.rotate(n)})
	}
	for n, name := range []string{"JunctionBottomLeft", "JunctionLeftTop", "JunctionTopRight", "JunctionRightBottom"} {
		tiles = append(tiles, tileInfo{name, KindJunction, junction.rotate(n)})
	}
	mirrored := junction.mirror()
	for n, name := range []string{"JunctionTopLeft", "JunctionRightTop", "JunctionBottomRight", "JunctionLeftBottom"} {
		tiles = append(tiles, tileInfo{name, KindJunction, mirrored.rotate(n)})
	}

	tiles = append(tiles,
		tileInfo{"Rock", KindObstacle, closed},
		tileInfo{"Fence", KindObstacle, closed},
	)

	for n, name := range []string{"TunnelTop", "TunnelRight", "TunnelBottom", "TunnelLeft"} {
		tiles = append(tiles, tileInfo{name, KindTunnel, tunnel.rotate(n)})
	}

	if len(tiles) != int(tileCount) {
		panic(fmt.Sprintf("core: catalog has %d tiles, want %d", len(tiles), tileCount))
	}
	return tiles
}

// indexCatalog maps shapes of track and tunnel tiles back to their codes.
// Empty and obstacles share the closed shape and are not indexed.
func indexCatalog(tiles []tileInfo) map[kindShape]Tile {
	index := make(map[kindShape]Tile, len(tiles))
	for i, info := range tiles {
		if info.kind == KindEmpty || info.kind == KindObstacle {
			continue
		}
		index[kindShape{info.kind, info.shape}] = Tile(i)
	}
	return index
}

func filterTiles(keep func(Tile) bool) []Tile {
	out := make([]Tile, 0)
	for t := Tile(0); t < tileCount; t++ {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Tiles returns every catalog tile in code order.
func Tiles() []Tile {
	return filterTiles(func(Tile) bool { return true })
}

// TileCount returns the number of catalog entries.
func TileCount() int {
	return int(tileCount)
}

// Valid reports whether t is a catalog code.
func (t Tile) Valid() bool {
	return t < tileCount
}

// String returns the catalog name of the tile.
func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
	return catalog[t].name
}

// Kind returns the tile classification.
func (t Tile) Kind() Kind {
	return catalog[t].kind
}

func (t Tile) IsEmpty() bool    { return t == Empty }
func (t Tile) IsCurve() bool    { return t.Kind() == KindCurve }
func (t Tile) IsStraight() bool { return t.Kind() == KindStraight }
func (t Tile) IsJunction() bool { return t.Kind() == KindJunction }
func (t Tile) IsObstacle() bool { return t.Kind() == KindObstacle }
func (t Tile) IsTunnel() bool   { return t.Kind() == KindTunnel }

// Placeable reports whether the solver may put this tile on an open cell.
func (t Tile) Placeable() bool {
	return t.IsCurve() || t.IsStraight()
}

// Open reports whether the tile has a track stub on edge d.
func (t Tile) Open(d Dir) bool {
	return d.Valid() && catalog[t].shape.edges[d]
}

// Edges returns the edge mask in Top, Right, Bottom, Left order.
func (t Tile) Edges() [4]bool {
	return catalog[t].shape.edges
}

// Exit returns the direction a train leaves the tile with after entering
// it travelling in direction entry. ok is false when the tile cannot be
// entered that way, which the simulator treats as a derailment.
func (t Tile) Exit(entry Dir) (Dir, bool) {
	if !entry.Valid() {
		return noDir, false
	}
	out := catalog[t].shape.flow[entry]
	return out, out != noDir
}

// Flows lists the tile's paths ordered by entry direction.
func (t Tile) Flows() []Flow {
	flows := make([]Flow, 0, 3)
	for _, d := range AllDirs {
		if out, ok := t.Exit(d); ok {
			flows = append(flows, Flow{In: d, Out: out})
		}
	}
	return flows
}

// TunnelSide returns the open edge of a tunnel tile.
func (t Tile) TunnelSide() (Dir, bool) {
	if !t.IsTunnel() {
		return noDir, false
	}
	for _, d := range AllDirs {
		if t.Open(d) {
			return d, true
		}
	}
	return noDir, false
}

// Rotate returns the catalog tile whose shape is t turned clockwise by n
// quarter turns. Empty and obstacles are rotation invariant.
func (t Tile) Rotate(n int) Tile {
	return t.transform(func(s shape) shape { return s.rotate(n) })
}

// Mirror returns the catalog tile whose shape is t reflected top to bottom.
func (t Tile) Mirror() Tile {
	return t.transform(shape.mirror)
}

func (t Tile) transform(f func(shape) shape) Tile {
	info := catalog[t]
	if info.kind == KindEmpty || info.kind == KindObstacle {
		return t
	}
	out, ok := tileByShape[kindShape{info.kind, f(info.shape)}]
	if !ok {
		panic(fmt.Sprintf("core: catalog not closed under transform of %s", info.name))
	}
	return out
}

// Connects reports whether the edge of a facing d and the edge of b facing
// back agree: both open (joined) or both closed (sealed independently).
func Connects(a, b Tile, d Dir) bool {
	return a.Open(d) == b.Open(d.Opposite())
}

// UpgradeToJunction returns the junction that extends t with a stub on
// edge open.
//
// A curve keeps its flows and gains a straight pass-through entering from
// the new edge. A straight has flows in both directions and needs hint,
// the direction of travel it was laid for: the junction keeps hint going
// straight, sends the reverse direction into the new edge, and merges
// trains entering from the new edge into hint.
//
// ok is false when t is not a curve or straight, when the edge is already
// open, or when no catalog junction has the resulting shape.
func UpgradeToJunction(t Tile, open, hint Dir) (Tile, bool) {
	if !t.Valid() || !open.Valid() || t.Open(open) {
		return Empty, false
	}

	up := catalog[t].shape
	up.edges[open] = true

	switch t.Kind() {
	case KindCurve:
		through := open.Opposite()
		up.flow[through] = through
	case KindStraight:
		if !hint.Valid() || !t.Open(hint) || !t.Open(hint.Opposite()) {
			return Empty, false
		}
		up.flow = [4]Dir{noDir, noDir, noDir, noDir}
		up.flow[hint] = hint
		up.flow[hint.Opposite()] = open
		up.flow[open.Opposite()] = hint
	default:
		return Empty, false
	}

	j, ok := tileByShape[kindShape{KindJunction, up}]
	return j, ok
}
