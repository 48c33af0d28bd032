package core

import "fmt"

// Train is a moving actor on the grid.
//
// Order is the arrival rank: a train may only reach the destination after
// every train with a smaller Order has arrived. Prev is the position the
// train occupied at the start of the last round, used to detect head-on
// swaps.
type Train struct {
	Pos     Coord
	Prev    Coord
	Dir     Dir
	Order   int
	Arrived bool
}

// NewTrain creates a train standing at pos. Prev starts at pos.
func NewTrain(pos Coord, dir Dir, order int) Train {
	return Train{Pos: pos, Prev: pos, Dir: dir, Order: order}
}

// String returns a compact description of the train.
func (t Train) String() string {
	if t.Arrived {
		return fmt.Sprintf("#%d arrived", t.Order)
	}
	return fmt.Sprintf("#%d at %v heading %v", t.Order, t.Pos, t.Dir)
}

// moveTo advances the train one step.
func (t *Train) moveTo(next Coord, dir Dir) {
	t.Prev = t.Pos
	t.Pos = next
	t.Dir = dir
}
