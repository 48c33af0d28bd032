package core

import (
	"fmt"
	"sort"
)

// DefaultMaxRounds bounds a single Simulate call when no budget is given.
const DefaultMaxRounds = 100

// Outcome tags the result of a simulation call.
type Outcome int

const (
	OutcomePaused Outcome = iota // trains reached open cells, placement needed
	OutcomeSuccess
	OutcomeDerailed
	OutcomeOutOfBounds
	OutcomeObstacle
	OutcomeWrongOrder
	OutcomeCollision
	OutcomeLoop
	OutcomeTimeout
)

// Outcomes lists every outcome in declaration order.
var Outcomes = []Outcome{
	OutcomePaused, OutcomeSuccess, OutcomeDerailed, OutcomeOutOfBounds,
	OutcomeObstacle, OutcomeWrongOrder, OutcomeCollision, OutcomeLoop, OutcomeTimeout,
}

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePaused:
		return "paused"
	case OutcomeSuccess:
		return "success"
	case OutcomeDerailed:
		return "derailed"
	case OutcomeOutOfBounds:
		return "out-of-bounds"
	case OutcomeObstacle:
		return "obstacle"
	case OutcomeWrongOrder:
		return "wrong-order"
	case OutcomeCollision:
		return "collision"
	case OutcomeLoop:
		return "loop"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome ends the branch.
func (o Outcome) Failed() bool {
	return o != OutcomePaused && o != OutcomeSuccess
}

// Decision is an open cell a train has just entered. Dir is the direction
// the train was travelling when it entered, which any tile placed there
// must accept.
type Decision struct {
	Pos Coord
	Dir Dir
}

// SimResult contains the outcome of a Simulate call.
type SimResult struct {
	Outcome   Outcome
	Decisions []Decision // set when Outcome is OutcomePaused
	Rounds    int
	Detail    string // human readable cause of a failure
}

// fault is a failure found while moving trains. Lower outcome values win
// when several trains fail in the same round.
type fault struct {
	outcome Outcome
	detail  string
}

func worst(faults []fault) fault {
	best := faults[0]
	for _, f := range faults[1:] {
		if f.outcome < best.outcome {
			best = f
		}
	}
	return best
}

// Simulate advances every train in lock-step until a decision point,
// success or failure. The state is modified in place; the grid is only read.
//
// Each round:
//  1. Every train not yet arrived moves one cell along its tile's flow.
//  2. Trains reaching the destination arrive, if every train with a
//     smaller order has arrived by the end of this round.
//  3. Remaining trains sharing a cell or swapping cells collide.
//
// Failures of one round are reduced by outcome priority, so the result
// does not depend on the order of s.Trains. A repeated train
// configuration ends the call with OutcomeLoop, and exceeding maxRounds
// with OutcomeTimeout.
func (s *State) Simulate(maxRounds int) SimResult {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	seen := map[string]struct{}{s.trainKey(): {}}

	for round := 1; round <= maxRounds; round++ {
		faults, decisions := s.stepRound()

		if len(faults) > 0 {
			f := worst(faults)
			return SimResult{Outcome: f.outcome, Rounds: round, Detail: f.detail}
		}
		if s.Solved() {
			return SimResult{Outcome: OutcomeSuccess, Rounds: round}
		}
		if len(decisions) > 0 {
			return SimResult{Outcome: OutcomePaused, Decisions: decisions, Rounds: round}
		}

		key := s.trainKey()
		if _, ok := seen[key]; ok {
			return SimResult{Outcome: OutcomeLoop, Rounds: round, Detail: "train configuration repeats"}
		}
		seen[key] = struct{}{}
	}

	return SimResult{
		Outcome: OutcomeTimeout,
		Rounds:  maxRounds,
		Detail:  fmt.Sprintf("no result after %d rounds", maxRounds),
	}
}

// stepRound moves all trains once and runs the cross-train checks.
func (s *State) stepRound() ([]fault, []Decision) {
	g := s.Grid
	faults := make([]fault, 0)
	decisions := make([]Decision, 0)
	arriving := make([]int, 0)

	// Move every train before any cross-train check.
	for i := range s.Trains {
		t := &s.Trains[i]
		if t.Arrived {
			continue
		}

		next, dir, ok := s.route(t)
		if !ok {
			faults = append(faults, fault{OutcomeDerailed,
				fmt.Sprintf("train #%d derailed on %v at %v", t.Order, g.At(t.Pos), t.Pos)})
			continue
		}
		t.moveTo(next, dir)

		if !g.InBounds(next) {
			faults = append(faults, fault{OutcomeOutOfBounds,
				fmt.Sprintf("train #%d left the grid at %v", t.Order, next)})
			continue
		}
		if g.At(next).IsObstacle() {
			faults = append(faults, fault{OutcomeObstacle,
				fmt.Sprintf("train #%d hit %v at %v", t.Order, g.At(next), next)})
			continue
		}
		if next == s.Dest {
			arriving = append(arriving, i)
			continue
		}
		if g.IsOpen(next) {
			decisions = append(decisions, Decision{Pos: next, Dir: dir})
		}
	}

	faults = append(faults, s.arrive(arriving)...)
	faults = append(faults, s.collisions()...)

	return faults, dedupeDecisions(decisions)
}

// route computes where a train goes from its current cell.
func (s *State) route(t *Train) (Coord, Dir, bool) {
	tile := s.Grid.At(t.Pos)
	if tile.IsTunnel() {
		link, linked := s.Tunnels[t.Pos]
		if !linked || !tile.Open(t.Dir.Opposite()) {
			return t.Pos, t.Dir, false
		}
		return link.To.Step(link.Side), link.Side, true
	}
	exit, ok := tile.Exit(t.Dir)
	if !ok {
		return t.Pos, t.Dir, false
	}
	return t.Pos.Step(exit), exit, true
}

// arrive marks arriving trains. A train arriving in the same round as a
// smaller order counts as in sequence.
func (s *State) arrive(arriving []int) []fault {
	if len(arriving) == 0 {
		return nil
	}
	landing := make(map[int]bool, len(arriving))
	for _, i := range arriving {
		landing[i] = true
	}

	var faults []fault
	for _, i := range arriving {
		t := s.Trains[i]
		for j, other := range s.Trains {
			if other.Order < t.Order && !other.Arrived && !landing[j] {
				faults = append(faults, fault{OutcomeWrongOrder,
					fmt.Sprintf("train #%d arrived before train #%d", t.Order, other.Order)})
				break
			}
		}
	}
	for _, i := range arriving {
		s.Trains[i].Arrived = true
	}
	s.Arrivals += len(arriving) - len(faults)
	return faults
}

// collisions checks every pair of trains still on the grid.
func (s *State) collisions() []fault {
	var faults []fault
	for i := 0; i < len(s.Trains); i++ {
		a := s.Trains[i]
		if a.Arrived {
			continue
		}
		for j := i + 1; j < len(s.Trains); j++ {
			b := s.Trains[j]
			if b.Arrived {
				continue
			}
			switch {
			case a.Pos == b.Pos:
				faults = append(faults, fault{OutcomeCollision,
					fmt.Sprintf("trains #%d and #%d met at %v", a.Order, b.Order, a.Pos)})
			case a.Pos == b.Prev && b.Pos == a.Prev:
				faults = append(faults, fault{OutcomeCollision,
					fmt.Sprintf("trains #%d and #%d swapped %v and %v", a.Order, b.Order, a.Prev, b.Prev)})
			}
		}
	}
	return faults
}

// dedupeDecisions removes repeated cells and sorts by row, then column.
func dedupeDecisions(ds []Decision) []Decision {
	if len(ds) == 0 {
		return nil
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Pos.less(ds[j].Pos) })
	out := ds[:1]
	for _, d := range ds[1:] {
		if d.Pos != out[len(out)-1].Pos {
			out = append(out, d)
		}
	}
	return out
}
