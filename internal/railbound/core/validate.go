package core

import (
	"fmt"
	"sort"
)

// Validation error codes.
const (
	CodeEmptyGrid      = "EMPTY_GRID"
	CodeRaggedGrid     = "RAGGED_GRID"
	CodeUnknownTile    = "UNKNOWN_TILE"
	CodeBadDestination = "BAD_DESTINATION"
	CodeNoTrains       = "NO_TRAINS"
	CodeBadTrain       = "BAD_TRAIN"
	CodeDuplicateOrder = "DUPLICATE_ORDER"
	CodeBadTunnel      = "BAD_TUNNEL"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a puzzle definition before any search begins.
// Checks:
//   - Destination lies on the grid
//   - At least one train, each on the grid with a valid direction
//   - Train orders are unique
func Validate(g *Grid, trains []Train, dest Coord) error {
	if g == nil || g.W == 0 || g.H == 0 {
		return ValidationError{Code: CodeEmptyGrid, Message: "grid has no cells"}
	}
	if !g.InBounds(dest) {
		return ValidationError{
			Code:    CodeBadDestination,
			Message: fmt.Sprintf("destination %v outside %dx%d grid", dest, g.W, g.H),
		}
	}
	if len(trains) == 0 {
		return ValidationError{Code: CodeNoTrains, Message: "puzzle has no trains"}
	}

	orders := make(map[int]bool, len(trains))
	for i, t := range trains {
		if !g.InBounds(t.Pos) {
			return ValidationError{
				Code:    CodeBadTrain,
				Message: fmt.Sprintf("train %d starts outside the grid at %v", i, t.Pos),
			}
		}
		if !t.Dir.Valid() {
			return ValidationError{
				Code:    CodeBadTrain,
				Message: fmt.Sprintf("train %d has invalid direction %d", i, uint8(t.Dir)),
			}
		}
		if orders[t.Order] {
			return ValidationError{
				Code:    CodeDuplicateOrder,
				Message: fmt.Sprintf("order %d used by more than one train", t.Order),
			}
		}
		orders[t.Order] = true
	}

	return nil
}

// PairTunnels links tunnel cells carrying the same non-zero number in
// numbers, a layer with the grid's dimensions. A tunnel without a partner
// stays unlinked and derails any train that enters it.
func PairTunnels(g *Grid, numbers [][]int) (map[Coord]Tunnel, error) {
	tunnels := make(map[Coord]Tunnel)
	if len(numbers) == 0 {
		return tunnels, nil
	}
	if len(numbers) != g.H {
		return nil, ValidationError{
			Code:    CodeBadTunnel,
			Message: fmt.Sprintf("number layer has %d rows, want %d", len(numbers), g.H),
		}
	}

	groups := make(map[int][]Coord)
	for y, row := range numbers {
		if len(row) != g.W {
			return nil, ValidationError{
				Code:    CodeBadTunnel,
				Message: fmt.Sprintf("number layer row %d has %d cells, want %d", y, len(row), g.W),
			}
		}
		for x, n := range row {
			c := C(x, y)
			if n == 0 || !g.At(c).IsTunnel() {
				continue
			}
			groups[n] = append(groups[n], c)
		}
	}

	ids := make([]int, 0, len(groups))
	for n := range groups {
		ids = append(ids, n)
	}
	sort.Ints(ids)

	for _, n := range ids {
		cells := groups[n]
		switch len(cells) {
		case 1:
			continue
		case 2:
			a, b := cells[0], cells[1]
			sa, _ := g.At(a).TunnelSide()
			sb, _ := g.At(b).TunnelSide()
			tunnels[a] = Tunnel{To: b, Side: sb}
			tunnels[b] = Tunnel{To: a, Side: sa}
		default:
			return nil, ValidationError{
				Code:    CodeBadTunnel,
				Message: fmt.Sprintf("tunnel number %d used by %d cells", n, len(cells)),
			}
		}
	}

	return tunnels, nil
}
