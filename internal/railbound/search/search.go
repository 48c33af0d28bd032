// Package search implements the branch-and-bound driver over puzzle
// states. It is single-threaded: the frontier of pending states is the
// only source of branching.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
	"github.com/vovakirdan/railsolve/internal/railbound/levels"
	"github.com/vovakirdan/railsolve/internal/registry"
)

// ErrUnknownStrategy is returned when Options.Strategy is not registered.
var ErrUnknownStrategy = errors.New("unknown search strategy")

// StopReason tells why the search loop ended.
type StopReason int

const (
	StopExhausted  StopReason = iota // frontier empty, search complete
	StopIterations                   // MaxIterations reached
	StopCanceled                     // context canceled or deadline passed
)

// String returns the string representation of a stop reason.
func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopIterations:
		return "iterations"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Options configure a search.
type Options struct {
	Strategy      string      // registered strategy ID, "bfs" when empty
	MaxTracks     int         // tile budget; successors above it are never built
	MaxRounds     int         // round budget per Simulate call, core.DefaultMaxRounds when <= 0
	MaxIterations int         // frontier pops before giving up, unlimited when <= 0
	ProgressEvery int         // debug progress log interval in iterations, off when <= 0
	Logger        *log.Logger // nil disables logging
}

// Result is the outcome of a search.
type Result struct {
	Best       *core.State // fewest placed tiles among solutions found, nil if none
	Iterations int         // states popped from the frontier
	Generated  int         // successor states produced
	Pruned     int         // states dropped by the tile bound
	Outcomes   map[core.Outcome]int
	Stop       StopReason
	Elapsed    time.Duration
}

// Found reports whether a solution was found.
func (r Result) Found() bool {
	return r.Best != nil
}

// Run explores states reachable from root and returns the best solution.
//
// The loop pops a state, prunes it when it cannot beat the best known
// tile count, simulates it and pushes the successors of a paused state.
// The first success with the lowest count wins; later equal-cost
// solutions are pruned. The budget is checked once per iteration and an
// exhausted budget returns the best so far with Stop set.
//
// root is not modified.
func Run(ctx context.Context, root *core.State, opts Options) (Result, error) {
	if root == nil {
		return Result{}, errors.New("search: nil root state")
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyBFS
	}
	if !registry.Exists(strategy) {
		return Result{}, fmt.Errorf("search: %w: %q", ErrUnknownStrategy, strategy)
	}
	frontier, err := registry.Create(strategy)
	if err != nil {
		return Result{}, fmt.Errorf("search: %w", err)
	}

	start := time.Now()
	res := Result{Outcomes: make(map[core.Outcome]int)}
	bound := opts.MaxTracks + 1

	frontier.Push(root.Clone())

	for {
		if opts.MaxIterations > 0 && res.Iterations >= opts.MaxIterations {
			res.Stop = StopIterations
			break
		}
		if ctx.Err() != nil {
			res.Stop = StopCanceled
			break
		}

		st, ok := frontier.Pop()
		if !ok {
			res.Stop = StopExhausted
			break
		}
		res.Iterations++

		if opts.ProgressEvery > 0 && res.Iterations%opts.ProgressEvery == 0 && opts.Logger != nil {
			opts.Logger.Debug("search progress",
				"iterations", res.Iterations,
				"frontier", frontier.Len(),
				"bound", bound-1)
		}

		if st.Placed >= bound {
			res.Pruned++
			continue
		}

		sim := st.Simulate(opts.MaxRounds)
		res.Outcomes[sim.Outcome]++

		switch sim.Outcome {
		case core.OutcomePaused:
			next := st.Successors(sim.Decisions, bound-1)
			res.Generated += len(next)
			for _, n := range next {
				frontier.Push(n)
			}
		case core.OutcomeSuccess:
			if st.Placed <= bound {
				res.Best = st
				bound = st.Placed
				if opts.Logger != nil {
					opts.Logger.Info("new best solution",
						"placed", st.Placed,
						"iterations", res.Iterations)
				}
			}
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// Solve builds the root state of lvl and searches it with the level's
// tile budget.
func Solve(ctx context.Context, lvl *levels.Level, opts Options) (Result, error) {
	root, err := lvl.NewState()
	if err != nil {
		return Result{}, err
	}
	opts.MaxTracks = lvl.MaxTracks
	return Run(ctx, root, opts)
}
