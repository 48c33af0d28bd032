// Package registry provides a global registry for search strategies.
// Strategies register themselves in init() functions, allowing the CLI and
// the search driver to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
)

// Frontier is the worklist a search strategy explores states from.
// The discipline used by Pop is the only thing that differs between
// strategies; the search driver is otherwise identical.
type Frontier interface {
	// ID returns a unique identifier for this strategy (e.g., "bfs", "dfs").
	// Used for CLI flags, configuration and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Push adds a state to the worklist.
	Push(s *core.State)

	// Pop removes the next state to explore. ok is false when empty.
	Pop() (s *core.State, ok bool)

	// Len returns the number of pending states.
	Len() int
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new, empty frontier.
type Factory func() Frontier

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from the search package's init() function.
// Panics if a strategy with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered strategies, sorted by ID.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StrategyInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontier by its strategy ID.
// Returns an error if the strategy ID is not registered.
func Create(id string) (Frontier, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
