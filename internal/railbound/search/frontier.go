package search

import (
	"github.com/vovakirdan/railsolve/internal/railbound/core"
	"github.com/vovakirdan/railsolve/internal/registry"
)

// Strategy IDs registered by this package.
const (
	StrategyBFS = "bfs"
	StrategyDFS = "dfs"
)

func init() {
	registry.Register(StrategyBFS, func() registry.Frontier { return &queue{} })
	registry.Register(StrategyDFS, func() registry.Frontier { return &stack{} })
}

// deque is a growable ring buffer of states.
type deque struct {
	buf  []*core.State
	head int
	n    int
}

func (d *deque) Len() int {
	return d.n
}

func (d *deque) Push(s *core.State) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[(d.head+d.n)%len(d.buf)] = s
	d.n++
}

func (d *deque) popFront() (*core.State, bool) {
	if d.n == 0 {
		return nil, false
	}
	s := d.buf[d.head]
	d.buf[d.head] = nil
	d.head = (d.head + 1) % len(d.buf)
	d.n--
	return s, true
}

func (d *deque) popBack() (*core.State, bool) {
	if d.n == 0 {
		return nil, false
	}
	i := (d.head + d.n - 1) % len(d.buf)
	s := d.buf[i]
	d.buf[i] = nil
	d.n--
	return s, true
}

func (d *deque) grow() {
	size := len(d.buf) * 2
	if size == 0 {
		size = 64
	}
	buf := make([]*core.State, size)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

// queue explores states breadth-first.
type queue struct{ deque }

func (q *queue) ID() string               { return StrategyBFS }
func (q *queue) Title() string            { return "Breadth-first" }
func (q *queue) Pop() (*core.State, bool) { return q.popFront() }

// stack explores states depth-first.
type stack struct{ deque }

func (s *stack) ID() string               { return StrategyDFS }
func (s *stack) Title() string            { return "Depth-first" }
func (s *stack) Pop() (*core.State, bool) { return s.popBack() }
