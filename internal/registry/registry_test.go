package registry_test

import (
	"testing"

	"github.com/vovakirdan/railsolve/internal/railbound/core"
	"github.com/vovakirdan/railsolve/internal/registry"
)

type stackFrontier struct {
	items []*core.State
}

func (f *stackFrontier) ID() string         { return "test-stack" }
func (f *stackFrontier) Title() string      { return "Test Stack" }
func (f *stackFrontier) Push(s *core.State) { f.items = append(f.items, s) }
func (f *stackFrontier) Len() int           { return len(f.items) }
func (f *stackFrontier) Pop() (*core.State, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	s := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return s, true
}

func init() {
	registry.Register("test-stack", func() registry.Frontier { return &stackFrontier{} })
}

func TestRegistryCreate(t *testing.T) {
	if !registry.Exists("test-stack") {
		t.Fatal("expected test-stack to be registered")
	}

	f, err := registry.Create("test-stack")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f.Len() != 0 {
		t.Errorf("expected empty frontier, got %d", f.Len())
	}

	// Each call returns a fresh frontier.
	f.Push(&core.State{})
	g, _ := registry.Create("test-stack")
	if g.Len() != 0 {
		t.Error("frontiers should not share storage")
	}
}

func TestRegistryUnknown(t *testing.T) {
	if _, err := registry.Create("nope"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	registry.Register("test-stack", func() registry.Frontier { return &stackFrontier{} })
}

func TestRegistryListSorted(t *testing.T) {
	list := registry.List()
	found := false
	for i, info := range list {
		if info.ID == "test-stack" {
			found = true
			if info.Title != "Test Stack" {
				t.Errorf("unexpected title %q", info.Title)
			}
		}
		if i > 0 && list[i-1].ID >= info.ID {
			t.Errorf("list not sorted: %s >= %s", list[i-1].ID, info.ID)
		}
	}
	if !found {
		t.Error("test-stack missing from List")
	}
}
