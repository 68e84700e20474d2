package catalog

import (
	"fmt"
	"sort"
)

// Provider is read-only access to the learning item catalog.
type Provider interface {
	// Item returns the item with the given id.
	Item(id string) (Item, bool)

	// ByType returns all items of the given type, sorted by id.
	ByType(t ItemType) []Item

	// All returns every item in the catalog, sorted by id.
	All() []Item
}

// Memory is an in-memory Provider backed by a map.
type Memory struct {
	byID   map[string]Item
	sorted []Item
}

// NewMemory builds an in-memory catalog from the given items.
// Duplicate ids are rejected.
func NewMemory(items []Item) (*Memory, error) {
	m := &Memory{byID: make(map[string]Item, len(items))}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("catalog item with empty id (%q)", it.Japanese)
		}
		if _, exists := m.byID[it.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog item id %q", it.ID)
		}
		m.byID[it.ID] = it
	}
	m.sorted = make([]Item, 0, len(items))
	for _, it := range m.byID {
		m.sorted = append(m.sorted, it)
	}
	sort.Slice(m.sorted, func(i, j int) bool { return m.sorted[i].ID < m.sorted[j].ID })
	return m, nil
}

func (m *Memory) Item(id string) (Item, bool) {
	it, ok := m.byID[id]
	return it, ok
}

func (m *Memory) ByType(t ItemType) []Item {
	var out []Item
	for _, it := range m.sorted {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out
}

func (m *Memory) All() []Item {
	out := make([]Item, len(m.sorted))
	copy(out, m.sorted)
	return out
}
