package selection

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotSelectable is returned when adding a value without the Selectable capability
	ErrNotSelectable = errors.New("item is not selectable")

	// ErrIndexOutOfRange is returned by Remove and Select for a bad position
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound is returned by Selected when no member is selected
	ErrNotFound = errors.New("no item is selected")
)

type member struct {
	item    Selectable
	removed bool
}

// Group enforces that at most one of its members is selected
type Group struct {
	mu        sync.Mutex
	members   []*member
	listeners []func(Selectable)
}

// New creates a group holding items in order. If several items are already
// selected, only the first keeps its selection.
func New(items ...Selectable) *Group {
	g := &Group{}
	seen := false
	for _, item := range items {
		if item.IsSelected() {
			if seen {
				item.SetSelected(false)
			}
			seen = true
		}
		g.register(item)
	}
	return g
}

// Add registers item and returns it. It fails with ErrNotSelectable if item
// does not implement Selectable.
func (g *Group) Add(item any) (Selectable, error) {
	s, ok := item.(Selectable)
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotSelectable, item)
	}
	if s.IsSelected() {
		g.deselectOthers(nil)
	}
	g.register(s)
	return s, nil
}

// AddMany registers items in order. Nothing is added if any item is rejected.
func (g *Group) AddMany(items ...any) error {
	selectables := make([]Selectable, 0, len(items))
	for i, item := range items {
		s, ok := item.(Selectable)
		if !ok || s == nil {
			return fmt.Errorf("%w: item %d (%T)", ErrNotSelectable, i, item)
		}
		selectables = append(selectables, s)
	}
	for _, s := range selectables {
		if _, err := g.Add(s); err != nil {
			return err
		}
	}
	return nil
}

// Remove deregisters the item at index
func (g *Group) Remove(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= len(g.members) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(g.members))
	}
	g.members[index].removed = true
	g.members = append(g.members[:index], g.members[index+1:]...)
	return nil
}

// Selected returns the selected member or ErrNotFound
func (g *Group) Selected() (Selectable, error) {
	for _, item := range g.Items() {
		if item.IsSelected() {
			return item, nil
		}
	}
	return nil, ErrNotFound
}

// SelectedIndex returns the position of the selected member or ErrNotFound
func (g *Group) SelectedIndex() (int, error) {
	for i, item := range g.Items() {
		if item.IsSelected() {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// Select selects the member at index through its own SetSelected
func (g *Group) Select(index int) error {
	items := g.Items()
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(items))
	}
	items[index].SetSelected(true)
	return nil
}

// Items returns the current members in insertion order
func (g *Group) Items() []Selectable {
	g.mu.Lock()
	defer g.mu.Unlock()

	items := make([]Selectable, len(g.members))
	for i, m := range g.members {
		items[i] = m.item
	}
	return items
}

// Len returns the number of members
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.members)
}

// OnChanged registers fn to be called with the newly selected member after
// the others have been deselected.
func (g *Group) OnChanged(fn func(Selectable)) {
	if fn == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

func (g *Group) register(item Selectable) {
	m := &member{item: item}

	g.mu.Lock()
	g.members = append(g.members, m)
	g.mu.Unlock()

	item.OnSelectionChanged(func(selected bool) {
		if !selected {
			return
		}
		g.mu.Lock()
		removed := m.removed
		g.mu.Unlock()
		if removed {
			return
		}
		g.deselectOthers(m)
		g.notify(m.item)
	})
}

// deselectOthers clears every member except keep. Observers run outside the
// lock since deselecting fires them again.
func (g *Group) deselectOthers(keep *member) {
	g.mu.Lock()
	others := make([]Selectable, 0, len(g.members))
	for _, m := range g.members {
		if m != keep {
			others = append(others, m.item)
		}
	}
	g.mu.Unlock()

	for _, item := range others {
		if item.IsSelected() {
			item.SetSelected(false)
		}
	}
}

func (g *Group) notify(item Selectable) {
	g.mu.Lock()
	listeners := append([]func(Selectable)(nil), g.listeners...)
	g.mu.Unlock()

	for _, fn := range listeners {
		fn(item)
	}
}
