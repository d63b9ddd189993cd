package selection

import "sync"

// Selectable is the capability a group member must provide.
// SetSelected must notify OnSelectionChanged observers when the value changes.
type Selectable interface {
	IsSelected() bool
	SetSelected(selected bool)
	OnSelectionChanged(func(selected bool))
	Label() string
}

// Option is an in-memory Selectable carrying a value
type Option struct {
	label string
	value string

	mu        sync.Mutex
	selected  bool
	observers []func(bool)
}

// NewOption creates an option with the given label and value
func NewOption(label, value string, selected bool) *Option {
	return &Option{label: label, value: value, selected: selected}
}

// Label returns the display label
func (o *Option) Label() string {
	return o.label
}

// Value returns the value the option stands for
func (o *Option) Value() string {
	return o.value
}

// IsSelected reports the selection flag
func (o *Option) IsSelected() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.selected
}

// SetSelected updates the flag and notifies observers if it changed
func (o *Option) SetSelected(selected bool) {
	o.mu.Lock()
	if o.selected == selected {
		o.mu.Unlock()
		return
	}
	o.selected = selected
	observers := append([]func(bool)(nil), o.observers...)
	o.mu.Unlock()

	for _, fn := range observers {
		fn(selected)
	}
}

// OnSelectionChanged registers an observer
func (o *Option) OnSelectionChanged(fn func(bool)) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observers = append(o.observers, fn)
}
