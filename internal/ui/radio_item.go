package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// RadioItem is a check box that behaves as one option of a RadioGroup.
// A checked item cannot be unchecked by the user; it is cleared only when
// another item of its group gets selected.
type RadioItem struct {
	widget.Check

	value     string
	observers []func(bool)
}

// NewRadioItem creates an unchecked radio item showing label
func NewRadioItem(label, value string) *RadioItem {
	item := &RadioItem{value: value}
	item.Text = label
	item.OnChanged = item.changed
	item.ExtendBaseWidget(item)
	return item
}

// Value returns the value the item stands for
func (r *RadioItem) Value() string {
	return r.value
}

// Label returns the displayed text
func (r *RadioItem) Label() string {
	return r.Text
}

// IsSelected reports whether the item is checked
func (r *RadioItem) IsSelected() bool {
	return r.Checked
}

// SetSelected checks or clears the item. Observers are notified through
// the check's change callback.
func (r *RadioItem) SetSelected(selected bool) {
	r.SetChecked(selected)
}

// OnSelectionChanged registers an observer of the checked state
func (r *RadioItem) OnSelectionChanged(fn func(bool)) {
	if fn != nil {
		r.observers = append(r.observers, fn)
	}
}

// Tapped selects the item; tapping a selected item does nothing
func (r *RadioItem) Tapped(ev *fyne.PointEvent) {
	if r.Checked {
		return
	}
	r.Check.Tapped(ev)
}

// TypedRune handles the space key like Tapped
func (r *RadioItem) TypedRune(ch rune) {
	if ch == ' ' && r.Checked {
		return
	}
	r.Check.TypedRune(ch)
}

func (r *RadioItem) changed(checked bool) {
	for _, fn := range r.observers {
		fn(checked)
	}
}
