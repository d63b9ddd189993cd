package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/play-publisher/internal/selection"
)

// radioObject is what a RadioGroup accepts: a visible selectable
type radioObject interface {
	fyne.CanvasObject
	selection.Selectable
}

// RadioGroup lays out radio items and keeps at most one of them selected
type RadioGroup struct {
	widget.BaseWidget

	group *selection.Group
	box   *fyne.Container
}

// NewRadioGroup creates an empty group laid out horizontally or vertically
func NewRadioGroup(horizontal bool) *RadioGroup {
	rg := &RadioGroup{group: selection.New()}
	if horizontal {
		rg.box = container.NewHBox()
	} else {
		rg.box = container.NewVBox()
	}
	rg.ExtendBaseWidget(rg)
	return rg
}

// Add appends obj to the group. Objects that are not selectable are rejected
// with selection.ErrNotSelectable.
func (rg *RadioGroup) Add(obj fyne.CanvasObject) (selection.Selectable, error) {
	item, ok := obj.(radioObject)
	if !ok {
		return nil, fmt.Errorf("%w: %T", selection.ErrNotSelectable, obj)
	}
	if _, err := rg.group.Add(item); err != nil {
		return nil, err
	}
	rg.box.Add(item)
	rg.Refresh()
	return item, nil
}

// AddMany appends objs in order. Nothing is added if any object is rejected.
func (rg *RadioGroup) AddMany(objs ...fyne.CanvasObject) error {
	for i, obj := range objs {
		if _, ok := obj.(radioObject); !ok {
			return fmt.Errorf("%w: item %d (%T)", selection.ErrNotSelectable, i, obj)
		}
	}
	for _, obj := range objs {
		if _, err := rg.Add(obj); err != nil {
			return err
		}
	}
	return nil
}

// Remove takes the item at index out of the group and the layout
func (rg *RadioGroup) Remove(index int) error {
	items := rg.group.Items()
	if err := rg.group.Remove(index); err != nil {
		return err
	}
	if obj, ok := items[index].(fyne.CanvasObject); ok {
		rg.box.Remove(obj)
	}
	rg.Refresh()
	return nil
}

// Selected returns the selected item or selection.ErrNotFound
func (rg *RadioGroup) Selected() (selection.Selectable, error) {
	return rg.group.Selected()
}

// SelectedValue returns the value of the selected RadioItem, or "" when
// nothing is selected
func (rg *RadioGroup) SelectedValue() string {
	item, err := rg.group.Selected()
	if err != nil {
		return ""
	}
	if v, ok := item.(interface{ Value() string }); ok {
		return v.Value()
	}
	return item.Label()
}

// SelectValue selects the first item whose value is value. It reports
// whether such an item exists.
func (rg *RadioGroup) SelectValue(value string) bool {
	for i, item := range rg.group.Items() {
		if v, ok := item.(interface{ Value() string }); ok && v.Value() == value {
			return rg.group.Select(i) == nil
		}
	}
	return false
}

// Items returns the members in display order
func (rg *RadioGroup) Items() []selection.Selectable {
	return rg.group.Items()
}

// OnChanged registers fn to run after the selection moved to a new item
func (rg *RadioGroup) OnChanged(fn func(selection.Selectable)) {
	rg.group.OnChanged(fn)
}

// CreateRenderer creates the widget renderer
func (rg *RadioGroup) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rg.box)
}
