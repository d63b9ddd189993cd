package selection

import (
	"errors"
	"testing"
)

func trackOptions() (*Option, *Option, *Option) {
	return NewOption("Alpha", "alpha", true), NewOption("Beta", "beta", false), NewOption("Production", "production", false)
}

func TestGroup_SelectMovesSelection(t *testing.T) {
	alpha, beta, prod := trackOptions()
	g := New()
	if err := g.AddMany(alpha, beta, prod); err != nil {
		t.Fatalf("AddMany failed: %v", err)
	}

	beta.SetSelected(true)

	if alpha.IsSelected() {
		t.Error("Alpha should be deselected")
	}
	if !beta.IsSelected() {
		t.Error("Beta should be selected")
	}
	if prod.IsSelected() {
		t.Error("Production should stay deselected")
	}

	selected, err := g.Selected()
	if err != nil {
		t.Fatalf("Selected failed: %v", err)
	}
	if selected != beta {
		t.Errorf("Expected Beta to be selected, got %s", selected.Label())
	}
}

func TestGroup_ExactlyOneSelected(t *testing.T) {
	for n := 1; n <= 6; n++ {
		options := make([]*Option, n)
		items := make([]any, n)
		for i := range options {
			options[i] = NewOption("opt", "v", i == 0)
			items[i] = options[i]
		}
		g := New()
		if err := g.AddMany(items...); err != nil {
			t.Fatalf("AddMany failed: %v", err)
		}

		for target := range options {
			if err := g.Select(target); err != nil {
				t.Fatalf("Select(%d) failed: %v", target, err)
			}
			count := 0
			for i, o := range options {
				if o.IsSelected() {
					count++
					if i != target {
						t.Errorf("n=%d: option %d selected, expected %d", n, i, target)
					}
				}
			}
			if count != 1 {
				t.Errorf("n=%d target=%d: expected exactly one selected, got %d", n, target, count)
			}
		}
	}
}

func TestGroup_SelectedNotFound(t *testing.T) {
	g := New(NewOption("Beta", "beta", false))

	_, err := g.Selected()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	empty := New()
	if _, err := empty.Selected(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on empty group, got %v", err)
	}
}

func TestGroup_AddRejectsNonSelectable(t *testing.T) {
	g := New()

	if _, err := g.Add("not a radio button"); !errors.Is(err, ErrNotSelectable) {
		t.Errorf("Expected ErrNotSelectable, got %v", err)
	}
	if _, err := g.Add(nil); !errors.Is(err, ErrNotSelectable) {
		t.Errorf("Expected ErrNotSelectable for nil, got %v", err)
	}

	err := g.AddMany(NewOption("Alpha", "alpha", false), 42)
	if !errors.Is(err, ErrNotSelectable) {
		t.Errorf("Expected ErrNotSelectable from AddMany, got %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("Expected no items added after rejected batch, got %d", g.Len())
	}
}

func TestGroup_AddReturnsItem(t *testing.T) {
	g := New()
	opt := NewOption("Draft", "draft", false)

	added, err := g.Add(opt)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if added != opt {
		t.Error("Add should return the registered item")
	}
}

func TestGroup_AddSelectedItemWins(t *testing.T) {
	alpha, _, _ := trackOptions()
	g := New(alpha)

	late := NewOption("Internal", "internal", true)
	if _, err := g.Add(late); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if alpha.IsSelected() {
		t.Error("Previously selected item should be cleared")
	}
	if !late.IsSelected() {
		t.Error("Newly added selected item should stay selected")
	}
}

func TestGroup_Remove(t *testing.T) {
	alpha, beta, prod := trackOptions()
	g := New(alpha, beta, prod)

	if err := g.Remove(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if err := g.Remove(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange for negative index, got %v", err)
	}

	if err := g.Remove(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", g.Len())
	}
	items := g.Items()
	if items[0] != alpha || items[1] != prod {
		t.Error("Remaining items should keep insertion order")
	}

	// A removed item no longer affects the group
	beta.SetSelected(true)
	if !alpha.IsSelected() {
		t.Error("Selecting a removed item must not deselect group members")
	}
}

func TestGroup_InitialMultipleSelected(t *testing.T) {
	first := NewOption("Completed", "completed", true)
	second := NewOption("Draft", "draft", true)
	g := New(first, second)

	if !first.IsSelected() || second.IsSelected() {
		t.Error("Only the first initially selected item should stay selected")
	}
	idx, err := g.SelectedIndex()
	if err != nil || idx != 0 {
		t.Errorf("SelectedIndex() = %d, %v; expected 0", idx, err)
	}
}

func TestGroup_OnChanged(t *testing.T) {
	alpha, beta, _ := trackOptions()
	g := New(alpha, beta)

	var got []string
	g.OnChanged(func(item Selectable) {
		got = append(got, item.Label())
	})

	beta.SetSelected(true)
	beta.SetSelected(true) // no change, no notification
	alpha.SetSelected(true)

	if len(got) != 2 || got[0] != "Beta" || got[1] != "Alpha" {
		t.Errorf("Unexpected change notifications: %v", got)
	}
}

func TestGroup_SelectOutOfRange(t *testing.T) {
	g := New(NewOption("Alpha", "alpha", true))
	if err := g.Select(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}
