// Package selection keeps radio-button semantics over a growing, ordered set
// of selectable items: at most one member is selected at a time. It only
// depends on the Selectable capability, so the same group drives Fyne
// widgets and plain in-memory options.
package selection
