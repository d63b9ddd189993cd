// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the publish form, wires the upload buttons to the publish service
// and answers its prompts with dialogs. All UI strings are localized via
// Localization.
package ui
