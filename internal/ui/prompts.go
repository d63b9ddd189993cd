package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ytget/play-publisher/internal/model"
	"github.com/ytget/play-publisher/internal/publish"
)

// ChooseArtifact shows a file dialog filtered to the artifact extension and
// waits for the user. It must not be called from the UI goroutine.
func (ui *PublisherUI) ChooseArtifact(ctx context.Context, kind model.ArtifactKind) (string, error) {
	result := make(chan string, 1)

	fyne.Do(func() {
		d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				result <- ""
				return
			}
			defer rc.Close()
			result <- rc.URI().Path()
		}, ui.window)
		d.SetFilter(storage.NewExtensionFileFilter([]string{kind.Extension()}))
		d.Show()
	})

	select {
	case <-ctx.Done():
		return "", goerr.Wrap(ctx.Err(), "artifact chooser interrupted")
	case path := <-result:
		if path == "" {
			return "", goerr.Wrap(publish.ErrCancelled, "artifact chooser dismissed", goerr.V("kind", kind))
		}
		return path, nil
	}
}

// ReleaseNotes asks for the notes of the uploaded version. Dismissing the
// form yields empty notes in the default language.
func (ui *PublisherUI) ReleaseNotes(ctx context.Context, versionCode int64) (model.ReleaseNotes, error) {
	result := make(chan model.ReleaseNotes, 1)

	fyne.Do(func() {
		ui.showReleaseNotesForm(versionCode, func(notes model.ReleaseNotes) {
			result <- notes
		})
	})

	select {
	case <-ctx.Done():
		return model.ReleaseNotes{}, goerr.Wrap(ctx.Err(), "release notes interrupted")
	case notes := <-result:
		return notes, nil
	}
}

func (ui *PublisherUI) showReleaseNotesForm(versionCode int64, done func(model.ReleaseNotes)) {
	l := ui.localization

	notesEntry := widget.NewMultiLineEntry()
	notesEntry.SetPlaceHolder(l.GetText(KeyNotesHint))
	notesEntry.SetMinRowsVisible(NotesMinRows)
	notesEntry.Wrapping = fyne.TextWrapWord

	languageEntry := widget.NewEntry()
	languageEntry.SetText(ui.settings.GetLanguageCode())

	items := []*widget.FormItem{
		widget.NewFormItem(l.GetText(KeyReleaseNotes), notesEntry),
		widget.NewFormItem(l.GetText(KeyNotesLanguage), languageEntry),
	}

	d := dialog.NewForm(
		fmt.Sprintf(l.GetText(KeyReleaseNotesFor), versionCode),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if !confirmed {
				done(model.ReleaseNotes{Language: model.DefaultLanguageCode})
				return
			}
			notes := collectNotes(notesEntry.Text, languageEntry.Text)
			ui.settings.SetLanguageCode(notes.Language)
			done(notes)
		},
		ui.window,
	)
	d.Resize(fyne.NewSize(NotesDialogWidth, NotesDialogHeight))
	d.Show()
}

// collectNotes trims the form input; an empty language falls back to the
// default code
func collectNotes(text, language string) model.ReleaseNotes {
	language = strings.TrimSpace(language)
	if language == "" {
		language = model.DefaultLanguageCode
	}
	return model.ReleaseNotes{Language: language, Text: strings.TrimSpace(text)}
}
