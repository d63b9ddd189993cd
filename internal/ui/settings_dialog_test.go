package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/play-publisher/internal/config"
)

func TestSettingsDialogSave(t *testing.T) {
	app := test.NewApp()
	w := app.NewWindow("test")
	defer w.Close()

	settings := config.NewSettings(app)
	l := NewLocalization()
	sd := NewSettingsDialog(settings, l, w)
	sd.loadCurrentSettings()

	if sd.languageCodeEntry.Text != config.DefaultLanguageCode {
		t.Errorf("Expected default language code, got %q", sd.languageCodeEntry.Text)
	}
	if sd.logLevelSelect.Selected != config.DefaultLogLevel {
		t.Errorf("Expected default log level, got %q", sd.logLevelSelect.Selected)
	}

	saved := false
	sd.onSaved = func() { saved = true }

	sd.languageCodeEntry.SetText(" ru-RU ")
	sd.logLevelSelect.SetSelected("debug")
	sd.languageSelect.SetSelected("Русский")
	sd.onSave(true)

	if !saved {
		t.Error("onSaved should run after saving")
	}
	if settings.GetLanguageCode() != "ru-RU" {
		t.Errorf("Expected ru-RU, got %q", settings.GetLanguageCode())
	}
	if settings.GetLogLevel() != "debug" {
		t.Errorf("Expected debug, got %q", settings.GetLogLevel())
	}
	if settings.GetLanguage() != "ru" || l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru interface language, got %s/%s", settings.GetLanguage(), l.GetCurrentLanguage())
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	app := test.NewApp()
	w := app.NewWindow("test")
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), w)
	sd.loadCurrentSettings()

	sd.logLevelSelect.SetSelected("error")
	sd.onSave(false)

	if settings.GetLogLevel() != config.DefaultLogLevel {
		t.Errorf("Cancelled dialog should not store values, got %q", settings.GetLogLevel())
	}
}
