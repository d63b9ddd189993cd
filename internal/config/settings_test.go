package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/play-publisher/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAppAndPackageName(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAppName() != "" || settings.GetPackageName() != "" {
		t.Error("App and package name should start empty")
	}

	settings.SetAppName("Example")
	settings.SetPackageName("org.example")

	if settings.GetAppName() != "Example" {
		t.Errorf("Expected app name 'Example', got '%s'", settings.GetAppName())
	}
	if settings.GetPackageName() != "org.example" {
		t.Errorf("Expected package name 'org.example', got '%s'", settings.GetPackageName())
	}
}

func TestTrack(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if track := settings.GetTrack(); track != DefaultTrack {
		t.Errorf("Expected default track %s, got %s", DefaultTrack, track)
	}

	// Test setting custom value
	settings.SetTrack(model.TrackProduction)
	if track := settings.GetTrack(); track != model.TrackProduction {
		t.Errorf("Expected track %s, got %s", model.TrackProduction, track)
	}

	// Unknown stored value falls back to default
	app.Preferences().SetString(KeyTrack, "nightly")
	if track := settings.GetTrack(); track != DefaultTrack {
		t.Errorf("Expected fallback track %s, got %s", DefaultTrack, track)
	}
}

func TestReleaseStatus(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if status := settings.GetReleaseStatus(); status != DefaultReleaseStatus {
		t.Errorf("Expected default status %s, got %s", DefaultReleaseStatus, status)
	}

	settings.SetReleaseStatus(model.ReleaseStatusInProgress)
	if status := settings.GetReleaseStatus(); status != model.ReleaseStatusInProgress {
		t.Errorf("Expected status %s, got %s", model.ReleaseStatusInProgress, status)
	}
}

func TestLanguageCode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if code := settings.GetLanguageCode(); code != DefaultLanguageCode {
		t.Errorf("Expected default language code %s, got %s", DefaultLanguageCode, code)
	}

	settings.SetLanguageCode("de-DE")
	if code := settings.GetLanguageCode(); code != "de-DE" {
		t.Errorf("Expected language code de-DE, got %s", code)
	}

	// Empty code defaults back
	settings.SetLanguageCode("")
	if code := settings.GetLanguageCode(); code != DefaultLanguageCode {
		t.Errorf("Empty code should default to %s, got %s", DefaultLanguageCode, code)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	settings.SetLogLevel("debug")
	if level := settings.GetLogLevel(); level != "debug" {
		t.Errorf("Expected log level debug, got %s", level)
	}

	if len(settings.GetLogLevelOptions()) != 4 {
		t.Errorf("Expected 4 log level options, got %d", len(settings.GetLogLevelOptions()))
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
