package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/play-publisher/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyAppName       = "app_name"
	KeyPackageName   = "package_name"
	KeyTrack         = "track"
	KeyReleaseStatus = "release_status"
	KeyLanguageCode  = "release_language_code"
	KeyLanguage      = "app_language"
	KeyLogLevel      = "log_level"
)

// Default values
const (
	DefaultTrack         = model.DefaultTrack
	DefaultReleaseStatus = model.DefaultReleaseStatus
	DefaultLanguageCode  = model.DefaultLanguageCode
	DefaultLanguage      = "system"
	DefaultLogLevel      = "info"
)

// Settings remembers form values between runs. The key file path is not
// stored: it lives only as long as the window.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAppName returns the last used app name
func (s *Settings) GetAppName() string {
	return s.app.Preferences().String(KeyAppName)
}

// SetAppName stores the app name
func (s *Settings) SetAppName(name string) {
	s.app.Preferences().SetString(KeyAppName, name)
}

// GetPackageName returns the last used package name
func (s *Settings) GetPackageName() string {
	return s.app.Preferences().String(KeyPackageName)
}

// SetPackageName stores the package name
func (s *Settings) SetPackageName(name string) {
	s.app.Preferences().SetString(KeyPackageName, name)
}

// GetTrack returns the configured track, falling back to the default for
// unknown stored values
func (s *Settings) GetTrack() model.Track {
	track, err := model.ParseTrack(s.app.Preferences().String(KeyTrack))
	if err != nil {
		return DefaultTrack
	}
	return track
}

// SetTrack stores the track
func (s *Settings) SetTrack(track model.Track) {
	s.app.Preferences().SetString(KeyTrack, string(track))
}

// GetReleaseStatus returns the configured release status
func (s *Settings) GetReleaseStatus() model.ReleaseStatus {
	status, err := model.ParseReleaseStatus(s.app.Preferences().String(KeyReleaseStatus))
	if err != nil {
		return DefaultReleaseStatus
	}
	return status
}

// SetReleaseStatus stores the release status
func (s *Settings) SetReleaseStatus(status model.ReleaseStatus) {
	s.app.Preferences().SetString(KeyReleaseStatus, string(status))
}

// GetLanguageCode returns the language code suggested for release notes
func (s *Settings) GetLanguageCode() string {
	code := s.app.Preferences().String(KeyLanguageCode)
	if code == "" {
		s.SetLanguageCode(DefaultLanguageCode)
		return DefaultLanguageCode
	}
	return code
}

// SetLanguageCode stores the release notes language code
func (s *Settings) SetLanguageCode(code string) {
	if code == "" {
		code = DefaultLanguageCode
	}
	s.app.Preferences().SetString(KeyLanguageCode, code)
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the log level used by the GUI
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel stores the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevelOptions returns the accepted log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
