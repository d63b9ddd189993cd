package ui

// UI-wide constants

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconKey      = "🔑"
	IconUpload   = "⬆"
	IconError    = "❌"
	IconSuccess  = "✔"
)

// Layout sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 420

	NotesDialogWidth  float32 = 480
	NotesDialogHeight float32 = 320
	NotesMinRows              = 6

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300

	LogoSize float32 = 32
)
