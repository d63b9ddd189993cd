package ui

import "testing"

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyUploadAPK); got != "Upload APK" {
		t.Errorf("Expected 'Upload APK', got %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing key should return itself, got %q", got)
	}
}

func TestLocalizationComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("No texts for %s", lang)
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s misses key %s", lang, key)
			}
		}
	}
}
