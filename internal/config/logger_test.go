package config

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug"},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG"},
		{name: "Valid level: info", level: "info"},
		{name: "Valid level: warn", level: "warn"},
		{name: "Valid level: warning", level: "warning"},
		{name: "Valid level: ERROR", level: "ERROR"},
		{name: "Invalid level: random", level: "random", wantErr: true},
		{name: "Invalid level: empty string", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &Logger{Level: tt.level, Format: LogFormatConsole}

			result, err := logger.Configure(&bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_InvalidFormat(t *testing.T) {
	logger := &Logger{Level: "info", Format: "xml"}
	if _, err := logger.Configure(&bytes.Buffer{}); err == nil {
		t.Error("Configure() should reject unknown formats")
	}
}

type keyMaterial struct {
	ClientEmail string
	KeyID       string `masq:"secret"`
}

func TestLogger_Configure_JSONRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{Level: "debug", Format: LogFormatJSON}

	result, err := logger.Configure(&buf)
	if err != nil {
		t.Fatalf("Configure() unexpected error = %v", err)
	}

	result.Info("credentials loaded", "key", keyMaterial{ClientEmail: "publisher@example.com", KeyID: "0123456789abcdef"})

	out := buf.String()
	if !strings.Contains(out, "publisher@example.com") {
		t.Errorf("Expected client email in output, got: %s", out)
	}
	if strings.Contains(out, "0123456789abcdef") {
		t.Errorf("Expected key id to be redacted, got: %s", out)
	}
}

func TestLogger_Configure_LevelBehavior(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{Level: "warn", Format: LogFormatJSON}

	result, err := logger.Configure(&buf)
	if err != nil {
		t.Fatalf("Configure() unexpected error = %v", err)
	}

	result.Info("hidden message")
	result.Warn("visible message")

	if strings.Contains(buf.String(), "hidden message") {
		t.Error("Info should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "visible message") {
		t.Error("Warn should be written at warn level")
	}
}

func TestLogger_Flags(t *testing.T) {
	logger := &Logger{}
	flags := logger.Flags()

	if len(flags) != 3 {
		t.Errorf("Flags() returned %d flags, want 3", len(flags))
	}

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		switch f := flag.(type) {
		case interface{ Names() []string }:
			names := f.Names()
			if len(names) > 0 {
				flagNames[names[0]] = true
			}
		}
	}

	for _, name := range []string{"log-level", "log-format", "log-color"} {
		if !flagNames[name] {
			t.Errorf("Missing %s flag", name)
		}
	}
}
