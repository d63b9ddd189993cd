package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/play-publisher/internal/model"
)

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected model.ArtifactKind
		wantErr  bool
	}{
		{"/builds/app-release.apk", model.ArtifactAPK, false},
		{"/builds/app-release.AAB", model.ArtifactBundle, false},
		{"app.aab", model.ArtifactBundle, false},
		{"/builds/app-release.zip", "", true},
		{"/builds/noext", "", true},
	}

	for _, test := range tests {
		result, err := KindFromPath(test.path)
		if (err != nil) != test.wantErr {
			t.Errorf("KindFromPath(%s) error = %v, wantErr %v", test.path, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("KindFromPath(%s) = %s, expected %s", test.path, result, test.expected)
		}
	}
}

func TestCheckArtifactFile(t *testing.T) {
	tempDir := t.TempDir()
	apk := filepath.Join(tempDir, "app.apk")
	if err := os.WriteFile(apk, []byte("fake apk content"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	size, err := CheckArtifactFile(apk, model.ArtifactAPK)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if size != int64(len("fake apk content")) {
		t.Errorf("Expected size %d, got %d", len("fake apk content"), size)
	}

	// Wrong kind for extension
	_, err = CheckArtifactFile(apk, model.ArtifactBundle)
	if err == nil || !strings.Contains(err.Error(), ".aab") {
		t.Errorf("Expected extension error, got %v", err)
	}

	// Missing file
	_, err = CheckArtifactFile(filepath.Join(tempDir, "missing.apk"), model.ArtifactAPK)
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got %v", err)
	}

	// Directory with matching extension
	dir := filepath.Join(tempDir, "dir.aab")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	_, err = CheckArtifactFile(dir, model.ArtifactBundle)
	if err == nil || !strings.Contains(err.Error(), "not a regular file") {
		t.Errorf("Expected 'not a regular file' error, got %v", err)
	}
}

func TestCheckKeyFile(t *testing.T) {
	tempDir := t.TempDir()
	key := filepath.Join(tempDir, "service-account.json")
	if err := os.WriteFile(key, []byte("{}"), 0600); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}

	if err := CheckKeyFile(key); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := CheckKeyFile(""); err == nil {
		t.Error("Expected error for empty path")
	}
	if err := CheckKeyFile(filepath.Join(tempDir, "key.txt")); err == nil {
		t.Error("Expected error for non-JSON extension")
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * MiB, "5.0 MB"},
		{3 * GiB / 2, "1.5 GB"},
	}

	for _, test := range tests {
		if result := HumanSize(test.size); result != test.expected {
			t.Errorf("HumanSize(%d) = %s, expected %s", test.size, result, test.expected)
		}
	}
}
