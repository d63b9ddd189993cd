package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/play-publisher/internal/model"
)

// File extensions accepted by the choosers
const (
	ExtAPK    = ".apk"
	ExtBundle = ".aab"
	ExtJSON   = ".json"
)

// Size units for HumanSize
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// KindFromPath detects the artifact kind from the file extension
func KindFromPath(path string) (model.ArtifactKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtAPK:
		return model.ArtifactAPK, nil
	case ExtBundle:
		return model.ArtifactBundle, nil
	default:
		return "", fmt.Errorf("cannot detect artifact kind from %q: expected %s or %s", filepath.Base(path), ExtAPK, ExtBundle)
	}
}

// CheckArtifactFile verifies that path is a regular file with the extension
// of kind and returns its size. The content is not inspected.
func CheckArtifactFile(path string, kind model.ArtifactKind) (int64, error) {
	if !strings.EqualFold(filepath.Ext(path), kind.Extension()) {
		return 0, fmt.Errorf("%s file must have %s extension: %s", kind.Label(), kind.Extension(), filepath.Base(path))
	}
	return checkRegularFile(path)
}

// CheckKeyFile verifies that path is a regular JSON file
func CheckKeyFile(path string) error {
	if path == "" {
		return fmt.Errorf("key file path is empty")
	}
	if !strings.EqualFold(filepath.Ext(path), ExtJSON) {
		return fmt.Errorf("key file must be a %s file: %s", ExtJSON, filepath.Base(path))
	}
	_, err := checkRegularFile(path)
	return err
}

func checkRegularFile(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("file does not exist: %s", path)
		}
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("not a regular file: %s", path)
	}
	return info.Size(), nil
}

// HumanSize formats a byte count for display
func HumanSize(size int64) string {
	switch {
	case size >= GiB:
		return fmt.Sprintf("%.1f GB", float64(size)/GiB)
	case size >= MiB:
		return fmt.Sprintf("%.1f MB", float64(size)/MiB)
	case size >= KiB:
		return fmt.Sprintf("%.1f KB", float64(size)/KiB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
