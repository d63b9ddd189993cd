package model

import (
	"fmt"
	"strings"
)

// Track is a release channel exposed by Google Play
type Track string

const (
	TrackInternal   Track = "internal"
	TrackAlpha      Track = "alpha"
	TrackBeta       Track = "beta"
	TrackProduction Track = "production"
)

// ReleaseStatus is the status a track release is created with
type ReleaseStatus string

const (
	ReleaseStatusCompleted  ReleaseStatus = "completed"
	ReleaseStatusDraft      ReleaseStatus = "draft"
	ReleaseStatusHalted     ReleaseStatus = "halted"
	ReleaseStatusInProgress ReleaseStatus = "inProgress"
)

// ArtifactKind distinguishes a single APK from an App Bundle
type ArtifactKind string

const (
	ArtifactAPK    ArtifactKind = "apk"
	ArtifactBundle ArtifactKind = "bundle"
)

// MIME types declared on upload
const (
	MIMETypeAPK    = "application/vnd.android.package-archive"
	MIMETypeBundle = "application/octet-stream"
)

// Defaults used when the user does not choose otherwise
const (
	DefaultTrack         = TrackAlpha
	DefaultReleaseStatus = ReleaseStatusCompleted
	DefaultLanguageCode  = "en-US"
)

// Tracks returns the tracks offered in the form, in display order
func Tracks() []Track {
	return []Track{TrackAlpha, TrackBeta, TrackProduction}
}

// ReleaseStatuses returns the statuses offered in the form, in display order
func ReleaseStatuses() []ReleaseStatus {
	return []ReleaseStatus{ReleaseStatusCompleted, ReleaseStatusDraft, ReleaseStatusHalted, ReleaseStatusInProgress}
}

// ParseTrack converts user input into a Track
func ParseTrack(s string) (Track, error) {
	switch t := Track(strings.ToLower(strings.TrimSpace(s))); t {
	case TrackInternal, TrackAlpha, TrackBeta, TrackProduction:
		return t, nil
	}
	return "", fmt.Errorf("unknown track: %q", s)
}

// Label returns the display label for the track
func (t Track) Label() string {
	switch t {
	case TrackInternal:
		return "Internal"
	case TrackAlpha:
		return "Alpha"
	case TrackBeta:
		return "Beta"
	case TrackProduction:
		return "Production"
	default:
		return string(t)
	}
}

// ParseReleaseStatus converts user input into a ReleaseStatus. Matching is
// case-insensitive and accepts "in-progress" / "in_progress" spellings.
func ParseReleaseStatus(s string) (ReleaseStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	for _, status := range ReleaseStatuses() {
		if strings.ToLower(string(status)) == normalized {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown release status: %q", s)
}

// Label returns the display label for the status
func (s ReleaseStatus) Label() string {
	switch s {
	case ReleaseStatusCompleted:
		return "Completed"
	case ReleaseStatusDraft:
		return "Draft"
	case ReleaseStatusHalted:
		return "Halted"
	case ReleaseStatusInProgress:
		return "In Progress"
	default:
		return string(s)
	}
}

// ParseArtifactKind converts user input into an ArtifactKind
func ParseArtifactKind(s string) (ArtifactKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "apk":
		return ArtifactAPK, nil
	case "bundle", "aab", "appbundle", "app-bundle":
		return ArtifactBundle, nil
	}
	return "", fmt.Errorf("unknown artifact kind: %q", s)
}

// MIMEType returns the content type the artifact is uploaded with
func (k ArtifactKind) MIMEType() string {
	if k == ArtifactAPK {
		return MIMETypeAPK
	}
	return MIMETypeBundle
}

// Extension returns the file extension (with dot) expected for the kind
func (k ArtifactKind) Extension() string {
	if k == ArtifactAPK {
		return ".apk"
	}
	return ".aab"
}

// Label returns a human readable name for the kind
func (k ArtifactKind) Label() string {
	if k == ArtifactAPK {
		return "APK"
	}
	return "App Bundle"
}

// PublishRequest is assembled when the user submits the form. ArtifactPath and
// ReleaseNotes are filled in while the workflow runs.
type PublishRequest struct {
	AppName      string
	PackageName  string
	Track        Track
	Status       ReleaseStatus
	Kind         ArtifactKind
	KeyFilePath  string
	ArtifactPath string
	ReleaseNotes ReleaseNotes
}

// Normalized returns a copy with surrounding whitespace removed and defaults
// applied to empty track and status.
func (r PublishRequest) Normalized() PublishRequest {
	r.AppName = strings.TrimSpace(r.AppName)
	r.PackageName = strings.TrimSpace(r.PackageName)
	r.KeyFilePath = strings.TrimSpace(r.KeyFilePath)
	if r.Track == "" {
		r.Track = DefaultTrack
	}
	if r.Status == "" {
		r.Status = DefaultReleaseStatus
	}
	return r
}

// ReleaseNotes is a single localized release note
type ReleaseNotes struct {
	Language string
	Text     string
}

// Release is the single release written to a track
type Release struct {
	Name         string
	VersionCodes []int64
	Status       ReleaseStatus
	Notes        []ReleaseNotes
}

// ReleaseName returns the name a release for versionCode is given
func ReleaseName(versionCode int64) string {
	return fmt.Sprintf("Release %d", versionCode)
}

// NewRelease builds the release referencing one uploaded version code
func NewRelease(versionCode int64, status ReleaseStatus, notes ReleaseNotes) *Release {
	if notes.Language == "" {
		notes.Language = DefaultLanguageCode
	}
	return &Release{
		Name:         ReleaseName(versionCode),
		VersionCodes: []int64{versionCode},
		Status:       status,
		Notes:        []ReleaseNotes{notes},
	}
}
