package model

import "testing"

func TestParseTrack(t *testing.T) {
	tests := []struct {
		input    string
		expected Track
		wantErr  bool
	}{
		{"alpha", TrackAlpha, false},
		{" Beta ", TrackBeta, false},
		{"PRODUCTION", TrackProduction, false},
		{"internal", TrackInternal, false},
		{"nightly", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseTrack(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseTrack(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseTrack(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestParseReleaseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected ReleaseStatus
		wantErr  bool
	}{
		{"completed", ReleaseStatusCompleted, false},
		{"Draft", ReleaseStatusDraft, false},
		{"halted", ReleaseStatusHalted, false},
		{"inProgress", ReleaseStatusInProgress, false},
		{"in-progress", ReleaseStatusInProgress, false},
		{"in_progress", ReleaseStatusInProgress, false},
		{"done", "", true},
	}

	for _, test := range tests {
		result, err := ParseReleaseStatus(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseReleaseStatus(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseReleaseStatus(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestArtifactKind(t *testing.T) {
	if ArtifactAPK.MIMEType() != "application/vnd.android.package-archive" {
		t.Errorf("Unexpected APK MIME type: %s", ArtifactAPK.MIMEType())
	}
	if ArtifactBundle.MIMEType() != "application/octet-stream" {
		t.Errorf("Unexpected bundle MIME type: %s", ArtifactBundle.MIMEType())
	}
	if ArtifactAPK.Extension() != ".apk" || ArtifactBundle.Extension() != ".aab" {
		t.Error("Unexpected artifact extensions")
	}

	kind, err := ParseArtifactKind("aab")
	if err != nil || kind != ArtifactBundle {
		t.Errorf("ParseArtifactKind(aab) = %s, %v", kind, err)
	}
	if _, err := ParseArtifactKind("zip"); err == nil {
		t.Error("Expected error for unknown artifact kind")
	}
}

func TestPublishRequest_Normalized(t *testing.T) {
	req := PublishRequest{AppName: "  Example ", PackageName: "\torg.example\n"}
	result := req.Normalized()

	if result.AppName != "Example" || result.PackageName != "org.example" {
		t.Errorf("Expected trimmed names, got '%s' / '%s'", result.AppName, result.PackageName)
	}
	if result.Track != DefaultTrack {
		t.Errorf("Expected default track %s, got %s", DefaultTrack, result.Track)
	}
	if result.Status != DefaultReleaseStatus {
		t.Errorf("Expected default status %s, got %s", DefaultReleaseStatus, result.Status)
	}
}

func TestNewRelease(t *testing.T) {
	release := NewRelease(7, ReleaseStatusCompleted, ReleaseNotes{Text: "Bug fixes"})

	if release.Name != "Release 7" {
		t.Errorf("Expected name 'Release 7', got '%s'", release.Name)
	}
	if len(release.VersionCodes) != 1 || release.VersionCodes[0] != 7 {
		t.Errorf("Expected version codes [7], got %v", release.VersionCodes)
	}
	if release.Status != ReleaseStatusCompleted {
		t.Errorf("Expected status completed, got %s", release.Status)
	}
	if len(release.Notes) != 1 || release.Notes[0].Language != DefaultLanguageCode || release.Notes[0].Text != "Bug fixes" {
		t.Errorf("Unexpected notes: %+v", release.Notes)
	}
}
