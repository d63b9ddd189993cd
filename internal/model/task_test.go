package model

import (
	"strings"
	"testing"
	"time"
)

func TestPublishTask_Duration(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	task := &PublishTask{StartedAt: start}
	if task.Duration() != 0 {
		t.Errorf("Expected zero duration for unfinished task, got %v", task.Duration())
	}

	task.FinishedAt = start.Add(90 * time.Second)
	if task.Duration() != 90*time.Second {
		t.Errorf("Expected 90s, got %v", task.Duration())
	}
}

func TestPublishTask_Summary(t *testing.T) {
	tests := []struct {
		task     PublishTask
		contains string
	}{
		{
			PublishTask{Request: PublishRequest{PackageName: "org.example", Track: TrackBeta}, State: StateCommitted, VersionCode: 7, CommitID: "edit-1"},
			"org.example Release 7 committed to beta (edit edit-1)",
		},
		{
			PublishTask{Request: PublishRequest{PackageName: "org.example"}, State: StateFailed, FailedStep: "tracks.update", LastError: "boom"},
			"failed at tracks.update: boom",
		},
		{
			PublishTask{Request: PublishRequest{PackageName: "org.example"}, State: StateFailed, LastError: "boom"},
			"org.example failed: boom",
		},
		{
			PublishTask{Request: PublishRequest{PackageName: "org.example"}, State: StateEditCreated},
			"org.example EditCreated",
		},
	}

	for _, test := range tests {
		result := test.task.Summary()
		if !strings.Contains(result, test.contains) {
			t.Errorf("Summary() = '%s', expected to contain '%s'", result, test.contains)
		}
	}
}
