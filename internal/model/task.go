package model

import (
	"fmt"
	"time"
)

// PublishTask records one publish attempt
type PublishTask struct {
	ID          string
	Request     PublishRequest
	State       PublishState
	EditID      string    // remote edit session id, empty before EditCreated
	VersionCode int64     // assigned by the remote service on upload
	CommitID    string    // id returned by the commit call
	FailedStep  string    // remote step that failed, if any
	LastError   string    // last error message if any
	StartedAt   time.Time // when the form was submitted
	FinishedAt  time.Time // when the task reached an outcome or was aborted
}

// Duration returns how long the task ran, or zero if it has not finished
func (t *PublishTask) Duration() time.Duration {
	if t.FinishedAt.IsZero() || t.StartedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}

// Summary returns a one line description for logs and status panels
func (t *PublishTask) Summary() string {
	switch t.State {
	case StateCommitted:
		return fmt.Sprintf("%s %s committed to %s (edit %s)", t.Request.PackageName, ReleaseName(t.VersionCode), t.Request.Track, t.CommitID)
	case StateFailed:
		if t.FailedStep != "" {
			return fmt.Sprintf("%s failed at %s: %s", t.Request.PackageName, t.FailedStep, t.LastError)
		}
		return fmt.Sprintf("%s failed: %s", t.Request.PackageName, t.LastError)
	default:
		return fmt.Sprintf("%s %s", t.Request.PackageName, t.State)
	}
}
