package model

// PublishState represents the step a publish task has reached
type PublishState string

const (
	// StateIdle means nothing is running or the last attempt was aborted locally
	StateIdle PublishState = "Idle"

	// StateValidating means the form input is being checked
	StateValidating PublishState = "Validating"

	// StateCredentialLoading means the service account key is being loaded
	StateCredentialLoading PublishState = "CredentialLoading"

	// StateFileSelection means the user is choosing the artifact
	StateFileSelection PublishState = "FileSelection"

	// StateEditCreated means the remote edit session is open
	StateEditCreated PublishState = "EditCreated"

	// StateArtifactUploaded means the artifact got a version code
	StateArtifactUploaded PublishState = "ArtifactUploaded"

	// StateTrackUpdated means the track release list was replaced
	StateTrackUpdated PublishState = "TrackUpdated"

	// StateCommitted means the edit was committed
	StateCommitted PublishState = "Committed"

	// StateFailed means a remote call failed and the edit was abandoned
	StateFailed PublishState = "Failed"
)

// String returns the string representation of PublishState
func (s PublishState) String() string {
	return string(s)
}

// IsActive returns true while a publish is between submission and its outcome
func (s PublishState) IsActive() bool {
	switch s {
	case StateValidating, StateCredentialLoading, StateFileSelection,
		StateEditCreated, StateArtifactUploaded, StateTrackUpdated:
		return true
	}
	return false
}

// IsRemote returns true if a remote edit session exists in this state
func (s PublishState) IsRemote() bool {
	return s == StateEditCreated || s == StateArtifactUploaded || s == StateTrackUpdated
}

// IsFinished returns true if the task reached an outcome (committed or failed)
func (s PublishState) IsFinished() bool {
	return s == StateCommitted || s == StateFailed
}
