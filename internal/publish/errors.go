package publish

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrMissingKeyFile means no service account key file was chosen
	ErrMissingKeyFile = goerr.New("service account key file is not selected")

	// ErrMissingAppInfo means app name or package name is blank
	ErrMissingAppInfo = goerr.New("app name and package name are required")

	// ErrCredentialLoad means the key file could not be read or parsed
	ErrCredentialLoad = goerr.New("failed to load service account credentials")

	// ErrCancelled means the user dismissed a chooser
	ErrCancelled = goerr.New("cancelled by user")

	// ErrInvalidArtifact means the chosen artifact file cannot be uploaded
	ErrInvalidArtifact = goerr.New("invalid artifact file")

	// ErrRemoteCall means one of the edit API calls failed
	ErrRemoteCall = goerr.New("remote publishing call failed")

	// ErrBusy means a publish is already running
	ErrBusy = goerr.New("a publish is already in progress")
)

// Remote steps, named after the API methods
const (
	StepInsertEdit   = "edits.insert"
	StepUpload       = "edits.upload"
	StepReleaseNotes = "release notes"
	StepUpdateTrack  = "edits.tracks.update"
	StepCommit       = "edits.commit"
)

// RemoteError records which remote step failed. It matches ErrRemoteCall.
type RemoteError struct {
	Step   string
	EditID string
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is reports ErrRemoteCall as a match
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteCall
}

// ErrorKind groups workflow errors by how they are reported
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindValidation
	KindCredential
	KindCancelled
	KindArtifact
	KindRemote
	KindBusy
	KindUnknown
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindCredential:
		return "credential"
	case KindCancelled:
		return "cancelled"
	case KindArtifact:
		return "artifact"
	case KindRemote:
		return "remote"
	case KindBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Classify maps an error returned by Publish to its ErrorKind
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingKeyFile), errors.Is(err, ErrMissingAppInfo):
		return KindValidation
	case errors.Is(err, ErrCredentialLoad):
		return KindCredential
	case errors.Is(err, ErrCancelled):
		return KindCancelled
	case errors.Is(err, ErrInvalidArtifact):
		return KindArtifact
	case errors.Is(err, ErrRemoteCall):
		return KindRemote
	case errors.Is(err, ErrBusy):
		return KindBusy
	default:
		return KindUnknown
	}
}
