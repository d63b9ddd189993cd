package publish

import (
	"context"
	"io"

	"github.com/ytget/play-publisher/internal/model"
)

// Publisher is the remote edit API used by the workflow
type Publisher interface {
	InsertEdit(ctx context.Context, packageName string) (editID string, err error)
	UploadArtifact(ctx context.Context, packageName, editID string, kind model.ArtifactKind, media io.Reader) (versionCode int64, err error)
	UpdateTrack(ctx context.Context, packageName, editID string, track model.Track, release *model.Release) error
	CommitEdit(ctx context.Context, packageName, editID string) (commitID string, err error)
}

// Prompter collects the input requested while the workflow runs.
type Prompter interface {
	// ChooseArtifact returns the artifact path, or ErrCancelled
	ChooseArtifact(ctx context.Context, kind model.ArtifactKind) (string, error)

	// ReleaseNotes is called once the upload produced versionCode
	ReleaseNotes(ctx context.Context, versionCode int64) (model.ReleaseNotes, error)
}

// CredentialLoader loads the service account credential from a key file
type CredentialLoader func(ctx context.Context, keyFilePath string) (*Credentials, error)

// ClientFactory builds an authenticated Publisher for the app
type ClientFactory func(ctx context.Context, creds *Credentials, appName string) (Publisher, error)

// Publishing defines the interface for the publish service.
type Publishing interface {
	SetUpdateCallback(func(*model.PublishTask))
	Publish(ctx context.Context, req model.PublishRequest) (*model.PublishTask, error)
	IsRunning() bool
}
