package publish

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ytget/play-publisher/internal/model"
	"github.com/ytget/play-publisher/internal/platform"
)

// Service runs the publish workflow, one publish at a time
type Service struct {
	prompter        Prompter
	loadCredentials CredentialLoader
	newClient       ClientFactory
	logger          *slog.Logger
	now             func() time.Time

	mu       sync.Mutex
	running  bool
	onUpdate func(*model.PublishTask) // callback for UI updates
}

// Option configures a Service
type Option func(*Service)

// WithCredentialLoader replaces LoadCredentials
func WithCredentialLoader(fn CredentialLoader) Option {
	return func(s *Service) { s.loadCredentials = fn }
}

// WithClientFactory replaces NewDefaultClient
func WithClientFactory(fn ClientFactory) Option {
	return func(s *Service) { s.newClient = fn }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates a publish service asking prompter for user input
func NewService(prompter Prompter, opts ...Option) *Service {
	s := &Service{
		prompter:        prompter,
		loadCredentials: LoadCredentials,
		newClient:       NewDefaultClient,
		logger:          slog.Default(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback invoked on every state transition
func (s *Service) SetUpdateCallback(callback func(*model.PublishTask)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// IsRunning reports whether a publish is in flight
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Publish validates req, loads the credential, asks for the artifact and runs
// the four edit calls. The returned task is never nil; its State is Committed,
// Failed (remote error) or Idle (aborted before any remote call).
func (s *Service) Publish(ctx context.Context, req model.PublishRequest) (*model.PublishTask, error) {
	task := &model.PublishTask{
		ID:        generateTaskID(),
		Request:   req.Normalized(),
		State:     model.StateIdle,
		StartedAt: s.now(),
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		task.LastError = ErrBusy.Error()
		return task, goerr.Wrap(ErrBusy, "publish rejected", goerr.V("package", task.Request.PackageName))
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	logger := s.logger.With(slog.String("task_id", task.ID), slog.String("package", task.Request.PackageName))

	err := s.run(ctx, task, logger)
	task.FinishedAt = s.now()
	if err != nil {
		task.LastError = err.Error()
		if task.State != model.StateFailed {
			s.setState(task, model.StateIdle)
		}
		logger.Warn("publish aborted", slog.String("kind", Classify(err).String()), slog.Any("error", err))
		return task, err
	}

	logger.Info("publish committed",
		slog.String("commit_id", task.CommitID),
		slog.Int64("version_code", task.VersionCode),
		slog.Duration("duration", task.Duration()))
	return task, nil
}

func (s *Service) run(ctx context.Context, task *model.PublishTask, logger *slog.Logger) error {
	req := &task.Request

	s.setState(task, model.StateValidating)
	if err := validate(*req); err != nil {
		return err
	}

	s.setState(task, model.StateCredentialLoading)
	creds, err := s.loadCredentials(ctx, req.KeyFilePath)
	if err != nil {
		return goerr.Wrap(ErrCredentialLoad, "cannot load key", goerr.V("path", req.KeyFilePath), goerr.V("cause", err.Error()))
	}
	logger.Debug("credentials loaded", slog.Any("credentials", creds))

	client, err := s.newClient(ctx, creds, req.AppName)
	if err != nil {
		return goerr.Wrap(ErrCredentialLoad, "cannot create publisher client", goerr.V("cause", err.Error()))
	}

	s.setState(task, model.StateFileSelection)
	path, err := s.prompter.ChooseArtifact(ctx, req.Kind)
	if err != nil {
		return err
	}
	if path == "" {
		return goerr.Wrap(ErrCancelled, "no artifact chosen")
	}
	size, err := platform.CheckArtifactFile(path, req.Kind)
	if err != nil {
		return goerr.Wrap(ErrInvalidArtifact, err.Error(), goerr.V("path", path))
	}
	req.ArtifactPath = path

	return s.upload(ctx, task, client, size, logger)
}

// upload runs the remote calls. Any failure marks the task Failed and no
// further call is made.
func (s *Service) upload(ctx context.Context, task *model.PublishTask, client Publisher, size int64, logger *slog.Logger) error {
	req := &task.Request

	editID, err := client.InsertEdit(ctx, req.PackageName)
	if err != nil {
		return s.fail(task, StepInsertEdit, err)
	}
	task.EditID = editID
	s.setState(task, model.StateEditCreated)
	logger.Info("edit created", slog.String("edit_id", editID))

	f, err := os.Open(req.ArtifactPath)
	if err != nil {
		return s.fail(task, StepUpload, err)
	}
	defer f.Close()

	logger.Info("uploading artifact",
		slog.String("kind", string(req.Kind)),
		slog.String("path", req.ArtifactPath),
		slog.String("size", platform.HumanSize(size)))
	versionCode, err := client.UploadArtifact(ctx, req.PackageName, editID, req.Kind, f)
	if err != nil {
		return s.fail(task, StepUpload, err)
	}
	task.VersionCode = versionCode
	s.setState(task, model.StateArtifactUploaded)
	logger.Info("artifact uploaded", slog.Int64("version_code", versionCode))

	notes, err := s.prompter.ReleaseNotes(ctx, versionCode)
	if err != nil {
		return s.fail(task, StepReleaseNotes, err)
	}
	if notes.Language == "" {
		notes.Language = model.DefaultLanguageCode
	}
	req.ReleaseNotes = notes

	release := model.NewRelease(versionCode, req.Status, notes)
	if err := client.UpdateTrack(ctx, req.PackageName, editID, req.Track, release); err != nil {
		return s.fail(task, StepUpdateTrack, err)
	}
	s.setState(task, model.StateTrackUpdated)
	logger.Info("track updated", slog.String("track", string(req.Track)), slog.String("release", release.Name))

	commitID, err := client.CommitEdit(ctx, req.PackageName, editID)
	if err != nil {
		return s.fail(task, StepCommit, err)
	}
	task.CommitID = commitID
	s.setState(task, model.StateCommitted)
	return nil
}

func (s *Service) fail(task *model.PublishTask, step string, cause error) error {
	task.FailedStep = step
	s.setState(task, model.StateFailed)
	return goerr.Wrap(&RemoteError{Step: step, EditID: task.EditID, Err: cause}, "upload failed, edit abandoned",
		goerr.V("package", task.Request.PackageName), goerr.V("edit_id", task.EditID), goerr.V("step", step))
}

func (s *Service) setState(task *model.PublishTask, state model.PublishState) {
	task.State = state

	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(task)
	}
}

// validate checks the form input. No remote call happens before it passes.
func validate(req model.PublishRequest) error {
	if req.KeyFilePath == "" {
		return goerr.Wrap(ErrMissingKeyFile, "validation failed")
	}
	if req.AppName == "" || req.PackageName == "" {
		return goerr.Wrap(ErrMissingAppInfo, "validation failed",
			goerr.V("app_name", req.AppName), goerr.V("package", req.PackageName))
	}
	return nil
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "publish-" + uuid.NewString()
	}
	return "publish-" + id.String()
}
