package publish

import (
	"context"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/ytget/play-publisher/internal/model"
)

// GoogleClient implements Publisher with the Android Publisher API v3
type GoogleClient struct {
	svc *androidpublisher.Service
}

// NewGoogleClient creates a client identifying itself with appName. Callers
// pass the authentication options, see Credentials.ClientOptions.
func NewGoogleClient(ctx context.Context, appName string, opts ...option.ClientOption) (*GoogleClient, error) {
	svc, err := androidpublisher.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create android publisher service")
	}
	svc.UserAgent = appName
	return &GoogleClient{svc: svc}, nil
}

// ClientOptions authenticates requests with the credential over the shared
// transport.
func (c *Credentials) ClientOptions(ctx context.Context) []option.ClientOption {
	base := context.WithValue(ctx, oauth2.HTTPClient, SharedHTTPClient())
	return []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(base, c.TokenSource())),
	}
}

// NewDefaultClient is the ClientFactory used outside tests
func NewDefaultClient(ctx context.Context, creds *Credentials, appName string) (Publisher, error) {
	return NewGoogleClient(ctx, appName, creds.ClientOptions(ctx)...)
}

// InsertEdit opens a new edit session for packageName
func (c *GoogleClient) InsertEdit(ctx context.Context, packageName string) (string, error) {
	edit, err := c.svc.Edits.Insert(packageName, &androidpublisher.AppEdit{}).Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to insert edit", goerr.V("package", packageName))
	}
	return edit.Id, nil
}

// UploadArtifact uploads media as an APK or bundle and returns its version code
func (c *GoogleClient) UploadArtifact(ctx context.Context, packageName, editID string, kind model.ArtifactKind, media io.Reader) (int64, error) {
	contentType := googleapi.ContentType(kind.MIMEType())

	switch kind {
	case model.ArtifactAPK:
		apk, err := c.svc.Edits.Apks.Upload(packageName, editID).Media(media, contentType).Context(ctx).Do()
		if err != nil {
			return 0, goerr.Wrap(err, "failed to upload apk", goerr.V("package", packageName), goerr.V("edit_id", editID))
		}
		return apk.VersionCode, nil

	case model.ArtifactBundle:
		bundle, err := c.svc.Edits.Bundles.Upload(packageName, editID).Media(media, contentType).Context(ctx).Do()
		if err != nil {
			return 0, goerr.Wrap(err, "failed to upload bundle", goerr.V("package", packageName), goerr.V("edit_id", editID))
		}
		return bundle.VersionCode, nil

	default:
		return 0, goerr.New("unsupported artifact kind", goerr.V("kind", kind))
	}
}

// UpdateTrack replaces the release list of track with release
func (c *GoogleClient) UpdateTrack(ctx context.Context, packageName, editID string, track model.Track, release *model.Release) error {
	body := &androidpublisher.Track{
		Track:    string(track),
		Releases: []*androidpublisher.TrackRelease{toTrackRelease(release)},
	}
	if _, err := c.svc.Edits.Tracks.Update(packageName, editID, string(track), body).Context(ctx).Do(); err != nil {
		return goerr.Wrap(err, "failed to update track",
			goerr.V("package", packageName), goerr.V("edit_id", editID), goerr.V("track", track))
	}
	return nil
}

// CommitEdit commits the edit session and returns the committed edit id
func (c *GoogleClient) CommitEdit(ctx context.Context, packageName, editID string) (string, error) {
	edit, err := c.svc.Edits.Commit(packageName, editID).Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to commit edit", goerr.V("package", packageName), goerr.V("edit_id", editID))
	}
	return edit.Id, nil
}

func toTrackRelease(release *model.Release) *androidpublisher.TrackRelease {
	notes := make([]*androidpublisher.LocalizedText, 0, len(release.Notes))
	for _, n := range release.Notes {
		notes = append(notes, &androidpublisher.LocalizedText{Language: n.Language, Text: n.Text})
	}
	return &androidpublisher.TrackRelease{
		Name:         release.Name,
		Status:       string(release.Status),
		VersionCodes: googleapi.Int64s(release.VersionCodes),
		ReleaseNotes: notes,
	}
}
