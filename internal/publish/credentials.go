package publish

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/androidpublisher/v3"
)

// AndroidPublisherScope is the only scope requested for the key
const AndroidPublisherScope = androidpublisher.AndroidpublisherScope

// Credentials is a parsed service account key
type Credentials struct {
	KeyFilePath  string
	ClientEmail  string
	ProjectID    string
	PrivateKeyID string `masq:"secret"`

	tokenSource oauth2.TokenSource
}

// serviceAccountKey holds the descriptive fields of a key file
type serviceAccountKey struct {
	Type         string `json:"type"`
	ClientEmail  string `json:"client_email"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
}

// LoadCredentials reads a service account key file and scopes it to the
// Android Publisher API. Tokens are fetched lazily over the shared client.
func LoadCredentials(ctx context.Context, keyFilePath string) (*Credentials, error) {
	data, err := os.ReadFile(keyFilePath)
	if err != nil {
		return nil, goerr.Wrap(ErrCredentialLoad, "failed to read key file",
			goerr.V("path", keyFilePath), goerr.V("cause", err.Error()))
	}
	return ParseCredentials(ctx, keyFilePath, data)
}

// ParseCredentials parses key file content. keyFilePath is informational.
func ParseCredentials(ctx context.Context, keyFilePath string, data []byte) (*Credentials, error) {
	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, goerr.Wrap(ErrCredentialLoad, "key file is not valid JSON",
			goerr.V("path", keyFilePath), goerr.V("cause", err.Error()))
	}
	if key.Type != string(google.ServiceAccount) {
		return nil, goerr.Wrap(ErrCredentialLoad, "key file is not a service account key",
			goerr.V("path", keyFilePath), goerr.V("type", key.Type))
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, SharedHTTPClient())
	creds, err := google.CredentialsFromJSONWithType(ctx, data, google.ServiceAccount, AndroidPublisherScope)
	if err != nil {
		return nil, goerr.Wrap(ErrCredentialLoad, "failed to parse service account key",
			goerr.V("path", keyFilePath), goerr.V("cause", err.Error()))
	}

	return &Credentials{
		KeyFilePath:  keyFilePath,
		ClientEmail:  key.ClientEmail,
		ProjectID:    key.ProjectID,
		PrivateKeyID: key.PrivateKeyID,
		tokenSource:  creds.TokenSource,
	}, nil
}

// TokenSource returns the scoped token source
func (c *Credentials) TokenSource() oauth2.TokenSource {
	return c.tokenSource
}

// LogValue keeps log lines to the identity of the key
func (c *Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_email", c.ClientEmail),
		slog.String("project_id", c.ProjectID),
	)
}
