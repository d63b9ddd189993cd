// Package publish implements the publish pipeline against the Google Play
// Android Publisher API: local validation, service account credential
// loading, and the create edit, upload artifact, update track, commit edit
// sequence. It reports state transitions to the UI and never retries a
// failed remote call; an uncommitted edit is left for the remote service to
// discard.
package publish
