package ui

import (
	"errors"
	"fmt"

	"github.com/ytget/play-publisher/internal/model"
	"github.com/ytget/play-publisher/internal/publish"
)

// resultMessage is what the user is told after a publish attempt
type resultMessage struct {
	Title   string
	Text    string
	IsError bool
}

// describeResult turns the outcome of Publish into a message. It returns
// false when nothing should be shown, which is the case for cancellations.
func describeResult(l *Localization, task *model.PublishTask, err error) (resultMessage, bool) {
	if err == nil {
		commitID := ""
		if task != nil {
			commitID = task.CommitID
		}
		return resultMessage{
			Title: IconSuccess + " " + l.GetText(KeySuccess),
			Text:  fmt.Sprintf(l.GetText(KeyEditCommitted), commitID),
		}, true
	}

	errorMessage := func(titleKey, textKey string) (resultMessage, bool) {
		return resultMessage{Title: l.GetText(titleKey), Text: l.GetText(textKey), IsError: true}, true
	}

	switch publish.Classify(err) {
	case publish.KindCancelled:
		return resultMessage{}, false
	case publish.KindValidation:
		if errors.Is(err, publish.ErrMissingKeyFile) {
			return errorMessage(KeyMissingKeyTitle, KeyMissingKeyMessage)
		}
		return errorMessage(KeyMissingInfoTitle, KeyMissingInfoMessage)
	case publish.KindCredential:
		return errorMessage(KeyError, KeyServiceError)
	case publish.KindArtifact:
		return errorMessage(KeyError, KeyInvalidArtifact)
	case publish.KindRemote:
		return errorMessage(KeyError, KeyUploadRolledBack)
	case publish.KindBusy:
		return errorMessage(KeyError, KeyPublishBusy)
	default:
		return resultMessage{Title: l.GetText(KeyError), Text: err.Error(), IsError: true}, true
	}
}

// stateTextKey returns the localization key describing an in-flight state
func stateTextKey(state model.PublishState) string {
	switch state {
	case model.StateValidating:
		return KeyStateValidating
	case model.StateCredentialLoading:
		return KeyStateCredentials
	case model.StateFileSelection:
		return KeyStateFileSelection
	case model.StateEditCreated:
		return KeyStateEditCreated
	case model.StateArtifactUploaded:
		return KeyStateUploaded
	case model.StateTrackUpdated:
		return KeyStateTrackUpdated
	default:
		return ""
	}
}
