package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ytget/play-publisher/internal/model"
)

// maxSuggestDistance bounds how far a typo may be from a known value
const maxSuggestDistance = 3

// suggest returns the choice closest to input, or "" when none is close
func suggest(input string, choices []string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, choice := range choices {
		dist := levenshtein.ComputeDistance(input, strings.ToLower(choice))
		if dist < bestDist {
			best, bestDist = choice, dist
		}
	}
	return best
}

func trackNames() []string {
	names := []string{string(model.TrackInternal)}
	for _, t := range model.Tracks() {
		names = append(names, string(t))
	}
	return names
}

func statusNames() []string {
	names := make([]string, 0, len(model.ReleaseStatuses()))
	for _, s := range model.ReleaseStatuses() {
		names = append(names, string(s))
	}
	return names
}

func kindNames() []string {
	return []string{string(model.ArtifactAPK), string(model.ArtifactBundle)}
}
