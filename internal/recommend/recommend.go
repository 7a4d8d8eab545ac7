// Package recommend scores catalog processes against the visitor's
// onboarding profile to produce the "recommended for you" subset.
package recommend

import (
	"github.com/immoralia/process-catalog/internal/catalog"
	"github.com/immoralia/process-catalog/internal/onboarding"
)

// Scoring weights and qualification cutoff. Product-tuned values; treat as
// configuration, not derived constants.
const (
	sectorWeight          = 5
	toolWeight            = 3
	painWeight            = 4
	clientChannelWeight   = 2
	internalChannelWeight = 2

	qualifyingScore = 5
	maxRecommended  = 4
)

// Score computes the match score between a process and a profile. A nil
// profile scores zero against everything.
func Score(process *catalog.Process, profile *onboarding.Profile) int {
	if profile == nil {
		return 0
	}

	score := 0
	if contains(process.Sectores, profile.Sector) {
		score += sectorWeight
	}
	if intersects(process.Herramientas, profile.Tools) {
		score += toolWeight
	}
	if intersects(process.Dolores, profile.Pains) {
		score += painWeight
	}
	if intersects(process.Canales, profile.Channels.Clients) {
		score += clientChannelWeight
	}
	if intersects(process.Canales, profile.Channels.Internal) {
		score += internalChannelWeight
	}
	return score
}

// ForProfile returns the processes whose score reaches the qualification
// cutoff, at most four, in catalog-definition order. Ties and ordering are
// resolved purely by original catalog order; the function never sorts by
// score. Without a profile the result is empty.
func ForProfile(profile *onboarding.Profile) []catalog.Process {
	if profile == nil {
		return nil
	}

	var out []catalog.Process
	for _, process := range catalog.All() {
		if Score(&process, profile) >= qualifyingScore {
			out = append(out, process)
			if len(out) == maxRecommended {
				break
			}
		}
	}
	return out
}

func contains(list []string, value string) bool {
	if value == "" {
		return false
	}
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, item := range a {
		set[item] = true
	}
	for _, item := range b {
		if set[item] {
			return true
		}
	}
	return false
}
