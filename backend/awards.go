package backend

import (
	"strings"

	"github.com/DCal661/league-of-misfits/model"
)

// classifyAward maps the backend's free-text award titles onto tagged
// kinds. The titles are a league in-joke ("Top Dawg", "Super Weenie",
// "Horse's Ass") and the backend offers no machine-readable tag, so a
// substring match is the best available contract.
func classifyAward(title string) model.AwardKind {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "top dawg"):
		return model.AwardTopScorer
	case strings.Contains(t, "super weenie"):
		return model.AwardLowScorer
	case strings.Contains(t, "horse"):
		return model.AwardBust
	default:
		return model.AwardUnknown
	}
}
