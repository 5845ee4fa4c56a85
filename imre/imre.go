// Package imre computes the composite ranking score for leads.
//
// IMRE blends four signals: Intent (the similarity-weighted intent score),
// Match strength (how close the nearest labeled example was), Recency, and
// Expansion keyword presence. The weights are domain policy, not tunables.
package imre

import (
	"math"
	"strings"

	"github.com/NageshProgrammer/leadequator/core"
)

// Signal weights. Policy constants; they must sum to 1.
const (
	intentWeight    = 0.6
	matchWeight     = 0.2
	recencyWeight   = 0.1
	expansionWeight = 0.1
)

// neutralRecency is a placeholder until leads carry a temporal signal.
// TODO: replace with a published-date decay once the search provider
// surfaces result dates.
const neutralRecency = 50.0

// expansionKeywords trigger the expansion boost when present in the
// lead's title or snippet. Matching is case-insensitive substring.
var expansionKeywords = []string{
	"rfp", "tender", "supplier search",
	"vendor registration", "expansion",
	"new plant", "procurement",
}

// Score computes the composite score for a lead, rounded to 2 decimals.
// Missing optional inputs default to neutral values; Score never fails.
func Score(lead *core.Lead) float64 {
	intentScore := float64(lead.Intent.IntentScore)

	// Convert similarity to 0-100 scale
	matchStrength := lead.Intent.MaxSimilarity * 100

	expansionScore := 0.0
	content := strings.ToLower(lead.Title + " " + lead.Snippet)
	for _, keyword := range expansionKeywords {
		if strings.Contains(content, keyword) {
			expansionScore = 100
			break
		}
	}

	score := intentScore*intentWeight +
		matchStrength*matchWeight +
		neutralRecency*recencyWeight +
		expansionScore*expansionWeight

	return math.Round(score*100) / 100
}
