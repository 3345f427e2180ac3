package domain

import "strings"

// Keyword groups for the heuristic relevance score. Hits are additive and
// not capped per group; only the final score is clamped.
var (
	// Organizations and regions the dashboard tracks.
	orgRegionKeywords = []string{
		"microsoft", "azure", "openai", "tesla", "siemens", "vestas",
		"neom", "saudi arabia", "denmark", "europe", "nordic",
	}
	// Energy-domain terms.
	energyKeywords = []string{
		"hydrogen", "wind", "solar", "renewable", "battery", "grid",
		"energy", "offshore", "turbine",
	}
	// General technology terms.
	techKeywords = []string{
		"ai", "quantum", "robot", "cloud", "software", "digital",
		"data center", "chip",
	}
)

const (
	scoreBase      = 0.5
	scoreOrgWeight = 0.20
	scoreEnergyWt  = 0.15
	scoreTechWt    = 0.10
	scoreMin       = 0.3
	scoreMax       = 1.0
)

// RelevanceScore computes the heuristic relevance of an item from its
// headline, summary, and category text. Deterministic, always within
// [0.3, 1.0]. Provider-supplied similarity scores bypass this function
// entirely; see the package documentation.
func RelevanceScore(headline, summary, category string) float64 {
	text := strings.ToLower(headline + " " + summary + " " + category)

	score := scoreBase
	for _, kw := range orgRegionKeywords {
		if strings.Contains(text, kw) {
			score += scoreOrgWeight
		}
	}
	for _, kw := range energyKeywords {
		if strings.Contains(text, kw) {
			score += scoreEnergyWt
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(text, kw) {
			score += scoreTechWt
		}
	}

	if score < scoreMin {
		return scoreMin
	}
	if score > scoreMax {
		return scoreMax
	}
	return score
}

// maxKeywords bounds the keyword list on a canonical item.
const maxKeywords = 5

// ExtractKeywords derives up to five display keywords from free text by
// scanning the scoring vocabularies in order. Used when the upstream payload
// carries no keyword list of its own.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, group := range [][]string{orgRegionKeywords, energyKeywords, techKeywords} {
		for _, kw := range group {
			if len(out) == maxKeywords {
				return out
			}
			if strings.Contains(lower, kw) {
				out = append(out, kw)
			}
		}
	}
	return out
}
