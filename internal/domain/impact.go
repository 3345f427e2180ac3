package domain

import "strings"

// impactRule is a special-case impact sentence triggered by headline or
// summary substrings. Rules are evaluated in order, first match wins.
type impactRule struct {
	keywords []string
	country  string // optional, matches the item's resolved country
	category string // optional, matches the item's category
	impact   string
}

var impactRules = []impactRule{
	{
		keywords: []string{"microsoft", "azure"},
		impact:   "Major cloud providers expanding regional capacity reshapes enterprise infrastructure options and data-residency planning.",
	},
	{
		keywords: []string{"saudi", "neom"},
		country:  "Saudi Arabia",
		impact:   "Gulf-region megaprojects signal accelerating sovereign investment in next-generation energy and smart-city technology.",
	},
	{
		keywords: []string{"hydrogen"},
		impact:   "Green hydrogen milestones move heavy industry and shipping closer to viable decarbonization pathways.",
	},
	{
		keywords: []string{"quantum"},
		category: CategoryQuantum,
		impact:   "Quantum computing advances threaten current cryptography timelines while opening new simulation markets.",
	},
	{
		keywords: []string{"tesla", "battery"},
		impact:   "Battery technology breakthroughs compress the cost curve for EVs and grid-scale storage alike.",
	},
	{
		keywords: []string{"offshore", "wind"},
		impact:   "Offshore wind expansion strengthens coastal grid resilience and accelerates national renewable targets.",
	},
}

// categoryImpacts is the template table used when no special-case rule fires.
var categoryImpacts = map[string]string{
	CategoryAI:            "AI adoption at this pace pressures competitors to rethink product roadmaps and talent strategy.",
	CategoryEnergyTech:    "Energy technology shifts of this kind ripple through utility planning and industrial electrification.",
	CategoryRobotics:      "Robotics progress here changes the labor and safety calculus for manufacturing and logistics.",
	CategoryQuantum:       "Quantum milestones redefine the long-term outlook for secure communications and materials science.",
	CategoryEnergyStorage: "Storage capacity gains unlock higher renewable penetration and new grid business models.",
}

// genericImpact covers unrecognized categories. Narrate never returns empty text.
const genericImpact = "Technology developments in this area influence regional competitiveness and investment flows."

// Narrate produces the human-readable impact sentence for an item.
// Special-case rules are checked first in fixed priority order, then the
// category template table, then a generic sentence. Total function.
func Narrate(item NewsItem) string {
	text := strings.ToLower(item.Headline + " " + item.Summary)
	for _, rule := range impactRules {
		if rule.country != "" && item.Location.Country == rule.country {
			return rule.impact
		}
		if rule.category != "" && item.Category == rule.category {
			return rule.impact
		}
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.impact
			}
		}
	}
	if impact, ok := categoryImpacts[item.Category]; ok {
		return impact
	}
	return genericImpact
}
