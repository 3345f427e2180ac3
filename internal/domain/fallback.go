package domain

import "time"

// fallbackSeed is the demo dataset served whenever the upstream is
// unavailable or returns an unusable payload. Impact text and scores are
// fixed rather than recomputed so the dashboard renders identically across
// restarts.
var fallbackSeed = []NewsItem{
	{
		ID:             "fallback-azure-dc",
		Headline:       "Microsoft commits $3.2B to Azure AI datacenter expansion",
		Source:         "TechRadar Wire",
		Category:       CategoryAI,
		Summary:        "Microsoft will build two new Azure regions with dedicated AI accelerator capacity, citing surging enterprise demand for hosted machine learning workloads.",
		Location:       Location{Lat: 38.9072, Lng: -77.0369, City: "Washington", Country: "United States"},
		Impact:         "Major cloud providers expanding regional capacity reshapes enterprise infrastructure options and data-residency planning.",
		RelevanceScore: 1.0,
		ScoreSource:    ScoreSourceHeuristic,
		Keywords:       []string{"microsoft", "azure", "ai", "cloud"},
		URL:            "https://example.com/azure-ai-expansion",
	},
	{
		ID:             "fallback-neom-h2",
		Headline:       "NEOM green hydrogen plant reaches first production milestone",
		Source:         "Energy Daily",
		Category:       CategoryEnergyTech,
		Summary:        "The Saudi Arabian megaproject's electrolyzer complex produced its first tonnes of green hydrogen, on track for full capacity in 2027.",
		Location:       Location{Lat: 24.7136, Lng: 46.6753, City: "Riyadh", Country: "Saudi Arabia"},
		Impact:         "Gulf-region megaprojects signal accelerating sovereign investment in next-generation energy and smart-city technology.",
		RelevanceScore: 1.0,
		ScoreSource:    ScoreSourceHeuristic,
		Keywords:       []string{"neom", "saudi arabia", "hydrogen", "energy"},
		URL:            "https://example.com/neom-hydrogen",
	},
	{
		ID:             "fallback-vestas-wind",
		Headline:       "Vestas unveils 18MW offshore wind turbine for North Sea projects",
		Source:         "Nordic Energy Review",
		Category:       CategoryEnergyTech,
		Summary:        "The Danish manufacturer's largest turbine yet targets next-round offshore tenders in Denmark, Germany, and the United Kingdom.",
		Location:       Location{Lat: 55.6761, Lng: 12.5683, City: "Copenhagen", Country: "Denmark"},
		Impact:         "Offshore wind expansion strengthens coastal grid resilience and accelerates national renewable targets.",
		RelevanceScore: 1.0,
		ScoreSource:    ScoreSourceHeuristic,
		Keywords:       []string{"vestas", "denmark", "wind", "offshore"},
		URL:            "https://example.com/vestas-18mw",
	},
	{
		ID:             "fallback-quantum-chip",
		Headline:       "Japanese lab demonstrates 1,000-qubit error-corrected prototype",
		Source:         "Quantum Report",
		Category:       CategoryQuantum,
		Summary:        "Researchers in Tokyo showed sustained logical qubit operation, a step toward fault-tolerant quantum computing at commercial scale.",
		Location:       Location{Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"},
		Impact:         "Quantum computing advances threaten current cryptography timelines while opening new simulation markets.",
		RelevanceScore: 0.7,
		ScoreSource:    ScoreSourceHeuristic,
		Keywords:       []string{"quantum", "chip"},
		URL:            "https://example.com/quantum-prototype",
	},
	{
		ID:             "fallback-tesla-storage",
		Headline:       "Tesla megapack installation doubles Netherlands grid battery capacity",
		Source:         "Grid Weekly",
		Category:       CategoryEnergyStorage,
		Summary:        "A new battery storage site near Amsterdam came online, smoothing peak demand and absorbing surplus offshore wind generation.",
		Location:       Location{Lat: 52.3676, Lng: 4.9041, City: "Amsterdam", Country: "Netherlands"},
		Impact:         "Battery technology breakthroughs compress the cost curve for EVs and grid-scale storage alike.",
		RelevanceScore: 1.0,
		ScoreSource:    ScoreSourceHeuristic,
		Keywords:       []string{"tesla", "battery", "grid", "energy"},
		URL:            "https://example.com/tesla-megapack-nl",
	},
}

// FallbackItems returns a fresh copy of the demo dataset with timestamps
// staggered backwards from now, so the dashboard timeline still looks alive
// in degraded mode. Callers may mutate the returned slice freely.
func FallbackItems() []NewsItem {
	now := clock.Now().UTC()
	items := make([]NewsItem, len(fallbackSeed))
	copy(items, fallbackSeed)
	for i := range items {
		items[i].Timestamp = now.Add(-time.Duration(i+1) * time.Hour)
		items[i].Keywords = append([]string(nil), fallbackSeed[i].Keywords...)
	}
	return items
}
