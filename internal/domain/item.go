package domain

import "time"

// Score provenance markers. See the package documentation for why the two
// paths are kept separate.
const (
	ScoreSourceHeuristic = "heuristic"
	ScoreSourceProvider  = "provider"
)

// Placeholder values substituted for missing upstream text fields.
const (
	placeholderHeadline = "Untitled story"
	placeholderSource   = "Unknown Source"
	placeholderSummary  = "No summary available."
)

// Location is a map coordinate with display names.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// NewsItem is the canonical post-normalization record. Every field is
// populated; the rendering layer never sees a partial item.
type NewsItem struct {
	ID             string    `json:"id"`
	Headline       string    `json:"headline"`
	Source         string    `json:"source"`
	Category       string    `json:"category"`
	Summary        string    `json:"summary"`
	Location       Location  `json:"location"`
	Timestamp      time.Time `json:"timestamp"`
	Impact         string    `json:"impact"`
	RelevanceScore float64   `json:"relevanceScore"`
	ScoreSource    string    `json:"scoreSource"`
	Keywords       []string  `json:"keywords"`
	URL            string    `json:"url"`
}
