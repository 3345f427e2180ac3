package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// wrapperKeys are tried in order when the payload is an object rather than
// a bare array.
var wrapperKeys = []string{"data", "news", "articles", "items"}

// Field-name candidates per canonical field, tried in order. The upstream
// shape is untrusted and variable, so this stays an ordered list rather
// than a schema.
var (
	headlineFields = []string{"headline", "title", "name"}
	summaryFields  = []string{"summary", "description", "content", "text"}
	sourceFields   = []string{"source", "publisher", "site"}
	categoryFields = []string{"category", "type", "tag"}
	urlFields      = []string{"url", "link"}
	timeFields     = []string{"timestamp", "publishedAt", "published_at", "date", "pubDate"}
	idFields       = []string{"id", "_id"}
	keywordFields  = []string{"keywords", "tags"}
	scoreFields    = []string{"score", "similarity", "_score"}
	locationFields = []string{"location", "country"}
)

// NormalizePayload converts a decoded upstream payload of any recognized
// shape into canonical NewsItems. Elements that cannot be normalized
// (non-object array entries) are dropped and counted in the second return
// value; output order follows input order. The function itself never fails —
// unrecognized payload shapes yield an empty slice.
func NormalizePayload(payload any) ([]NewsItem, int) {
	elements := extractElements(payload)
	items := make([]NewsItem, 0, len(elements))
	dropped := 0
	for _, el := range elements {
		item, err := normalizeItem(el)
		if err != nil {
			dropped++
			continue
		}
		items = append(items, item)
	}
	return items, dropped
}

// extractElements unwraps the payload into a flat element slice.
func extractElements(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		for _, key := range wrapperKeys {
			if arr, ok := v[key].([]any); ok {
				return arr
			}
		}
		// A bare object is treated as a single item.
		return []any{v}
	default:
		return nil
	}
}

// normalizeItem maps one upstream element onto a canonical NewsItem.
func normalizeItem(el any) (NewsItem, error) {
	obj, ok := el.(map[string]any)
	if !ok {
		return NewsItem{}, errors.New("element is not an object")
	}

	headline := firstString(obj, headlineFields, placeholderHeadline)
	summary := firstString(obj, summaryFields, placeholderSummary)
	source := firstString(obj, sourceFields, placeholderSource)
	url := firstString(obj, urlFields, "")

	categorySeed := firstString(obj, categoryFields, headline)
	category := Categorize(categorySeed)

	timestamp := parseTimestamp(firstRaw(obj, timeFields))

	item := NewsItem{
		Headline:  headline,
		Source:    source,
		Category:  category,
		Summary:   summary,
		Location:  ResolveLocation(firstRaw(obj, locationFields)),
		Timestamp: timestamp,
		Keywords:  parseKeywords(obj, headline+" "+summary),
		URL:       url,
	}
	item.ID = resolveID(obj, item)

	if score, ok := providerScore(obj); ok {
		item.RelevanceScore = score
		item.ScoreSource = ScoreSourceProvider
	} else {
		item.RelevanceScore = RelevanceScore(headline, summary, categorySeed)
		item.ScoreSource = ScoreSourceHeuristic
	}

	if impact, ok := obj["impact"].(string); ok && impact != "" {
		item.Impact = impact
	} else {
		item.Impact = Narrate(item)
	}

	return item, nil
}

// firstString returns the first non-empty string among the candidate fields,
// or fallback when none is present.
func firstString(obj map[string]any, fields []string, fallback string) string {
	for _, f := range fields {
		if s, ok := obj[f].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

// firstRaw returns the first present candidate field without type coercion.
func firstRaw(obj map[string]any, fields []string) any {
	for _, f := range fields {
		if v, ok := obj[f]; ok && v != nil {
			return v
		}
	}
	return nil
}

// resolveID prefers an upstream-supplied id, then a deterministic hash of
// the item's stable fields, then a random UUID for items with nothing to hash.
func resolveID(obj map[string]any, item NewsItem) string {
	for _, f := range idFields {
		switch v := obj[f].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if item.Headline == placeholderHeadline && item.Source == placeholderSource {
		return uuid.NewString()
	}
	input := fmt.Sprintf("%s|%s|%s", item.Headline, item.Source, item.Timestamp.UTC().Format(time.RFC3339))
	hash := sha256.Sum256([]byte(input))
	return "news-" + hex.EncodeToString(hash[:8])
}

// providerScore extracts an upstream similarity score when present. The
// value is used as-is, without clamping.
func providerScore(obj map[string]any) (float64, bool) {
	for _, f := range scoreFields {
		if v, ok := obj[f]; ok {
			if score, ok := toFloat(v); ok {
				return score, true
			}
		}
	}
	return 0, false
}

// parseKeywords takes the upstream keyword list when present, capped at
// five entries, and otherwise derives keywords from the item text.
func parseKeywords(obj map[string]any, text string) []string {
	for _, f := range keywordFields {
		arr, ok := obj[f].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, maxKeywords)
		for _, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
			if len(out) == maxKeywords {
				break
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return ExtractKeywords(text)
}

// timestampLayouts are tried in order after RFC 3339.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
}

// parseTimestamp interprets the upstream time field, defaulting to the
// normalization time when the field is missing or unparseable. Numeric
// values are treated as Unix seconds.
func parseTimestamp(raw any) time.Time {
	switch v := raw.(type) {
	case string:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts
			}
		}
	case float64:
		return time.Unix(int64(v), 0).UTC()
	}
	return clock.Now().UTC()
}

// parseFloat parses a string as float64.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
