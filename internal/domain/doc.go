// Package domain models TechRadar news items and the normalization rules
// that turn untrusted upstream payloads into canonical records.
//
// # Upstream payload conventions
//
// The upstream webhook/vector-search endpoint has no stable schema. Payloads
// observed in the wild take any of these shapes:
//
//	[ {...}, {...} ]                      bare array of items
//	{ "data":     [ ... ] }               wrapper keys, tried in order:
//	{ "news":     [ ... ] }               data, news, articles, items
//	{ "articles": [ ... ] }
//	{ "items":    [ ... ] }
//	{ ... }                               bare object, treated as one item
//
// Anything else normalizes to an empty slice. Individual fields are resolved
// first-candidate-wins across known aliases (e.g. headline/title/name); see
// [NormalizePayload]. Missing text fields get placeholder values so a fully
// populated NewsItem always reaches the rendering layer.
//
// # Relevance score provenance
//
// Two score paths exist and are deliberately not unified:
//
//	heuristic: computed by [RelevanceScore] from weighted keyword hits,
//	           clamped to [0.3, 1.0]. ScoreSource = "heuristic".
//	provider:  a similarity score supplied by the vector-search upstream
//	           (score/similarity/_score fields), passed through unclamped.
//	           ScoreSource = "provider".
//
// # Categories
//
// Free text maps onto a fixed category set via ordered keyword groups.
// The first group with a substring hit wins: AI, Energy Tech, Robotics,
// Quantum Computing, Energy Storage. No hit falls back to "Technology".
//
// # Locations
//
// A fixed ten-country table resolves free-text country names to map
// coordinates. Unresolvable input falls back to the United States entry;
// resolution never fails. See [ResolveLocation].
//
// # ID generation
//
// Upstream id/_id wins when present. Otherwise IDs are deterministic
// SHA-256 short hashes of headline|source|timestamp, so re-normalizing the
// same payload produces the same IDs. Items with no hashable fields get a
// random UUID as a last resort.
package domain
