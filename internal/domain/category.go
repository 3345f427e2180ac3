package domain

import "strings"

// Category values. Categorize only ever returns one of these.
const (
	CategoryAI            = "AI"
	CategoryEnergyTech    = "Energy Tech"
	CategoryRobotics      = "Robotics"
	CategoryQuantum       = "Quantum Computing"
	CategoryEnergyStorage = "Energy Storage"
	CategoryDefault       = "Technology"
)

// categoryGroup pairs a category with its trigger substrings.
type categoryGroup struct {
	category string
	keywords []string
}

// categoryGroups is checked in order; the first group with a substring hit
// wins regardless of how many keywords later groups would match, so keep
// group order stable when editing.
var categoryGroups = []categoryGroup{
	{CategoryAI, []string{"artificial intelligence", "machine learning", "neural", "openai", "chatgpt", "llm", "copilot", " ai "}},
	{CategoryEnergyTech, []string{"hydrogen", "solar", "wind", "renewable", "geothermal", "carbon capture", "green energy", "grid"}},
	{CategoryRobotics, []string{"robot", "automation", "autonomous", "drone", "humanoid"}},
	{CategoryQuantum, []string{"quantum"}},
	{CategoryEnergyStorage, []string{"battery", "batteries", "energy storage", "lithium", "gigafactory"}},
}

// Categorize maps free text (headline, summary, or an upstream category
// field) onto the fixed category set. Matching is case-insensitive
// substring; no hit returns CategoryDefault. Pure function, never fails.
func Categorize(text string) string {
	// Pad with spaces so word-boundary keywords like " ai " can match at
	// the edges of the input.
	haystack := " " + strings.ToLower(text) + " "
	for _, group := range categoryGroups {
		for _, kw := range group.keywords {
			if strings.Contains(haystack, kw) {
				return group.category
			}
		}
	}
	return CategoryDefault
}
