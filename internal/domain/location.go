package domain

import "strings"

// countryTable maps lower-cased country names to their dashboard coordinates.
// The map renders at country granularity, so one representative city per
// country is enough.
var countryTable = map[string]Location{
	"united states":  {Lat: 38.9072, Lng: -77.0369, City: "Washington", Country: "United States"},
	"denmark":        {Lat: 55.6761, Lng: 12.5683, City: "Copenhagen", Country: "Denmark"},
	"germany":        {Lat: 52.5200, Lng: 13.4050, City: "Berlin", Country: "Germany"},
	"united kingdom": {Lat: 51.5074, Lng: -0.1278, City: "London", Country: "United Kingdom"},
	"france":         {Lat: 48.8566, Lng: 2.3522, City: "Paris", Country: "France"},
	"japan":          {Lat: 35.6762, Lng: 139.6503, City: "Tokyo", Country: "Japan"},
	"china":          {Lat: 39.9042, Lng: 116.4074, City: "Beijing", Country: "China"},
	"saudi arabia":   {Lat: 24.7136, Lng: 46.6753, City: "Riyadh", Country: "Saudi Arabia"},
	"norway":         {Lat: 59.9139, Lng: 10.7522, City: "Oslo", Country: "Norway"},
	"netherlands":    {Lat: 52.3676, Lng: 4.9041, City: "Amsterdam", Country: "Netherlands"},
}

// defaultCountry is the universal fallback for unresolvable input.
const defaultCountry = "united states"

// ResolveLocation maps raw upstream location data to a canonical Location.
// Structured input (a JSON object with numeric lat/lng) is passed through
// with city/country placeholders filled in; string input is looked up in the
// country table. Resolution never fails: anything unrecognized resolves to
// the United States entry.
func ResolveLocation(raw any) Location {
	switch v := raw.(type) {
	case map[string]any:
		lat, latOK := toFloat(v["lat"])
		lng, lngOK := toFloat(v["lng"])
		if latOK && lngOK {
			loc := Location{Lat: lat, Lng: lng, City: "Unknown City", Country: "Unknown Country"}
			if city, ok := v["city"].(string); ok && city != "" {
				loc.City = city
			}
			if country, ok := v["country"].(string); ok && country != "" {
				loc.Country = country
			}
			return loc
		}
		// Objects without usable coordinates fall back to a name lookup.
		if country, ok := v["country"].(string); ok {
			return lookupCountry(country)
		}
		return countryTable[defaultCountry]
	case string:
		return lookupCountry(v)
	default:
		return countryTable[defaultCountry]
	}
}

func lookupCountry(name string) Location {
	key := strings.ToLower(strings.TrimSpace(name))
	if loc, ok := countryTable[key]; ok {
		return loc
	}
	return countryTable[defaultCountry]
}

// toFloat accepts the numeric encodings JSON decoding can produce for
// coordinates: float64 from numbers, string from quoted values.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		return parseFloat(n)
	default:
		return 0, false
	}
}
