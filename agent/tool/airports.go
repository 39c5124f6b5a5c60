package tool

import "strings"

// iataByCity is the fixed route table: exact match on lower-cased, trimmed
// city names. No fuzzy or partial matching.
var iataByCity = map[string]string{
	"ahmedabad":    "AMD",
	"goa":          "GOI",
	"delhi":        "DEL",
	"mumbai":       "BOM",
	"bangalore":    "BLR",
	"chennai":      "MAA",
	"kolkata":      "CCU",
	"hyderabad":    "HYD",
	"jaipur":       "JAI",
	"kochi":        "COK",
	"paris":        "CDG",
	"london":       "LHR",
	"new york":     "JFK",
	"los angeles":  "LAX",
	"tokyo":        "NRT",
	"dubai":        "DXB",
	"singapore":    "SIN",
	"sydney":       "SYD",
	"toronto":      "YYZ",
	"frankfurt":    "FRA",
	"hong kong":    "HKG",
	"amsterdam":    "AMS",
	"bangkok":      "BKK",
	"shanghai":     "PVG",
	"beijing":      "PEK",
	"seoul":        "ICN",
	"doha":         "DOH",
	"zurich":       "ZRH",
	"kuala lumpur": "KUL",
}

// ResolveAirport maps a free-text city name to its IATA airport code.
func ResolveAirport(city string) (string, bool) {
	code, ok := iataByCity[strings.ToLower(strings.TrimSpace(city))]
	return code, ok
}
