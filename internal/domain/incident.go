package domain

import "time"

// RawIncidentRecord is one CSV row as downloaded, all fields still strings.
// Column names follow the published dataset header; columns the analysis
// never touches (Narrative, State breakdowns beyond the code) ride along
// untyped and are dropped during cleaning.
type RawIncidentRecord struct {
	ID         string `json:"incident_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	State      string `json:"state"`
	Category   string `json:"category"`
	AgeBracket string `json:"age_bracket"`
	Injuries   string `json:"injuries"`
	Fatalities string `json:"fatalities"`
	Narrative  string `json:"narrative"`
}

// Incident is the cleaned, typed representation used by the analysis pass.
type Incident struct {
	ID         string
	Date       time.Time
	Month      string // "Jan".."Dec", derived from Date
	State      string
	Category   string
	AgeBracket string
	// AgeMidpoint is the numeric stand-in for the bracket; HasMidpoint is
	// false for blank or unrecognized brackets, which the regression skips.
	AgeMidpoint float64
	HasMidpoint bool
	Injuries    int
	Fatalities  int
}

// monthAbbrevs maps time.Month indices (1-based) to the dataset's month keys.
var monthAbbrevs = [...]string{
	"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthKey returns the three-letter month label for a date, e.g. "Jul".
func MonthKey(t time.Time) string {
	return monthAbbrevs[int(t.Month())]
}

// MonthOrder returns the twelve month labels in calendar order.
func MonthOrder() []string {
	order := make([]string, 12)
	copy(order, monthAbbrevs[1:])
	return order
}

// ValidMonth reports whether s is one of the twelve month labels.
func ValidMonth(s string) bool {
	for _, m := range monthAbbrevs[1:] {
		if m == s {
			return true
		}
	}
	return false
}

// ageBracketMidpoints assigns each published age bracket a numeric midpoint
// so bracket membership can feed the regression. The open-ended "65+" bracket
// uses 72, the midpoint of 65 and the dataset's stated top age of 79.
var ageBracketMidpoints = map[string]float64{
	"0-17":  8.5,
	"18-24": 21,
	"25-34": 29.5,
	"35-44": 39.5,
	"45-54": 49.5,
	"55-64": 59.5,
	"65+":   72,
}

// AgeMidpoint resolves an age bracket to its numeric midpoint.
// The second return is false for unknown or blank brackets.
func AgeMidpoint(bracket string) (float64, bool) {
	v, ok := ageBracketMidpoints[bracket]
	return v, ok
}

// AgeBracketOrder returns the age bracket labels youngest to oldest.
func AgeBracketOrder() []string {
	return []string{"0-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
}
