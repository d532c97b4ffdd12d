package common

import "strings"

// HasAny returns true if s contains any of the substrings, ignoring case.
func HasAny(s string, subs ...string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(s, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

var missingMarkers = []string{"", "NA", "NaN", "null"}

// IsMissing reports whether a raw CSV cell marks an absent value.
// Markers match case-insensitively.
func IsMissing(cell string) bool {
	cell = strings.TrimSpace(cell)
	for _, m := range missingMarkers {
		if strings.EqualFold(cell, m) {
			return true
		}
	}
	return false
}

// Unquote trims surrounding whitespace and double quotes.
func Unquote(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}
