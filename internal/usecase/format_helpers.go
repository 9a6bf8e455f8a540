package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleCase renders a lower-cased location phrase for display ("new york"
// becomes "New York").
func titleCase(s string) string {
	return titleCaser.String(s)
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// containsAnyFold reports whether the lower-cased s contains any of the
// terms. Terms are assumed to be lower-case already.
func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// containsAny reports whether s (already normalized by the caller)
// contains any of the terms.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
