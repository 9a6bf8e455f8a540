// Package query rewrites raw user questions into search-engine queries.
// Everything in this package is a pure function over static term tables:
// matching is case-insensitive substring matching with no stemming, so
// substring false positives ("cheapskate" contains "cheap") are accepted
// behavior.
package query

import "strings"

// locationConnectors are scanned in priority order; only the first one
// found in the query is used.
var locationConnectors = []string{" in ", " for ", " at ", " near ", " around "}

// temporalMarkers are stripped from the tail of a candidate location,
// applied sequentially in this order.
var temporalMarkers = []string{" today", " now", " this week", " this month", " tomorrow"}

// ExtractLocation pulls an optional location phrase out of a raw query.
// On a match both the cleaned query and the location come back lower-cased;
// with no connector present the query is returned untouched with an empty
// location. An empty location is a valid result, not an error.
func ExtractLocation(rawQuery string) (cleaned, location string) {
	clean := strings.ToLower(rawQuery)

	for _, conn := range locationConnectors {
		idx := strings.Index(clean, conn)
		if idx < 0 {
			continue
		}
		candidate := strings.TrimSpace(clean[idx+len(conn):])
		if candidate == "" {
			break
		}
		for _, marker := range temporalMarkers {
			if i := strings.Index(candidate, marker); i >= 0 {
				candidate = strings.TrimSpace(candidate[:i])
			}
		}
		return strings.TrimSpace(clean[:idx]), candidate
	}
	return rawQuery, ""
}
