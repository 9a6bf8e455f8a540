package query

import (
	"fmt"
	"strings"

	"aria-ai/internal/domain"
)

// Term tables for per-intent query reinforcement. Kept as static data so
// individual entries can be unit-tested in isolation.
var (
	weatherTerms  = []string{"weather", "temperature", "forecast", "rain", "snow", "humidity"}
	sportsTerms   = []string{"score", "game", "match", "tournament", "championship", "standings"}
	timeTerms     = []string{"latest", "recent", "today", "yesterday"}
	sportNames    = []string{"football", "soccer", "basketball", "baseball", "hockey", "tennis", "golf", "cricket"}
	priceTerms    = []string{"price", "cost", "how much", "cheap", "expensive"}
	shoppingTerms = []string{"buy", "purchase", "shop", "sale", "discount"}
)

// Build rewrites a location-stripped query into a single optimized search
// string for the given intent. News uses NewsVariants instead; general
// passes the query through unmodified.
func Build(intent domain.Intent, query, location string) string {
	switch intent {
	case domain.IntentWeather:
		return buildWeather(query, location)
	case domain.IntentSports:
		return buildSports(query, location)
	case domain.IntentPrice:
		return buildPrice(query)
	case domain.IntentDefinition:
		return fmt.Sprintf("define %s meaning dictionary", query)
	case domain.IntentFacts:
		return fmt.Sprintf("%s facts information", query)
	case domain.IntentNews, domain.IntentGeneral:
		return query
	}
	return query
}

// NewsVariants returns the fixed three-variant fan-out set for a news
// search, phrased with or without the extracted location.
func NewsVariants(location string) []string {
	if location != "" {
		return []string{
			fmt.Sprintf("breaking news %s today", location),
			fmt.Sprintf("latest news headlines %s today", location),
			fmt.Sprintf("top news stories %s now", location),
		}
	}
	return []string{
		"breaking news worldwide today",
		"latest news headlines today",
		"top news stories now",
	}
}

func buildWeather(query, location string) string {
	hasWeatherTerm := containsAny(query, weatherTerms)

	if location != "" {
		if hasWeatherTerm {
			return fmt.Sprintf("weather forecast %s conditions temperature today", location)
		}
		return fmt.Sprintf("%s weather forecast %s conditions temperature today", query, location)
	}
	if hasWeatherTerm {
		return "current weather forecast conditions temperature today"
	}
	return fmt.Sprintf("%s weather forecast conditions temperature today", query)
}

func buildSports(query, location string) string {
	hasSportsTerm := containsAny(query, sportsTerms)
	hasTimeTerm := containsAny(query, timeTerms)

	lower := strings.ToLower(query)
	var mentioned []string
	for _, sport := range sportNames {
		if strings.Contains(lower, sport) {
			mentioned = append(mentioned, sport)
		}
	}

	// Sport names take positional priority over the location.
	latest := ""
	if !hasTimeTerm {
		latest = "latest"
	}
	switch {
	case location != "" && len(mentioned) > 0:
		return fmt.Sprintf("%s %s %s scores results", strings.Join(mentioned, " "), location, query)
	case len(mentioned) > 0:
		return fmt.Sprintf("%s %s scores results latest", strings.Join(mentioned, " "), query)
	case location != "":
		return fmt.Sprintf("%s sports scores results %s %s", query, location, latest)
	default:
		sports := ""
		if !hasSportsTerm {
			sports = "sports"
		}
		return fmt.Sprintf("%s %s scores results %s", query, sports, latest)
	}
}

func buildPrice(query string) string {
	switch {
	case containsAny(query, priceTerms):
		return fmt.Sprintf("%s current price cost compare", query)
	case containsAny(query, shoppingTerms):
		return fmt.Sprintf("%s price cost compare best deals", query)
	default:
		return fmt.Sprintf("%s price cost where to buy compare", query)
	}
}

func containsAny(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
