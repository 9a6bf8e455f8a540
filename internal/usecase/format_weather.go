package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"aria-ai/internal/domain"
)

var (
	weatherSignalTerms = []string{"weather", "temperature", "forecast", "degrees", "°", "rain", "sunny", "cloudy"}
	conditionsPhrases  = []string{"conditions:", "weather:", "forecast:"}
	tempRe             = regexp.MustCompile(`(\d+)°([CF])`)
)

// formatWeather answers a weather question. The answer box wins when
// present; otherwise organic results are scanned for a temperature reading
// or a conditions phrase, with a plain-snippet second pass.
func formatWeather(query string, doc *domain.Document, location string) string {
	var lines []string

	if doc.AnswerBox != nil {
		if doc.AnswerBox.Answer != "" {
			lines = append(lines, doc.AnswerBox.Answer)
		} else if doc.AnswerBox.Snippet != "" {
			lines = append(lines, doc.AnswerBox.Snippet)
		}
	}

	if len(lines) == 0 {
		for _, result := range doc.OrganicResults {
			if !containsAnyFold(result.Snippet, weatherSignalTerms) && !containsAnyFold(result.Title, weatherSignalTerms) {
				continue
			}
			if temp := tempRe.FindString(result.Snippet + result.Title); temp != "" {
				if location != "" {
					lines = append(lines, fmt.Sprintf("Weather for %s: %s", titleCase(location), temp))
				} else {
					lines = append(lines, fmt.Sprintf("Current Weather: %s", temp))
				}
			}
			lowerSnippet := strings.ToLower(result.Snippet)
			for _, phrase := range conditionsPhrases {
				idx := strings.Index(lowerSnippet, phrase)
				if idx < 0 {
					continue
				}
				// Only the segment up to the next occurrence of the phrase.
				rest := lowerSnippet[idx+len(phrase):]
				if next := strings.Index(rest, phrase); next >= 0 {
					rest = rest[:next]
				}
				lines = append(lines, capitalize(strings.TrimSpace(rest)))
				break
			}
			if len(lines) > 0 {
				lines = append(lines, strings.TrimSpace(result.Snippet))
				break
			}
		}

		if len(lines) == 0 {
			for _, result := range doc.OrganicResults {
				if containsAnyFold(result.Snippet, weatherSignalTerms) {
					if location != "" {
						lines = append(lines, fmt.Sprintf("Weather information for %s:", titleCase(location)))
					} else {
						lines = append(lines, "Current weather information:")
					}
					lines = append(lines, strings.TrimSpace(result.Snippet))
					break
				}
			}
		}
	}

	if len(lines) == 0 {
		if location != "" {
			lines = append(lines, fmt.Sprintf("I couldn't find specific weather information for %s.", titleCase(location)))
		} else {
			lines = append(lines, "I couldn't find specific weather information for your location.")
		}
		lines = append(lines, "You might want to try asking about a specific city or region.")
	}

	return strings.Join(lines, "\n")
}
