package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"aria-ai/internal/domain"
)

var (
	sportsSignalTerms = []string{"score", "vs", "beat", "won", "lost", "game", "match", "final"}
	fallbackSports    = []string{"football", "soccer", "basketball", "baseball", "hockey", "tennis"}
	scoreRe           = regexp.MustCompile(`(\w+(\s\w+){0,3})\s(\d+)\s*-\s*(\d+)\s(\w+(\s\w+){0,3})`)
)

// formatSports answers a scores question. A score-bearing answer box wins
// outright, then the structured sports block, then organic results scanned
// for a "Team A 3 - 2 Team B" pattern.
func formatSports(query string, doc *domain.Document, location string) string {
	var lines []string

	if doc.AnswerBox != nil && containsAnyFold(doc.AnswerBox.Title, []string{"score", "result", "match"}) {
		lines = append(lines, doc.AnswerBox.Title)
		if doc.AnswerBox.Answer != "" {
			lines = append(lines, doc.AnswerBox.Answer)
		} else if doc.AnswerBox.Snippet != "" {
			lines = append(lines, doc.AnswerBox.Snippet)
		}
		return strings.Join(lines, "\n")
	}

	if sr := doc.SportsResults; sr != nil {
		lines = append(lines, "Sports Results:")
		if sr.Title != "" {
			lines = append(lines, sr.Title)
		}
		for _, game := range sr.Games {
			if len(game.Teams) < 2 {
				continue
			}
			scores := game.Scores
			for len(scores) < 2 {
				scores = append(scores, "")
			}
			lines = append(lines, fmt.Sprintf("%s %s - %s %s", game.Teams[0], scores[0], scores[1], game.Teams[1]))
		}
		lines = append(lines, sr.Entries...)
	}

	if len(lines) == 0 {
		for _, result := range doc.OrganicResults {
			if !containsAnyFold(result.Snippet, sportsSignalTerms) && !containsAnyFold(result.Title, sportsSignalTerms) {
				continue
			}
			if match := scoreRe.FindString(result.Snippet + result.Title); match != "" {
				lines = append(lines, fmt.Sprintf("Match Result: %s", match))
			} else {
				if strings.Contains(result.Title, "vs") || strings.Contains(result.Snippet, "vs") {
					lines = append(lines, result.Title)
				}
				lines = append(lines, strings.TrimSpace(result.Snippet))
			}
			break
		}

		if len(lines) == 0 {
			for _, result := range doc.OrganicResults {
				if containsAnyFold(result.Title, sportsSignalTerms) {
					lines = append(lines, result.Title)
					lines = append(lines, strings.TrimSpace(result.Snippet))
					break
				}
			}
		}
	}

	if len(lines) == 0 {
		sport := "sports"
		for _, s := range fallbackSports {
			if strings.Contains(strings.ToLower(query), s) {
				sport = s
				break
			}
		}
		if location != "" {
			lines = append(lines, fmt.Sprintf("I couldn't find specific %s information for %s.", sport, titleCase(location)))
		} else {
			lines = append(lines, fmt.Sprintf("I couldn't find specific %s information or scores.", sport))
		}
	}

	return strings.Join(lines, "\n")
}
