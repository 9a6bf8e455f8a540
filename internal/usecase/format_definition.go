package usecase

import (
	"fmt"
	"strings"

	"aria-ai/internal/domain"
)

var definitionSources = []string{"dictionary", "merriam-webster", "oxford", "cambridge", "vocabulary", "thesaurus"}

// formatDefinition answers a definition question. A dictionary-style
// answer box wins, then results from known dictionary sites, then any
// snippet that reads like a definition.
func formatDefinition(query string, doc *domain.Document, location string) string {
	var lines []string

	if doc.AnswerBox != nil && containsAnyFold(doc.AnswerBox.Title, []string{"definition", "meaning"}) {
		lines = append(lines, doc.AnswerBox.Title)
		if doc.AnswerBox.Answer != "" {
			lines = append(lines, doc.AnswerBox.Answer)
		} else if doc.AnswerBox.Snippet != "" {
			lines = append(lines, doc.AnswerBox.Snippet)
		}
		for _, item := range doc.AnswerBox.List {
			lines = append(lines, fmt.Sprintf("• %s", item))
		}
		return strings.Join(lines, "\n")
	}

	for _, result := range doc.OrganicResults {
		if !containsAnyFold(result.Source, definitionSources) {
			continue
		}
		lines = append(lines, fmt.Sprintf("Definition of '%s':", query))
		if containsAnyFold(result.Title, []string{"meaning", "definition"}) {
			lines = append(lines, result.Title)
		}
		lines = append(lines, result.Snippet)
		lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
		break
	}

	if len(lines) == 0 {
		for _, result := range doc.OrganicResults {
			if containsAnyFold(result.Snippet, []string{"defined as", "refers to"}) ||
				containsAnyFold(result.Title, []string{"meaning", "definition"}) {
				lines = append(lines, fmt.Sprintf("Definition of '%s':", query))
				lines = append(lines, result.Snippet)
				if result.Source != "" {
					lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
				}
				break
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("I couldn't find a specific definition for '%s'.", query))
	}

	return strings.Join(lines, "\n")
}
