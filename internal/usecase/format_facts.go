package usecase

import (
	"fmt"
	"strings"

	"aria-ai/internal/domain"
)

var (
	factualSources = []string{"wikipedia", ".edu", ".gov", "encyclopedia", "britannica", "national", "scientific"}
	factTerms      = []string{"facts about", "information on", "is a", "are the", "was established", "known for"}
)

// formatFacts answers a factual question. The knowledge graph wins, then
// the answer box, then organic results from reliable sources, then any
// snippet that reads like a factual statement.
func formatFacts(query string, doc *domain.Document, location string) string {
	var lines []string

	if kg := doc.KnowledgeGraph; kg != nil && kg.Title != "" {
		lines = append(lines, fmt.Sprintf("Information about %s:", kg.Title))
		if kg.Description != "" {
			lines = append(lines, kg.Description)
		}
		for _, attr := range kg.Attributes {
			lines = append(lines, fmt.Sprintf("• %s: %s", attr.Key, attr.Value))
		}
		return strings.Join(lines, "\n")
	}

	if box := doc.AnswerBox; box != nil {
		if box.Title != "" {
			lines = append(lines, box.Title)
		}
		if box.Answer != "" {
			lines = append(lines, box.Answer)
		} else if box.Snippet != "" {
			lines = append(lines, box.Snippet)
		}
		for _, item := range box.List {
			lines = append(lines, fmt.Sprintf("• %s", item))
		}
		if len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}

	for _, result := range doc.OrganicResults {
		source := strings.ToLower(result.Source)
		link := strings.ToLower(result.Link)
		if containsAny(source, factualSources) || containsAny(link, factualSources) {
			lines = append(lines, fmt.Sprintf("Information about %s:", query))
			lines = append(lines, result.Snippet)
			lines = append(lines, fmt.Sprintf("Source: %s", source))
			break
		}
	}

	if len(lines) == 0 {
		for _, result := range doc.OrganicResults {
			if containsAnyFold(result.Snippet, factTerms) || containsAnyFold(result.Title, factTerms) {
				lines = append(lines, fmt.Sprintf("Information about %s:", query))
				lines = append(lines, result.Snippet)
				if result.Source != "" {
					lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
				}
				break
			}
		}
	}

	if len(lines) == 0 {
		if len(doc.OrganicResults) > 0 {
			result := doc.OrganicResults[0]
			lines = append(lines, fmt.Sprintf("Here's some information about %s:", query))
			lines = append(lines, result.Snippet)
			if result.Source != "" {
				lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
			}
		} else {
			lines = append(lines, fmt.Sprintf("I couldn't find specific facts about %s.", query))
			lines = append(lines, "Try rephrasing your question or asking about a more specific aspect.")
		}
	}

	return strings.Join(lines, "\n")
}
