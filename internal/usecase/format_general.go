package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"aria-ai/internal/domain"
)

var (
	howToPatterns      = []string{"how to", "steps to", "guide for", "tutorial"}
	comparisonPatterns = []string{"vs", "versus", "compared to", "difference between"}
	listPatterns       = []string{"best", "top", "reasons why", "ways to"}
	listTitleRe        = regexp.MustCompile(`\d+\s+best|\d+\s+top`)
)

// formatGeneral answers an open-ended question. A substantial answer box
// wins, then a knowledge graph panel; otherwise the query is classified
// as how-to, comparison, list or factual and the organic results are
// rendered to match.
func formatGeneral(query string, doc *domain.Document, location string) string {
	var lines []string

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
		// A single short line is not a real answer; keep scanning, but the
		// line stays and shapes the fallback checks below.
		if len(lines) > 1 || (len(lines) == 1 && len(lines[0]) > 100) {
			return strings.Join(lines, "\n")
		}
	}

	if kg := doc.KnowledgeGraph; len(lines) == 0 && kg != nil && kg.Title != "" {
		lines = append(lines, fmt.Sprintf("Information about %s:", kg.Title))
		if kg.Description != "" {
			lines = append(lines, kg.Description)
		}
		for i, attr := range kg.Attributes {
			if i >= 3 {
				break
			}
			lines = append(lines, fmt.Sprintf("• %s: %s", attr.Key, attr.Value))
		}
		if len(lines) > 1 {
			return strings.Join(lines, "\n")
		}
	}

	if len(doc.OrganicResults) > 0 {
		lowerQuery := strings.ToLower(query)

		switch {
		case containsAny(lowerQuery, howToPatterns):
			found := false
			for _, result := range doc.OrganicResults {
				if containsAnyFold(result.Title, howToPatterns) {
					lines = append(lines, fmt.Sprintf("Here's how to %s:", strings.TrimSpace(strings.ReplaceAll(query, "how to", ""))))
					lines = append(lines, result.Snippet)
					if result.Source != "" {
						lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
					}
					found = true
					break
				}
			}
			if !found {
				result := doc.OrganicResults[0]
				lines = append(lines, fmt.Sprintf("Here's information on how to %s:", strings.TrimSpace(strings.ReplaceAll(query, "how to", ""))))
				lines = append(lines, result.Snippet)
				if result.Source != "" {
					lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
				}
			}

		case containsAny(lowerQuery, comparisonPatterns):
			for _, result := range doc.OrganicResults {
				if containsAnyFold(result.Title, comparisonPatterns) {
					lines = append(lines, result.Title)
					lines = append(lines, result.Snippet)
					if result.Source != "" {
						lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
					}
					break
				}
			}
			if len(lines) == 0 {
				result := doc.OrganicResults[0]
				lines = append(lines, result.Title)
				lines = append(lines, result.Snippet)
				if result.Source != "" {
					lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
				}
			}

		case containsAny(lowerQuery, listPatterns):
			for _, result := range doc.OrganicResults {
				lowerTitle := strings.ToLower(result.Title)
				if containsAny(lowerTitle, listPatterns) || listTitleRe.MatchString(lowerTitle) {
					lines = append(lines, result.Title)
					lines = append(lines, result.Snippet)
					if result.Source != "" {
						lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
					}
					break
				}
			}
			if len(lines) == 0 {
				result := doc.OrganicResults[0]
				lines = append(lines, result.Title)
				lines = append(lines, result.Snippet)
				if result.Source != "" {
					lines = append(lines, fmt.Sprintf("Source: %s", result.Source))
				}
			}

		default:
			// Plain questions and uncategorized queries both get the most
			// informative of the top results.
			var best *domain.Item
			longest := 0
			top := doc.OrganicResults
			if len(top) > 3 {
				top = top[:3]
			}
			for i := range top {
				if len(top[i].Snippet) > longest {
					longest = len(top[i].Snippet)
					best = &top[i]
				}
			}
			if best != nil {
				lines = append(lines, fmt.Sprintf("Here's information about %s:", query))
				lines = append(lines, best.Snippet)
				if best.Source != "" {
					lines = append(lines, fmt.Sprintf("Source: %s", best.Source))
				}
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("I found information about %s, but couldn't determine the most relevant details.", query))
		lines = append(lines, "Try asking a more specific question about this topic.")
	}

	return strings.Join(lines, "\n")
}
