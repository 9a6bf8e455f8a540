package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"aria-ai/internal/domain"
)

var (
	priceTitleSignals = []string{"price", "cost", "$", "£", "€"}
	pricePatterns     = []*regexp.Regexp{
		regexp.MustCompile(`\$\d+(\.\d{2})?`),
		regexp.MustCompile(`£\d+(\.\d{2})?`),
		regexp.MustCompile(`€\d+(\.\d{2})?`),
		regexp.MustCompile(`\d+\s?(dollars|USD|GBP|EUR|pounds|euros)`),
	}
	sentenceSplitRe = regexp.MustCompile(`[.!?]`)
)

// formatPrice answers a pricing question. A price-bearing answer box wins,
// then structured shopping results, then organic results matched against
// currency patterns with the first price-bearing sentence extracted.
func formatPrice(query string, doc *domain.Document, location string) string {
	var lines []string

	if doc.AnswerBox != nil && containsAnyFold(doc.AnswerBox.Title, priceTitleSignals) {
		lines = append(lines, fmt.Sprintf("Price Information for %s:", query))
		if doc.AnswerBox.Answer != "" {
			lines = append(lines, doc.AnswerBox.Answer)
		} else if doc.AnswerBox.Snippet != "" {
			lines = append(lines, doc.AnswerBox.Snippet)
		}
		return strings.Join(lines, "\n")
	}

	if len(doc.ShoppingResults) > 0 {
		lines = append(lines, fmt.Sprintf("Price Information for %s:", query))
		items := doc.ShoppingResults
		if len(items) > 5 {
			items = items[:5]
		}
		for i, item := range items {
			if item.Title == "" || item.Price == "" {
				continue
			}
			line := fmt.Sprintf("%d. %s - %s", i+1, item.Title, item.Price)
			if item.Source != "" {
				line += fmt.Sprintf(" from %s", item.Source)
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	}

	if len(lines) == 0 {
		type priced struct {
			item domain.Item
			text string
		}
		var hits []priced
		for _, result := range doc.OrganicResults {
			fullText := result.Title + " " + result.Snippet
			if matchesPricePattern(fullText) {
				hits = append(hits, priced{item: result, text: fullText})
			}
		}

		if len(hits) > 0 {
			lines = append(lines, fmt.Sprintf("Price Information for %s:", query))
			if len(hits) > 3 {
				hits = hits[:3]
			}
			for _, hit := range hits {
				statement := ""
				for _, sentence := range sentenceSplitRe.Split(hit.text, -1) {
					if matchesPricePattern(sentence) {
						statement = strings.TrimSpace(sentence)
						break
					}
				}
				if statement == "" {
					statement = hit.item.Snippet
				}
				lines = append(lines, fmt.Sprintf("• %s", statement))
				if hit.item.Source != "" {
					lines = append(lines, fmt.Sprintf("  Source: %s", hit.item.Source))
				}
				lines = append(lines, "")
			}
		}
	}

	if len(lines) == 0 {
		lines = append(lines, fmt.Sprintf("I couldn't find specific pricing information for '%s'.", query))
		lines = append(lines, "Try providing more specific product details or checking a shopping website directly.")
	}

	return strings.Join(lines, "\n")
}

func matchesPricePattern(s string) bool {
	for _, pattern := range pricePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}
