package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"aria-ai/internal/domain"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// formatNews renders merged news results as a headline digest. Stories
// without a snippet are skipped, near-duplicate headlines are collapsed,
// and top stories sort ahead of organic hits by recency.
func formatNews(query string, doc *domain.Document, location string) string {
	var stories []domain.SearchResult

	for _, item := range doc.TopStories {
		if item.Snippet == "" {
			continue
		}
		if result, ok := newsResult(item, true); ok {
			stories = append(stories, result)
		}
	}
	for _, item := range doc.OrganicResults {
		if item.Snippet == "" {
			continue
		}
		if result, ok := newsResult(item, false); ok {
			stories = append(stories, result)
		}
	}

	stories = dedupeByTitle(stories)

	sort.SliceStable(stories, func(i, j int) bool {
		bi, di := newsSortKey(stories[i])
		bj, dj := newsSortKey(stories[j])
		if bi != bj {
			return bi < bj
		}
		return di < dj
	})

	var lines []string
	if location != "" {
		lines = append(lines, fmt.Sprintf("Latest News for %s:", titleCase(location)))
	} else {
		lines = append(lines, "Latest News:")
	}

	if len(stories) > 5 {
		stories = stories[:5]
	}
	for _, story := range stories {
		lines = append(lines, fmt.Sprintf("• %s", story.Title))
		lines = append(lines, fmt.Sprintf("  %s", story.Snippet))
		if story.Source != "" || story.Date != "" {
			var info []string
			if story.Source != "" {
				info = append(info, story.Source)
			}
			if story.Date != "" {
				info = append(info, story.Date)
			}
			lines = append(lines, fmt.Sprintf("  Source: %s", strings.Join(info, ", ")))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// newsResult builds a SearchResult from a raw item, trimming the headline
// to its first "|"-separated and then "-"-separated segment.
func newsResult(item domain.Item, isTop bool) (domain.SearchResult, bool) {
	title := strings.TrimSpace(strings.SplitN(strings.SplitN(item.Title, "|", 2)[0], "-", 2)[0])
	return domain.NewSearchResult(title, strings.TrimSpace(item.Snippet), item.Source, item.Date, item.Link, domain.IntentNews, map[string]any{"is_top": isTop})
}

// dedupeByTitle drops a story when over 70% of its headline words already
// appear in a previously kept headline. The ratio is measured against the
// incoming story's own word count.
func dedupeByTitle(stories []domain.SearchResult) []domain.SearchResult {
	var unique []domain.SearchResult
	var seen []string
	for _, story := range stories {
		words := titleWords(story.Title)
		dup := false
		for _, prev := range seen {
			prevWords := titleWords(prev)
			overlap := 0
			for w := range words {
				if _, ok := prevWords[w]; ok {
					overlap++
				}
			}
			if float64(overlap) > float64(len(words))*0.7 {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, story.Title)
			unique = append(unique, story)
		}
	}
	return unique
}

func titleWords(title string) map[string]struct{} {
	normalized := nonWordRe.ReplaceAllString(strings.ToLower(title), "")
	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalized) {
		words[w] = struct{}{}
	}
	return words
}

// newsSortKey buckets stories: top stories first, then freshest dates.
// Ties break on the lower-cased date string.
func newsSortKey(story domain.SearchResult) (int, string) {
	date := strings.ToLower(story.Date)
	if story.IsTop() {
		return 0, date
	}
	if strings.Contains(date, "minute") || strings.Contains(date, "hour") {
		return 1, date
	}
	if strings.Contains(date, "today") {
		return 2, date
	}
	return 3, date
}
