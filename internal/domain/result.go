package domain

// SearchResult is a single surfaced story or hit, synthesized from the raw
// document while formatting. It only exists for the duration of one request.
type SearchResult struct {
	Title    string
	Snippet  string
	Source   string
	Date     string
	URL      string
	Type     Intent
	Metadata map[string]any
}

// NewSearchResult builds a SearchResult when both title and snippet are
// non-empty after normalization; it returns false otherwise.
func NewSearchResult(title, snippet, source, date, url string, typ Intent, metadata map[string]any) (SearchResult, bool) {
	if title == "" || snippet == "" {
		return SearchResult{}, false
	}
	return SearchResult{
		Title:    title,
		Snippet:  snippet,
		Source:   source,
		Date:     date,
		URL:      url,
		Type:     typ,
		Metadata: metadata,
	}, true
}

// IsTop reports whether the result came from the provider's top stories
// section rather than the organic list.
func (r SearchResult) IsTop() bool {
	if r.Metadata == nil {
		return false
	}
	v, _ := r.Metadata["is_top"].(bool)
	return v
}
