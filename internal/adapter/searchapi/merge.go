package searchapi

import "aria-ai/internal/domain"

// DedupeByLink removes duplicate items by exact link value, keeping the
// first occurrence and preserving order. Items with an empty link are
// never treated as duplicates of each other; they all survive. The
// operation is idempotent.
func DedupeByLink(items []domain.Item) []domain.Item {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Link != "" {
			if _, dup := seen[item.Link]; dup {
				continue
			}
			seen[item.Link] = struct{}{}
		}
		out = append(out, item)
	}
	return out
}
