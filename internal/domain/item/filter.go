package item

import "strings"

// Matches reports whether the item's title or description contains query,
// ignoring case. A blank query matches everything.
func Matches(it Item, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Description), q)
}

// Filter returns the items matching query in their original order.
// The input slice is never modified.
func Filter(items []Item, query string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if Matches(it, query) {
			out = append(out, it)
		}
	}
	return out
}
