// Package search ranks clothing items against a free-text query.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/tailora-app/tailora/internal/protocol"
)

// itemSource implements fuzzy.Source over the combined searchable text of
// each item.
type itemSource struct {
	items []protocol.ClothingItem
	texts []string
}

func (s itemSource) Len() int            { return len(s.texts) }
func (s itemSource) String(i int) string { return s.texts[i] }

// searchText flattens the fields a user would reach for when typing a query.
func searchText(item protocol.ClothingItem) string {
	parts := []string{item.Name, item.Brand, item.Color, item.Category, item.Material}
	parts = append(parts, item.Tags...)
	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToLower(p))
	}
	return b.String()
}

// Items returns the items matching query, best match first. An empty query
// returns everything unchanged.
func Items(items []protocol.ClothingItem, query string) []protocol.ClothingItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	source := itemSource{items: items, texts: make([]string, len(items))}
	for i, item := range items {
		source.texts[i] = searchText(item)
	}

	matches := fuzzy.FindFrom(query, source)
	out := make([]protocol.ClothingItem, len(matches))
	for i, match := range matches {
		out[i] = items[match.Index]
	}
	return out
}
