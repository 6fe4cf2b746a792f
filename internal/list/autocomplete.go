package list

import (
	"strings"

	"github.com/okozh/shoplist/internal/models"
)

// MatchAutocomplete returns the items whose name contains the query,
// case-insensitively. Case-variant duplicates ("Milk", "MILK") collapse to
// the first occurrence, and input order is preserved among the survivors.
// An empty query matches everything.
func MatchAutocomplete(query string, items []models.Item) []models.Item {
	q := strings.ToLower(query)
	seen := make(map[string]bool)
	matches := make([]models.Item, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(item.Name)
		if !strings.Contains(name, q) {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		matches = append(matches, item)
	}
	return matches
}
