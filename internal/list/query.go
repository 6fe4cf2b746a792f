package list

import (
	"github.com/okozh/shoplist/internal/catalog"
	"github.com/okozh/shoplist/internal/models"
)

// FilterByCategory returns the items whose category equals the given one,
// preserving order. The catalog.All sentinel returns the input unchanged.
func FilterByCategory(items []models.Item, category string) []models.Item {
	if category == catalog.All {
		return items
	}
	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// GroupByCategory buckets items by category in a single pass, preserving
// encounter order within each bucket. Categories with no items are absent
// from the result.
func GroupByCategory(items []models.Item) map[string][]models.Item {
	groups := make(map[string][]models.Item)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// CountCompleted returns the number of checked-off items.
func CountCompleted(items []models.Item) int {
	count := 0
	for _, item := range items {
		if item.Done {
			count++
		}
	}
	return count
}

// ClearCompleted returns the items that are not checked off, preserving order.
func ClearCompleted(items []models.Item) []models.Item {
	remaining := make([]models.Item, 0, len(items))
	for _, item := range items {
		if !item.Done {
			remaining = append(remaining, item)
		}
	}
	return remaining
}
