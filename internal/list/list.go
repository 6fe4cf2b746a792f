// Package list provides the pure logic layer for shopping lists: factories
// for lists and items, and the query/transform functions the client calls to
// filter, group and autocomplete. Every function here is a synchronous,
// side-effect-free transformation over caller-owned data.
package list

import (
	"time"

	"github.com/okozh/shoplist/internal/catalog"
	"github.com/okozh/shoplist/internal/models"
)

// New creates a list with a fresh ID and no items. The name is taken as-is;
// empty names are accepted.
func New(name string) models.List {
	return models.List{
		ID:    NewID(),
		Name:  name,
		Items: []models.Item{},
	}
}

// NewItem creates an item with a fresh ID. An empty category falls back to
// the "other" bucket; a non-empty category is stored without validation.
func NewItem(name, category string) models.Item {
	if category == "" {
		category = catalog.Other
	}
	return models.Item{
		ID:        NewID(),
		Name:      name,
		Category:  category,
		Done:      false,
		CreatedAt: time.Now().UnixMilli(),
	}
}
