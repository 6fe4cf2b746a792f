// Package catalog holds the static category catalog and the common-item
// lookup table used to pre-fill categories on item creation.
package catalog

import (
	"strings"

	"github.com/okozh/shoplist/internal/models"
)

// All is the sentinel category identifier that matches every item when
// filtering. It is not a member of the catalog.
const All = "all"

// Other is the fallback category for items that match nothing in the
// common-item table.
const Other = "other"

// categories is the fixed catalog. Exactly 8 entries, never mutated.
var categories = []models.Category{
	{ID: "produce", Label: "Produce"},
	{ID: "dairy", Label: "Dairy"},
	{ID: "meat", Label: "Meat & Fish"},
	{ID: "bakery", Label: "Bakery"},
	{ID: "frozen", Label: "Frozen"},
	{ID: "beverages", Label: "Beverages"},
	{ID: "household", Label: "Household"},
	{ID: Other, Label: "Other"},
}

// commonItems maps lowercase item names to their default category.
// Lookup is exact (case-insensitive), never substring or fuzzy.
var commonItems = map[string]string{
	"apples":            "produce",
	"bananas":           "produce",
	"carrots":           "produce",
	"lettuce":           "produce",
	"onions":            "produce",
	"potatoes":          "produce",
	"tomatoes":          "produce",
	"milk":              "dairy",
	"butter":            "dairy",
	"cheese":            "dairy",
	"eggs":              "dairy",
	"yogurt":            "dairy",
	"chicken":           "meat",
	"beef":              "meat",
	"ham":               "meat",
	"salmon":            "meat",
	"sausages":          "meat",
	"bread":             "bakery",
	"bagels":            "bakery",
	"croissants":        "bakery",
	"ice cream":         "frozen",
	"frozen pizza":      "frozen",
	"frozen peas":       "frozen",
	"coffee":            "beverages",
	"tea":               "beverages",
	"juice":             "beverages",
	"beer":              "beverages",
	"wine":              "beverages",
	"water":             "beverages",
	"dish soap":         "household",
	"paper towels":      "household",
	"toilet paper":      "household",
	"trash bags":        "household",
	"laundry detergent": "household",
}

// Categories returns the fixed category catalog in display order.
// Callers must not modify the returned slice.
func Categories() []models.Category {
	return categories
}

// IsKnown reports whether id is a member of the catalog.
func IsKnown(id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// FindCategory returns the default category for a known item name, matching
// case-insensitively on the exact name. Unknown names map to Other.
func FindCategory(itemName string) string {
	if category, ok := commonItems[strings.ToLower(itemName)]; ok {
		return category
	}
	return Other
}
