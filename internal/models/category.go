package models

// Category is one of the fixed classification buckets for items.
// The set of categories is static and never mutated at runtime.
type Category struct {
	// ID is the stable identifier stored on items (e.g., "dairy").
	ID string `json:"id"`

	// Label is the human-readable display name (e.g., "Dairy").
	Label string `json:"label"`
}
