package models

// List represents a shopping list: a named, ordered collection of items.
type List struct {
	// ID is the opaque unique identifier for the list.
	// Immutable after creation.
	ID string `json:"id"`

	// Name is the display name of the list (e.g., "Weekly groceries").
	Name string `json:"name"`

	// Items is the ordered sequence of entries on the list.
	Items []Item `json:"items"`
}

// Item represents a single entry on a shopping list.
type Item struct {
	// ID is the opaque unique identifier for the item.
	ID string `json:"id"`

	// Name is the item text as the user typed it (e.g., "Milk").
	Name string `json:"name"`

	// Category is the identifier of the item's category bucket.
	// Defaults to "other" when the item is created without one.
	Category string `json:"category"`

	// Done reports whether the item has been checked off.
	// Always false on a freshly created item.
	Done bool `json:"done"`

	// CreatedAt is the Unix millisecond timestamp when the item was created.
	CreatedAt int64 `json:"createdAt"`
}
