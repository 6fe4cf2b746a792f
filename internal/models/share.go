package models

// SharePayload is the shareable projection of a List. It carries only the
// list name and each item's (name, category) pair; IDs, completion flags and
// timestamps are deliberately dropped so the receiver creates fresh items.
type SharePayload struct {
	// Name is the shared list's display name.
	Name string `json:"name"`

	// Items are the shared entries, in list order.
	Items []ShareItem `json:"items"`
}

// ShareItem is one entry inside a SharePayload.
type ShareItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}
