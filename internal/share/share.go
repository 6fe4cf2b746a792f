// Package share encodes lists into a text-safe form suitable for URLs and
// decodes them back. The payload carries only the list name and each item's
// (name, category) pair.
package share

import (
	"encoding/base64"
	"encoding/json"

	"github.com/okozh/shoplist/internal/models"
)

// Encode projects the list to its shareable subset and returns it as
// URL-safe base64 over JSON.
func Encode(l models.List) string {
	payload := models.SharePayload{
		Name:  l.Name,
		Items: make([]models.ShareItem, len(l.Items)),
	}
	for i, item := range l.Items {
		payload.Items[i] = models.ShareItem{
			Name:     item.Name,
			Category: item.Category,
		}
	}

	// Marshal cannot fail for this payload shape.
	data, _ := json.Marshal(payload)
	return base64.URLEncoding.EncodeToString(data)
}

// Decode reverses Encode. Malformed input of any kind (bad base64, bad JSON)
// yields nil; decode failures are never surfaced as errors.
func Decode(encoded string) *models.SharePayload {
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var payload models.SharePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}
	return &payload
}
