// Package service wires the pure list logic to the persistence collaborator.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/okozh/shoplist/internal/list"
	"github.com/okozh/shoplist/internal/models"
	"github.com/okozh/shoplist/internal/share"
	"github.com/okozh/shoplist/internal/storage"
)

// listsKey is the store key holding the whole list collection, mirroring the
// single local-storage key the browser client uses.
const listsKey = "shoplist.lists"

// ListService persists the list collection through an injected Store.
type ListService struct {
	store storage.Store
}

// NewListService creates a new ListService with the given storage backend.
func NewListService(store storage.Store) *ListService {
	return &ListService{store: store}
}

// Load retrieves the persisted list collection. An absent key yields an
// empty collection, not an error.
func (s *ListService) Load(ctx context.Context) ([]models.List, error) {
	value, ok, err := s.store.Get(ctx, listsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	if !ok {
		return []models.List{}, nil
	}

	var lists []models.List
	if err := json.Unmarshal([]byte(value), &lists); err != nil {
		return nil, fmt.Errorf("failed to decode stored lists: %w", err)
	}

	slog.Debug("Lists loaded", "count", len(lists))
	return lists, nil
}

// Save persists the whole collection as one JSON snapshot.
func (s *ListService) Save(ctx context.Context, lists []models.List) error {
	data, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("failed to encode lists: %w", err)
	}

	if err := s.store.Set(ctx, listsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save lists: %w", err)
	}

	slog.Debug("Lists saved", "count", len(lists))
	return nil
}

// Reset drops the persisted collection.
func (s *ListService) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, listsKey); err != nil {
		return fmt.Errorf("failed to reset lists: %w", err)
	}
	slog.Info("Lists reset")
	return nil
}

// Share encodes a list into its text-safe share form.
func (s *ListService) Share(l models.List) string {
	return share.Encode(l)
}

// Import decodes a shared payload and appends it to the persisted collection
// as a new list with fresh item IDs. A malformed payload yields a nil list
// and leaves the store untouched; decode failures are never errors.
func (s *ListService) Import(ctx context.Context, encoded string) (*models.List, error) {
	payload := share.Decode(encoded)
	if payload == nil {
		slog.Warn("Import ignored malformed share payload")
		return nil, nil
	}

	imported := list.New(payload.Name)
	for _, item := range payload.Items {
		imported.Items = append(imported.Items, list.NewItem(item.Name, item.Category))
	}

	lists, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	lists = append(lists, imported)
	if err := s.Save(ctx, lists); err != nil {
		return nil, err
	}

	slog.Info("List imported", "list_id", imported.ID, "items_count", len(imported.Items))
	return &imported, nil
}
