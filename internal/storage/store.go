// Package storage provides abstractions for persistent data storage.
package storage

import "context"

// Store defines the opaque key-value capability the service layer persists
// through. It mirrors the get/set/remove/clear surface of the browser
// client's local storage; callers never inspect the store's internals.
// The abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// Get retrieves the value for a key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores a value under a key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
