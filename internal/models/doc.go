// Package models defines the core domain models for the shopping list app.
//
// # Models
//
//   - List: a named, ordered collection of items owned by one session
//   - Item: a single shopping-list entry with a category and completion flag
//   - Category: one of a fixed set of classification buckets
//   - SharePayload: the reduced projection of a List used for sharing
//
// # Design Principles
//
// 1. **Client parity**: JSON field names match what the browser client stores
// 2. **Opaque IDs**: IDs are opaque strings, never parsed or ordered by callers
// 3. **No validation here**: models are plain data; invariants live in the
// packages that construct them
package models
