package types

import (
	"context"
	"errors"
)

// Filter selects records by exact match on top-level entity fields, keyed by
// the field's JSON name. A nil or empty filter selects every record.
type Filter map[string]any

// Table provides uniform CRUD operations for a single feature's entities.
// Get and Fetch return any; callers type-assert to the concrete entity
// pointer (for example *CatalogueItem).
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty a new UUID v7 is
	// generated and written into the entity. Returns the ID used.
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter in insertion order.
	Fetch(ctx context.Context, filter Filter) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter value type")
)
