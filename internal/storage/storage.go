// Package storage defines the port to the backing document store. The store
// persists one flat property bag per record; repositories own the mapping
// between domain shape and stored shape and are the only callers of this
// interface.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by adapters when the target object is absent.
var ErrNotFound = errors.New("object not found")

// Properties is the flat property bag a collection persists per record.
// Values are scalars; structured domain fields are serialized to JSON string
// properties before they reach the store.
type Properties map[string]interface{}

// Object is one stored record: the store-assigned key plus its property bag.
type Object struct {
	ID         string
	Properties Properties
}

// Collection exposes the store primitives for one record class.
type Collection interface {
	// Insert stores a new object and returns the store-assigned key.
	Insert(ctx context.Context, props Properties) (string, error)

	// FetchByID returns the object, or (nil, nil) when absent.
	FetchByID(ctx context.Context, id string) (*Object, error)

	// Update merges the partial property bag into the stored object.
	Update(ctx context.Context, id string, partial Properties) error

	// Delete removes the object. Hard delete, no tombstone.
	Delete(ctx context.Context, id string) error

	// Scan returns up to limit raw objects starting at offset, unfiltered.
	Scan(ctx context.Context, limit, offset int) ([]Object, error)

	// NearText returns up to limit objects by text similarity.
	NearText(ctx context.Context, query string, limit int) ([]Object, error)
}

// Store is the process-wide store handle, connected once at startup and
// closed at shutdown. It is constructed explicitly and injected into the
// repositories; nothing looks it up from ambient state.
type Store interface {
	Collection(name string) Collection
	EnsureSchema(ctx context.Context) error
	Ready(ctx context.Context) bool
	Close() error
}
