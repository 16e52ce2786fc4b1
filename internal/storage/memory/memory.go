// Package memory is a mutex-guarded map implementation of the storage port.
// It backs the test suites and the STORE_DRIVER=memory development mode.
// Scan returns records in insertion order, mirroring the stable ordering the
// document store gives an unsorted fetch.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/storekit/admin-backend/internal/storage"
)

// Store holds one in-memory collection per class.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]*collection)}
}

// Collection returns the named collection, creating it on first use.
func (s *Store) Collection(name string) storage.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, ok := s.collections[name]
	if !ok {
		col = &collection{objects: make(map[string]storage.Properties)}
		s.collections[name] = col
	}
	return col
}

// EnsureSchema is a no-op: collections are created on demand.
func (s *Store) EnsureSchema(_ context.Context) error {
	return nil
}

// Ready always reports true.
func (s *Store) Ready(_ context.Context) bool {
	return true
}

// Close releases nothing but satisfies the store lifecycle.
func (s *Store) Close() error {
	return nil
}

type collection struct {
	mu      sync.RWMutex
	order   []string // insertion order of keys
	objects map[string]storage.Properties
}

func (c *collection) Insert(_ context.Context, props storage.Properties) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.NewString()
	c.objects[id] = props.Clone()
	c.order = append(c.order, id)
	return id, nil
}

func (c *collection) FetchByID(_ context.Context, id string) (*storage.Object, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	props, ok := c.objects[id]
	if !ok {
		return nil, nil
	}
	return &storage.Object{ID: id, Properties: props.Clone()}, nil
}

func (c *collection) Update(_ context.Context, id string, partial storage.Properties) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	props, ok := c.objects[id]
	if !ok {
		return storage.ErrNotFound
	}
	for k, v := range partial {
		props[k] = v
	}
	return nil
}

func (c *collection) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.objects[id]; !ok {
		return storage.ErrNotFound
	}
	delete(c.objects, id)
	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *collection) Scan(_ context.Context, limit, offset int) ([]storage.Object, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if offset >= len(c.order) {
		return nil, nil
	}
	end := offset + limit
	if end > len(c.order) {
		end = len(c.order)
	}

	out := make([]storage.Object, 0, end-offset)
	for _, id := range c.order[offset:end] {
		out = append(out, storage.Object{ID: id, Properties: c.objects[id].Clone()})
	}
	return out, nil
}

// NearText approximates similarity search with case-insensitive substring
// matching over string properties. Good enough for development; the real
// ranking lives in the vector store.
func (c *collection) NearText(_ context.Context, query string, limit int) ([]storage.Object, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(query)
	var out []storage.Object
	for _, id := range c.order {
		if len(out) == limit {
			break
		}
		for _, v := range c.objects[id] {
			s, ok := v.(string)
			if ok && strings.Contains(strings.ToLower(s), needle) {
				out = append(out, storage.Object{ID: id, Properties: c.objects[id].Clone()})
				break
			}
		}
	}
	return out, nil
}
