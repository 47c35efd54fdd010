package storage

import (
	"encoding/json"
	"fmt"
)

// Collection is a typed view over a list stored under a single key.
type Collection[T any] struct {
	store Provider
	key   string
}

// NewCollection returns a typed view of the list stored under key.
func NewCollection[T any](store Provider, key string) Collection[T] {
	return Collection[T]{store: store, key: key}
}

// Key returns the store key backing the collection.
func (c Collection[T]) Key() string {
	return c.key
}

// All reads the whole collection. A collection that was never written reads
// as empty.
func (c Collection[T]) All() ([]T, error) {
	data, err := c.store.Read(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.key, err)
	}
	items := []T{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the whole collection.
func (c Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", c.key, err)
	}
	if err := c.store.Write(c.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}

// Document is a typed view over a single value stored under a key.
type Document[T any] struct {
	store Provider
	key   string
}

// NewDocument returns a typed view of the value stored under key.
func NewDocument[T any](store Provider, key string) Document[T] {
	return Document[T]{store: store, key: key}
}

// Get reads the value. ok is false when nothing has been stored yet.
func (d Document[T]) Get() (value T, ok bool, err error) {
	data, err := d.store.Read(d.key)
	if err != nil {
		return value, false, fmt.Errorf("failed to read %s: %w", d.key, err)
	}
	if len(data) == 0 {
		return value, false, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("failed to parse %s: %w", d.key, err)
	}
	return value, true, nil
}

// Put replaces the value.
func (d Document[T]) Put(value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", d.key, err)
	}
	if err := d.store.Write(d.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.key, err)
	}
	return nil
}
