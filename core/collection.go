package core

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// Collection is a list of records stored as a single JSON array under one key.
// Writes are serialized so concurrent edits do not overwrite each other.
type Collection[T any] struct {
	mu    sync.Mutex
	store Store
	key   string
	getID func(T) string
	setID func(*T, string)
}

func NewCollection[T any](store Store, key string, getID func(T) string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{store: store, key: key, getID: getID, setID: setID}
}

func (c *Collection[T]) Key() string { return c.key }

// List returns the stored records in insertion order, never nil.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if _, err := c.store.Load(ctx, c.key, &items); err != nil {
		return nil, errors.Wrapf(err, "loading %s", c.key)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.List(ctx)
	if err != nil {
		return zero, err
	}
	if i := IndexByID(items, id, c.getID); i >= 0 {
		return items[i], nil
	}
	return zero, ErrNotFound
}

// Create appends item with a new id.
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.List(ctx)
	if err != nil {
		return item, err
	}
	c.setID(&item, NewID())
	items = append(items, item)
	if err = c.save(ctx, items); err != nil {
		return item, err
	}
	return item, nil
}

// Update replaces the record with the given id, keeping its position.
func (c *Collection[T]) Update(ctx context.Context, id string, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.List(ctx)
	if err != nil {
		return item, err
	}
	i := IndexByID(items, id, c.getID)
	if i < 0 {
		return item, ErrNotFound
	}
	c.setID(&item, id)
	items[i] = item
	if err = c.save(ctx, items); err != nil {
		return item, err
	}
	return item, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	i := IndexByID(items, id, c.getID)
	if i < 0 {
		return ErrNotFound
	}
	return c.save(ctx, append(items[:i], items[i+1:]...))
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	return errors.Wrapf(c.store.Save(ctx, c.key, items), "saving %s", c.key)
}

// IndexByID returns the position of the record with the given id, or -1.
func IndexByID[T any](items []T, id string, getID func(T) string) int {
	for i, item := range items {
		if getID(item) == id {
			return i
		}
	}
	return -1
}

// LastN returns at most the n last items, in insertion order.
func LastN[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	return items[len(items)-n:]
}
