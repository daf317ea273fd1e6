// Package kv implements core.Store on top of a pluggable byte-level backend.
package kv

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

// Backend persists raw JSON documents by key.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

type Store struct {
	backend Backend

	mu          sync.RWMutex
	subscribers map[int]func(core.StoreEvent)
	nextSubID   int
}

var (
	_ core.Store      = (*Store)(nil)
	_ core.Subscriber = (*Store)(nil)
)

func New(backend Backend) *Store {
	return &Store{
		backend:     backend,
		subscribers: make(map[int]func(core.StoreEvent)),
	}
}

// Load decodes the value stored under key into dst.
// A missing key leaves dst untouched and reports found=false.
func (s *Store) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, found, err := s.backend.Get(ctx, key)
	if err != nil {
		return false, errors.Wrapf(err, "getting %q", key)
	}
	if !found || len(raw) == 0 {
		return false, nil
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return true, errors.Wrapf(err, "decoding %q", key)
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding %q", key)
	}
	if err = s.backend.Set(ctx, key, raw); err != nil {
		return errors.Wrapf(err, "setting %q", key)
	}
	s.publish(core.StoreEvent{Key: key, Op: core.StoreOpSave})
	return nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "deleting %q", key)
	}
	s.publish(core.StoreEvent{Key: key, Op: core.StoreOpRemove})
	return nil
}

// Raw returns the stored JSON document, for exports.
func (s *Store) Raw(ctx context.Context, key string) (json.RawMessage, bool, error) {
	raw, found, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, false, errors.Wrapf(err, "getting %q", key)
	}
	return raw, found, nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.backend.Keys(ctx)
	return keys, errors.Wrap(err, "listing keys")
}

// Subscribe registers fn for every write. Callbacks run synchronously and must not block.
func (s *Store) Subscribe(fn func(core.StoreEvent)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(ev core.StoreEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fn := range s.subscribers {
		fn(ev)
	}
}

func (s *Store) Close() error {
	return s.backend.Close()
}
