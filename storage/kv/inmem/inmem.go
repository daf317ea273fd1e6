package inmemkv

import (
	"context"
	"sort"
	"sync"
)

// Backend keeps documents in a map. Values are copied in and out.
type Backend struct {
	sync.RWMutex
	table map[string][]byte
}

func New() *Backend {
	return &Backend{table: make(map[string][]byte)}
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, bool, error) {
	b.RLock()
	defer b.RUnlock()
	v, ok := b.table[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.Lock()
	defer b.Unlock()
	b.table[key] = append([]byte(nil), value...)
	return nil
}

func (b *Backend) Delete(_ context.Context, key string) error {
	b.Lock()
	defer b.Unlock()
	delete(b.table, key)
	return nil
}

func (b *Backend) Keys(_ context.Context) ([]string, error) {
	b.RLock()
	defer b.RUnlock()
	keys := make([]string, 0, len(b.table))
	for k := range b.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *Backend) Close() error { return nil }
