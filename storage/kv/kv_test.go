package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStore_LoadSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	var got []record
	found, err := s.Load(ctx, core.KeyPartnerships, &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)

	want := []record{{ID: "1", Name: "Atelier"}, {ID: "2", Name: "Garage"}}
	require.NoError(t, s.Save(ctx, core.KeyPartnerships, want))

	found, err = s.Load(ctx, core.KeyPartnerships, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{core.KeyPartnerships}, keys)

	require.NoError(t, s.Remove(ctx, core.KeyPartnerships))
	found, err = s.Load(ctx, core.KeyPartnerships, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_LoadCorrupted(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	require.NoError(t, s.backend.Set(ctx, core.KeyLocations, []byte("{not json")))

	var got []record
	_, err := s.Load(ctx, core.KeyLocations, &got)
	assert.Error(t, err)
}

func TestStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	var events []core.StoreEvent
	unsubscribe := s.Subscribe(func(ev core.StoreEvent) { events = append(events, ev) })

	require.NoError(t, s.Save(ctx, core.KeyRentability, map[string]int{"students": 20}))
	require.NoError(t, s.Remove(ctx, core.KeyRentability))
	unsubscribe()
	require.NoError(t, s.Save(ctx, core.KeyRentability, map[string]int{"students": 10}))

	assert.Equal(t, []core.StoreEvent{
		{Key: core.KeyRentability, Op: core.StoreOpSave},
		{Key: core.KeyRentability, Op: core.StoreOpRemove},
	}, events)
}

func TestOpen(t *testing.T) {
	s, err := Open(context.Background(), core.StorageConfig{Engine: EngineMemory})
	require.NoError(t, err)
	assert.NoError(t, s.Close())

	_, err = Open(context.Background(), core.StorageConfig{Engine: "sqlite"})
	assert.EqualError(t, err, `unknown storage engine "sqlite"`)
}
