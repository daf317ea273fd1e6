package inmemkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_CopiesValues(t *testing.T) {
	ctx := context.Background()
	b := New()

	v := []byte(`{"a":1}`)
	require.NoError(t, b.Set(ctx, "k", v))
	v[2] = 'b'

	got, found, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"a":1}`, string(got))

	got[2] = 'c'
	again, _, _ := b.Get(ctx, "k")
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestBackend_Keys(t *testing.T) {
	ctx := context.Background()
	b := New()
	require.NoError(t, b.Set(ctx, "b", []byte("1")))
	require.NoError(t, b.Set(ctx, "a", []byte("2")))
	keys, err := b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, b.Delete(ctx, "a"))
	keys, _ = b.Keys(ctx)
	assert.Equal(t, []string{"b"}, keys)
}
