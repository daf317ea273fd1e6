package pgkv

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
)

func setup(t *testing.T) *Backend {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := OpenURL(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, "up"))
	_, err = db.Exec("TRUNCATE kv_store")
	require.NoError(t, err)

	b := New(db)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBackend(t *testing.T) {
	ctx := context.Background()
	b := setup(t)

	_, found, err := b.Get(ctx, "partnerships_data")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.Set(ctx, "partnerships_data", []byte(`[{"id":"a"}]`)))
	require.NoError(t, b.Set(ctx, "partnerships_data", []byte(`[{"id":"a"},{"id":"b"}]`)))
	v, found, err := b.Get(ctx, "partnerships_data")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"a"},{"id":"b"}]`, string(v))

	keys, err := b.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"partnerships_data"}, keys)

	require.NoError(t, b.Delete(ctx, "partnerships_data"))
	_, found, err = b.Get(ctx, "partnerships_data")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDataSourceName(t *testing.T) {
	conf := core.DatabaseConfig{
		Engine:        "postgres",
		Host:          "db",
		Port:          "5432",
		Name:          "edp",
		User:          "edp",
		Password:      "secret",
		AdminUser:     "postgres",
		AdminPassword: "root",
		DisableTLS:    true,
	}
	assert.Equal(t, "postgres://edp:secret@db:5432/edp?sslmode=disable&timezone=utc", dataSourceName("edp", false, conf))
	assert.Equal(t, "postgres://postgres:root@db:5432/postgres?sslmode=disable&timezone=utc", dataSourceName("postgres", true, conf))

	conf.DisableTLS = false
	assert.Contains(t, dataSourceName("edp", false, conf), "sslmode=require")
}
