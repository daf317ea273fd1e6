// Package pgkv is a PostgreSQL key-value backend: one JSONB row per key.
package pgkv

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

const (
	getQuery    = `SELECT value FROM kv_store WHERE key = $1`
	upsertQuery = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	deleteQuery = `DELETE FROM kv_store WHERE key = $1`
	keysQuery   = `SELECT key FROM kv_store ORDER BY key`
)

type Backend struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.GetContext(ctx, &value, getQuery, key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	// jsonb parameters must be sent as text
	_, err := b.db.ExecContext(ctx, upsertQuery, key, string(value))
	return err
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, deleteQuery, key)
	return err
}

func (b *Backend) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0, 8)
	if err := b.db.SelectContext(ctx, &keys, keysQuery); err != nil {
		return nil, err
	}
	return keys, nil
}

func (b *Backend) Close() error {
	return b.db.Close()
}
