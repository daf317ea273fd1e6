package kv

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
	inmemkv "github.com/Ok1nam/demo-edp-final/storage/kv/inmem"
	"github.com/Ok1nam/demo-edp-final/storage/kv/pgkv"
	"github.com/Ok1nam/demo-edp-final/storage/kv/rediskv"
)

const (
	EngineMemory   = "memory"
	EngineRedis    = "redis"
	EnginePostgres = "postgres"
)

// Open builds the Store selected by conf.Engine.
// The postgres engine creates the database if needed and applies migrations.
func Open(ctx context.Context, conf core.StorageConfig) (*Store, error) {
	switch conf.Engine {
	case "", EngineMemory:
		return New(inmemkv.New()), nil

	case EngineRedis:
		backend, err := rediskv.Open(ctx, conf.Redis)
		if err != nil {
			return nil, errors.Wrap(err, "opening redis store")
		}
		return New(backend), nil

	case EnginePostgres:
		if err := pgkv.CreateIfNotExist(conf.Database); err != nil {
			return nil, errors.Wrap(err, "creating database")
		}
		db, err := pgkv.Open(conf.Database)
		if err != nil {
			return nil, errors.Wrap(err, "opening postgres store")
		}
		if err = pgkv.Migrate(ctx, db, "up"); err != nil {
			_ = db.Close()
			return nil, err
		}
		return New(pgkv.New(db)), nil
	}
	return nil, errors.Errorf("unknown storage engine %q", conf.Engine)
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Store {
	return New(inmemkv.New())
}
