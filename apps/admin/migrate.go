package main

import (
	"context"
	"errors"

	"github.com/Ok1nam/demo-edp-final/storage/kv/pgkv"
)

var (
	gooseRunFunc = pgkv.Migrate // mockable

	errNoDatabase = errors.New("migrate requires the postgres storage engine")
)

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	return gooseRunFunc(context.Background(), cli.db, args[0], args[1:]...)
}
