package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/dashboard"
	docsvc "github.com/Ok1nam/demo-edp-final/services/document"
)

const resetAll = "all"

func (cli *commandLine) export(out string) error {
	ctx := context.Background()
	in, err := dashboard.NewService(cli.store).LoadInputs(ctx)
	if err != nil {
		return err
	}
	f, err := docsvc.Export(in)
	if err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		_ = f.Close()
		return errors.Wrap(err, "creating export file")
	}
	if err = docsvc.WriteXLSX(w, f); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (cli *commandLine) reset(key string) error {
	ctx := context.Background()
	keys := []string{key}
	if key == resetAll {
		keys = core.StoreKeys
	} else if !isStoreKey(key) {
		return errors.Errorf("unknown key %q", key)
	}

	for _, k := range keys {
		if err := cli.store.Remove(ctx, k); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", k)
	}
	return nil
}

func isStoreKey(key string) bool {
	for _, k := range core.StoreKeys {
		if k == key {
			return true
		}
	}
	return false
}
