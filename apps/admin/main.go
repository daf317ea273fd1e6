package main

import (
	"context"
	"log"
	"os"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/storage/kv"
	"github.com/Ok1nam/demo-edp-final/storage/kv/pgkv"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	// set up store
	store, err := kv.Open(context.Background(), conf.Storage)
	errAndDie(err)
	defer store.Close()

	cli := commandLine{store: store}
	if conf.Storage.Engine == kv.EnginePostgres {
		db, err := pgkv.Open(conf.Storage.Database)
		errAndDie(err)
		defer db.Close()
		cli.db = db
	}

	// start CLI
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		store.Close()
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
