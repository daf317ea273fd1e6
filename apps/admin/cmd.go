package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/Ok1nam/demo-edp-final/storage/kv"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store *kv.Store
	db    *sqlx.DB // nil unless the postgres engine is configured
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  hashpassword               - hash a demo account password for DEMO_ACCOUNTS")
	fmt.Println("  migrate COMMAND [ARGS]     - run a goose command against the postgres store")
	fmt.Println("  export -out FILE           - export every tool's data to an xlsx workbook")
	fmt.Println("  reset -key KEY|all         - remove stored data")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportOut := exportCmd.String("out", "", "The xlsx file to write.")

	resetCmd := flag.NewFlagSet("reset", flag.ContinueOnError)
	resetKey := resetCmd.String("key", "", "The store key to remove, or \"all\".")

	switch args[1] {
	case "hashpassword":
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(string(pwd))

	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportOut)

	case "reset":
		if err := resetCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetKey == "" {
			resetCmd.Usage()
			return errHelp
		}
		return cli.reset(*resetKey)

	default:
		cli.printUsage()
		return errHelp
	}
}
