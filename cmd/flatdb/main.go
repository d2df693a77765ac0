// Package main is the entry point for the flatdb CLI.
//
// flatdb keeps named tables of schema-less rows in a single JSON document
// and exposes create/insert/read/select/update/delete operations against
// it. See internal/db for the data model and its id semantics.
package main

import (
	"os"

	"github.com/maloquacious/flatdb/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
