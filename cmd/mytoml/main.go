// Command mytoml is a multi-subcommand CLI over the mytoml parser: lint a
// document for structural errors, dump it as typed JSON, or print the
// build version.
package main

import (
	"os"

	"github.com/djoezeke/mytoml/cmd/mytoml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
