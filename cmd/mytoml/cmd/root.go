package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mytoml",
	Short: "Inspect and convert TOML documents",
	Long: `mytoml is a small toolbox around a TOML v1.0.0 parser.

Subcommands:
  lint     - check a document for structural errors
  json     - convert a document to typed JSON
  version  - print the build version`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print source context on error")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "mytoml: %s: %v\n", msg, err)
}
