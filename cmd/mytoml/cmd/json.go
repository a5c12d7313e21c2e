package cmd

import (
	"fmt"
	"os"

	toml "github.com/djoezeke/mytoml"
	"github.com/spf13/cobra"
)

var jsonIndent bool

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Convert a TOML document to typed JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runJSON,
}

func init() {
	jsonCmd.Flags().BoolVar(&jsonIndent, "indent", true, "pretty-print the output")
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	path := args[0]
	root, err := toml.LoadFile(path)
	if err != nil {
		printError(path, err)
		return err
	}

	var out []byte
	if jsonIndent {
		out, err = toml.DumpJSONIndent(root)
	} else {
		out, err = toml.DumpJSON(root)
	}
	if err != nil {
		printError(path, err)
		return err
	}

	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
