package cmd

import (
	"fmt"

	toml "github.com/djoezeke/mytoml"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check a TOML document for structural errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	path := args[0]
	_, err := toml.LoadFile(path)
	if err != nil {
		if pe, ok := err.(*toml.ParseError); ok && verbose {
			printError(path, fmt.Errorf("%s", pe.Human()))
		} else {
			printError(path, err)
		}
		return err
	}
	fmt.Printf("%s: ok\n", path)
	return nil
}
