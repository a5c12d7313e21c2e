// Command mytomltest is a toml-test decoder subject: it reads a TOML
// document from stdin and writes the BurntSushi typed-JSON representation
// to stdout, exiting non-zero on any parse failure. It implements the
// same stdin/stdout/exit-code protocol that github.com/BurntSushi/toml-test
// drives against decoder binaries, built directly on the library's own
// LoadReader/DumpJSON so it exercises exactly what real callers exercise.
package main

import (
	"io"
	"os"

	toml "github.com/djoezeke/mytoml"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	root, err := toml.LoadReader(stdin)
	if err != nil {
		io.WriteString(stderr, err.Error()+"\n")
		return 1
	}
	out, err := toml.DumpJSON(root)
	if err != nil {
		io.WriteString(stderr, err.Error()+"\n")
		return 1
	}
	if _, err := stdout.Write(out); err != nil {
		return 1
	}
	return 0
}
