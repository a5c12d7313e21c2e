// Command mytomljson reads a TOML document and converts it to the
// BurntSushi typed-JSON representation.
//
// Usage:
//
//	cat file.toml | mytomljson > file.json
//	mytomljson file.toml > file.json
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	toml "github.com/djoezeke/mytoml"
)

func main() {
	indent := flag.Bool("indent", false, "pretty-print the JSON output")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `mytomljson can be used in two ways:
Reading from stdin:
  cat file.toml | mytomljson > file.json

Reading from a file:
  mytomljson file.toml > file.json
`)
	}
	flag.Parse()
	os.Exit(run(flag.Args(), *indent, os.Stdin, os.Stdout, os.Stderr))
}

func run(files []string, indent bool, stdin io.Reader, stdout, stderr io.Writer) int {
	var input io.Reader = stdin
	if len(files) > 0 {
		f, err := os.Open(files[0])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		input = f
	}

	root, err := toml.LoadReader(input)
	if err != nil {
		if pe, ok := err.(*toml.ParseError); ok {
			fmt.Fprintln(stderr, pe.Human())
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	var out []byte
	if indent {
		out, err = toml.DumpJSONIndent(root)
	} else {
		out, err = toml.DumpJSON(root)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, string(out))
	return 0
}
