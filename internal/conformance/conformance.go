// Package conformance runs the mytoml decode-and-dump path against a small
// embedded corpus of TOML fixtures and their expected BurntSushi typed-JSON
// encoding. It exercises exactly the stdin-to-stdout behavior that
// cmd/mytomltest exposes as a toml-test decoder subject. The full upstream
// corpus is not run here; it needs the github.com/BurntSushi/toml-test CLI
// run externally against the built mytomltest binary.
package conformance

import (
	"encoding/json"
	"fmt"

	toml "github.com/djoezeke/mytoml"
)

// Case is one fixture: a TOML document and the typed-JSON document it must
// decode to.
type Case struct {
	Name         string
	TOML         string
	WantJSON     string
	WantRejected bool
}

// Run decodes c.TOML and compares the result against c.WantJSON (as
// parsed JSON values, so key order and formatting don't matter), or
// asserts that decoding fails when c.WantRejected is set.
func Run(c Case) error {
	root, err := toml.LoadString(c.TOML)
	if c.WantRejected {
		if err == nil {
			return fmt.Errorf("%s: expected rejection, decoded successfully", c.Name)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: unexpected error: %w", c.Name, err)
	}

	got, err := toml.DumpJSON(root)
	if err != nil {
		return fmt.Errorf("%s: dump failed: %w", c.Name, err)
	}

	var gotVal, wantVal interface{}
	if err := json.Unmarshal(got, &gotVal); err != nil {
		return fmt.Errorf("%s: produced invalid JSON: %w", c.Name, err)
	}
	if err := json.Unmarshal([]byte(c.WantJSON), &wantVal); err != nil {
		return fmt.Errorf("%s: fixture has invalid want JSON: %w", c.Name, err)
	}

	gotCanon, _ := json.Marshal(gotVal)
	wantCanon, _ := json.Marshal(wantVal)
	if string(gotCanon) != string(wantCanon) {
		return fmt.Errorf("%s: JSON mismatch\n got:  %s\n want: %s", c.Name, gotCanon, wantCanon)
	}
	return nil
}

// Cases is the embedded fixture corpus, shaped after the upstream
// toml-test valid/invalid split.
var Cases = []Case{
	{
		Name:     "valid/string-simple",
		TOML:     `str = "hello"`,
		WantJSON: `{"str":{"type":"string","value":"hello"}}`,
	},
	{
		Name:     "valid/integer-underscore",
		TOML:     `n = 1_000`,
		WantJSON: `{"n":{"type":"integer","value":"1000"}}`,
	},
	{
		Name:     "valid/float-exponent",
		TOML:     `n = 1e10`,
		WantJSON: `{"n":{"type":"float","value":"1e+10"}}`,
	},
	{
		Name:     "valid/bool",
		TOML:     "t = true\nf = false\n",
		WantJSON: `{"t":{"type":"bool","value":"true"},"f":{"type":"bool","value":"false"}}`,
	},
	{
		Name:     "valid/array-of-tables",
		TOML:     "[[a]]\nx = 1\n[[a]]\nx = 2\n",
		WantJSON: `{"a":[{"x":{"type":"integer","value":"1"}},{"x":{"type":"integer","value":"2"}}]}`,
	},
	{
		Name:         "invalid/duplicate-key",
		TOML:         "a = 1\na = 2\n",
		WantRejected: true,
	},
	{
		Name:         "invalid/leading-zero",
		TOML:         "n = 007",
		WantRejected: true,
	},
	{
		Name:         "invalid/bad-calendar-date",
		TOML:         "d = 1979-02-30",
		WantRejected: true,
	},
}
