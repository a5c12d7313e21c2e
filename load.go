package toml

import (
	"io"
	"os"
)

// LoadFile reads and parses path with the default limits.
func LoadFile(path string) (*Key, error) {
	return LoadFileLimits(path, DefaultLimits())
}

// LoadFileLimits reads and parses path, enforcing the given limits.
func LoadFileLimits(path string, limits Limits) (*Key, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := parseDocument(buf, path, limits)
	if err != nil {
		return nil, withFile(err, path, buf)
	}
	return root, nil
}

// LoadReader parses everything read from r with the default limits.
func LoadReader(r io.Reader) (*Key, error) {
	return LoadReaderLimits(r, DefaultLimits())
}

// LoadReaderLimits parses everything read from r, enforcing the given
// limits. Limits.MaxFileSize bounds the read itself, not just the parse,
// so a hostile unbounded stream cannot exhaust memory before parsing even
// starts.
func LoadReaderLimits(r io.Reader, limits Limits) (*Key, error) {
	cap := limits.MaxFileSize
	if cap <= 0 {
		cap = defaultMaxFileSize
	}
	buf, err := io.ReadAll(io.LimitReader(r, cap+1))
	if err != nil {
		return nil, err
	}
	if int64(len(buf)) > cap {
		return nil, withFile(newParseError("", Position{}, ErrLexical, "input exceeds max size %d", cap), "", buf)
	}
	root, err := parseDocument(buf, "", limits)
	if err != nil {
		return nil, withFile(err, "", buf)
	}
	return root, nil
}

// LoadString parses a TOML document already held in memory as a string,
// with the default limits.
func LoadString(doc string) (*Key, error) {
	return LoadBytes([]byte(doc))
}

// LoadBytes parses a TOML document already held in memory, with the
// default limits.
func LoadBytes(doc []byte) (*Key, error) {
	return LoadBytesLimits(doc, DefaultLimits())
}

// LoadBytesLimits parses doc, enforcing the given limits.
func LoadBytesLimits(doc []byte, limits Limits) (*Key, error) {
	root, err := parseDocument(doc, "", limits)
	if err != nil {
		return nil, withFile(err, "", doc)
	}
	return root, nil
}
