package toml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseBasicString(t *testing.T, src string, multi bool) *Value {
	tok := newTokenizer([]byte(src), "", DefaultLimits())
	v, err := parseBasicString(tok, multi)
	require.NoError(t, err)
	return v
}

func TestParseBasicStringSimple(t *testing.T) {
	v := mustParseBasicString(t, `"hello world"`, false)
	s, ok := v.String()
	require.True(t, ok)
	require.Equal(t, "hello world", s)
}

func TestParseBasicStringEscapes(t *testing.T) {
	v := mustParseBasicString(t, `"line\nbreak\ttab\"quote"`, false)
	s, _ := v.String()
	require.Equal(t, "line\nbreak\ttab\"quote", s)
}

func TestParseBasicStringUnicodeEscape(t *testing.T) {
	v := mustParseBasicString(t, `"\u00e9"`, false)
	s, _ := v.String()
	require.Equal(t, "é", s)
}

func TestParseBasicStringLongUnicodeEscape(t *testing.T) {
	v := mustParseBasicString(t, `"\U0001F600"`, false)
	s, _ := v.String()
	require.Equal(t, "😀", s)
}

func TestParseBasicStringRejectsBareNewline(t *testing.T) {
	tok := newTokenizer([]byte("\"abc\ndef\""), "", DefaultLimits())
	_, err := parseBasicString(tok, false)
	require.Error(t, err)
}

func TestParseBasicStringMultilineElidesLeadingNewline(t *testing.T) {
	v := mustParseBasicString(t, "\"\"\"\nabc\"\"\"", true)
	s, _ := v.String()
	require.Equal(t, "abc", s)
}

func TestParseBasicStringMultilineTrailingQuotesAreData(t *testing.T) {
	// Two quote characters immediately before the closing """ are kept as
	// data rather than being mistaken for (part of) the delimiter.
	src := `"""abc` + strings.Repeat(`"`, 5)
	v := mustParseBasicString(t, src, true)
	s, _ := v.String()
	require.Equal(t, `abc""`, s)
}

func TestParseBasicStringMultilineLineContinuation(t *testing.T) {
	v := mustParseBasicString(t, "\"\"\"abc\\\n   def\"\"\"", true)
	s, _ := v.String()
	require.Equal(t, "abcdef", s)
}

func TestParseLiteralStringNoEscapes(t *testing.T) {
	tok := newTokenizer([]byte(`'C:\Users\nodejs'`), "", DefaultLimits())
	v, err := parseLiteralString(tok, false)
	require.NoError(t, err)
	s, _ := v.String()
	require.Equal(t, `C:\Users\nodejs`, s)
}

func TestParseLiteralStringMultiline(t *testing.T) {
	tok := newTokenizer([]byte("'''\nline1\nline2'''"), "", DefaultLimits())
	v, err := parseLiteralString(tok, true)
	require.NoError(t, err)
	s, _ := v.String()
	require.Equal(t, "line1\nline2", s)
}
