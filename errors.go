package toml

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel error kinds callers can match with errors.Is. They classify the
// taxonomy from the error handling design: lexical, grammatical and
// semantic failures all wrap one of these.
var (
	ErrLexical     = errors.New("lexical error")
	ErrGrammatical = errors.New("grammatical error")
	ErrSemantic    = errors.New("semantic error")
)

// ParseError is returned by every parsing entry point. It carries the file
// identifier and the tokenizer position where parsing gave up, plus a short
// diagnostic, matching the error handling design's "single diagnostic line
// referencing file, line, and column plus a short description".
type ParseError struct {
	File     string
	Pos      Position
	Message string
	kind     error // one of ErrLexical, ErrGrammatical, ErrSemantic
	human    string
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<string>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", file, e.Pos.Line, e.Pos.Col, e.Message)
}

// Unwrap lets callers do errors.Is(err, toml.ErrGrammatical) and friends.
func (e *ParseError) Unwrap() error {
	return e.kind
}

// Human returns a multi-line, source-annotated rendering of the error,
// suitable for terminal output.
func (e *ParseError) Human() string {
	return e.human
}

// Position returns the 1-indexed line/column where parsing failed.
func (e *ParseError) Position() Position {
	return e.Pos
}

func newParseError(file string, pos Position, kind error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		File:    file,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		kind:    kind,
	}
}

func lexicalErr(tok *tokenizer, format string, args ...interface{}) *ParseError {
	return newParseError("", tok.position(), ErrLexical, format, args...)
}

func grammarErr(tok *tokenizer, format string, args ...interface{}) *ParseError {
	return newParseError("", tok.position(), ErrGrammatical, format, args...)
}

func semanticErr(tok *tokenizer, format string, args ...interface{}) *ParseError {
	return newParseError("", tok.position(), ErrSemantic, format, args...)
}

// withFile stamps the originating source's identifier onto a ParseError,
// and attaches a source-context rendering when the raw document is known.
func withFile(err error, file string, source []byte) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	pe.File = file
	pe.human = renderContext(source, pe.Pos, pe.Message)
	return pe
}

// renderContext builds a short multi-line view of the three lines around
// pos, with a caret under the failing column. It is best-effort: a position
// past the end of the document just yields the plain message.
func renderContext(source []byte, pos Position, message string) string {
	if pos.Invalid() || len(source) == 0 {
		return message
	}

	lines := strings.Split(string(source), "\n")
	if pos.Line-1 >= len(lines) {
		return message
	}

	width := len(strconv.Itoa(pos.Line + 1))

	var buf strings.Builder
	for i := pos.Line - 2; i <= pos.Line; i++ {
		if i < 0 || i >= len(lines) {
			continue
		}
		fmt.Fprintf(&buf, "%*d | %s\n", width, i+1, lines[i])
	}
	buf.WriteString(strings.Repeat(" ", width))
	buf.WriteString(" | ")
	if pos.Col > 1 {
		buf.WriteString(strings.Repeat(" ", pos.Col-1))
	}
	buf.WriteString("^ ")
	buf.WriteString(message)
	return buf.String()
}
