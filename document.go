package toml

// parseDocument runs the full top-level statement loop over buf: table
// headers, array-table headers, and dotted-key assignments, each followed
// by an end-of-line comment and/or newline. Mirrors the statement
// dispatch loop in _mytoml_parser_parse.
func parseDocument(buf []byte, file string, limits Limits) (*Key, error) {
	if limits.MaxFileSize > 0 && int64(len(buf)) > limits.MaxFileSize {
		return nil, newParseError(file, Position{}, ErrLexical, "file exceeds max size %d", limits.MaxFileSize)
	}

	tok := newTokenizer(buf, file, limits)
	root := newRoot()
	current := root

	for {
		if err := skipStatementFiller(tok); err != nil {
			return nil, err
		}
		if !tok.hasMore() {
			break
		}
		if tok.line > tok.limits.MaxLines {
			return nil, lexicalErr(tok, "document exceeds max line count %d", tok.limits.MaxLines)
		}

		switch {
		case isTableStart(tok.cur):
			next, err := parseHeader(tok, root)
			if err != nil {
				return nil, err
			}
			current = next
		default:
			if err := parseAssignment(tok, current); err != nil {
				return nil, err
			}
		}

		if err := expectLineEnd(tok); err != nil {
			return nil, err
		}
	}

	return root, nil
}

// skipStatementFiller consumes blank lines, leading/trailing whitespace,
// and whole-line comments between statements.
func skipStatementFiller(tok *tokenizer) error {
	for tok.hasMore() {
		switch {
		case isWhitespace(tok.cur):
			tok.advance()
		case tok.atNewline():
			if err := tok.consumeNewline(); err != nil {
				return err
			}
		case isCommentStart(tok.cur):
			if err := skipComment(tok); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func skipComment(tok *tokenizer) error {
	for tok.hasMore() && !isNewline(tok.cur) {
		if isControl(tok.cur) && tok.cur != '\t' {
			return lexicalErr(tok, "control character not allowed in comment")
		}
		tok.advance()
	}
	return nil
}

// expectLineEnd consumes trailing whitespace and an optional comment, then
// requires either a newline or end of input.
func expectLineEnd(tok *tokenizer) error {
	tok.skipWhitespace()
	if tok.hasMore() && isCommentStart(tok.cur) {
		if err := skipComment(tok); err != nil {
			return err
		}
	}
	if !tok.hasMore() {
		return nil
	}
	if !tok.atNewline() {
		return grammarErr(tok, "expected newline after statement, found %q", tok.cur)
	}
	return tok.consumeNewline()
}

// parseHeader consumes a "[name]" or "[[name]]" header and returns the Key
// that subsequent assignments should attach to.
func parseHeader(tok *tokenizer, root *Key) (*Key, error) {
	array := tok.peekAt(1) == '['
	tok.advance()
	if array {
		tok.advance()
	}
	tok.skipWhitespace()

	segments, err := parseDottedKey(tok)
	if err != nil {
		return nil, err
	}

	tok.skipWhitespace()
	if !tok.hasMore() || !isTableEnd(tok.cur) {
		return nil, grammarErr(tok, "expected ']' to close table header")
	}
	tok.advance()
	if array {
		if !tok.hasMore() || !isTableEnd(tok.cur) {
			return nil, grammarErr(tok, "expected ']]' to close array-table header")
		}
		tok.advance()
	}

	leafKind := KindTableLeaf
	if array {
		leafKind = KindArrayTable
	}
	leaf, err := resolveDottedKey(root, tok, segments, KindTable, leafKind)
	if err != nil {
		return nil, err
	}
	if array {
		if err := leaf.openArrayTableEntry(tok); err != nil {
			return nil, err
		}
		return leaf.currentEntry(tok)
	}
	return leaf, nil
}

// parseAssignment consumes a "dotted.key = value" statement and installs
// the value under current.
func parseAssignment(tok *tokenizer, current *Key) error {
	segments, err := parseDottedKey(tok)
	if err != nil {
		return err
	}
	tok.skipWhitespace()
	if !tok.hasMore() || !isEqual(tok.cur) {
		return grammarErr(tok, "expected '=' after key")
	}
	tok.advance()
	tok.skipWhitespace()

	val, err := parseValue(tok, numberEndStatement)
	if err != nil {
		return err
	}

	leaf, err := resolveDottedKey(current, tok, segments, KindKey, KindKeyLeaf)
	if err != nil {
		return err
	}
	if leaf.Value != nil {
		return semanticErr(tok, "cannot redefine %q", leaf.ID)
	}
	leaf.Value = val
	return nil
}
