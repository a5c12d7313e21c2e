package toml

// parseInlineTable consumes a TOML inline table literal. tok.cur is '{' on
// entry. Unlike arrays, inline tables forbid bare newlines between entries
// (only whitespace is permitted), matching the grammar's distinction
// between array-filler and inline-table-filler. Grounded on
// _mytoml_parser_parse_inline_table.
func parseInlineTable(tok *tokenizer) (*Value, error) {
	tok.advance() // consume '{'

	root := newKey(KindTable)

	tok.skipWhitespace()
	if tok.hasMore() && isInlineTableEnd(tok.cur) {
		tok.advance()
		return newInlineTableValue(root), nil
	}

	for {
		tok.skipWhitespace()
		segments, err := parseDottedKeyNoNewline(tok)
		if err != nil {
			return nil, err
		}
		tok.skipWhitespace()
		if !tok.hasMore() || !isEqual(tok.cur) {
			return nil, grammarErr(tok, "expected '=' in inline table")
		}
		tok.advance()
		tok.skipWhitespace()

		val, err := parseValue(tok, numberEndInlineTable)
		if err != nil {
			return nil, err
		}

		leaf, err := resolveDottedKey(root, tok, segments, KindKey, KindKeyLeaf)
		if err != nil {
			return nil, err
		}
		if leaf.Value != nil {
			return nil, semanticErr(tok, "cannot redefine %q in inline table", leaf.ID)
		}
		leaf.Value = val

		tok.skipWhitespace()
		if !tok.hasMore() {
			return nil, grammarErr(tok, "unterminated inline table")
		}
		if isInlineTableEnd(tok.cur) {
			tok.advance()
			return newInlineTableValue(root), nil
		}
		if !isComma(tok.cur) {
			return nil, grammarErr(tok, "expected ',' or '}' in inline table")
		}
		tok.advance()
	}
}

// parseDottedKeyNoNewline is parseDottedKey with a dedicated inline-table
// error when a newline stands where a key should start. parseDottedKey
// itself never skips across a newline either; it would only report a
// missing key there.
func parseDottedKeyNoNewline(tok *tokenizer) ([]string, error) {
	if tok.atNewline() {
		return nil, grammarErr(tok, "newline not allowed in inline table")
	}
	segments, err := parseDottedKey(tok)
	if err != nil {
		return nil, err
	}
	return segments, nil
}
