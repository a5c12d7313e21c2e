package toml

// parseArray consumes a TOML array literal. tok.cur is '[' on entry.
// Whitespace, newlines, and comments are all permitted between elements,
// and a trailing comma before ']' is allowed. Grounded on
// _mytoml_parser_parse_array.
func parseArray(tok *tokenizer) (*Value, error) {
	tok.advance() // consume '['

	arr := newArrayValue()

	for {
		if err := skipArrayFiller(tok); err != nil {
			return nil, err
		}
		if !tok.hasMore() {
			return nil, grammarErr(tok, "unterminated array")
		}
		if isArrayEnd(tok.cur) {
			tok.advance()
			return arr, nil
		}

		elem, err := parseValue(tok, numberEndArray)
		if err != nil {
			return nil, err
		}
		if len(arr.elems) >= tok.limits.MaxArrayLength {
			return nil, lexicalErr(tok, "array exceeds max length %d", tok.limits.MaxArrayLength)
		}
		arr.elems = append(arr.elems, elem)

		if err := skipArrayFiller(tok); err != nil {
			return nil, err
		}
		if !tok.hasMore() {
			return nil, grammarErr(tok, "unterminated array")
		}
		if isArrayEnd(tok.cur) {
			tok.advance()
			return arr, nil
		}
		if !isComma(tok.cur) {
			return nil, grammarErr(tok, "expected ',' or ']' in array")
		}
		tok.advance()
	}
}

// skipArrayFiller consumes any mixture of whitespace, newlines, and
// comments that TOML permits between array elements.
func skipArrayFiller(tok *tokenizer) error {
	for tok.hasMore() {
		switch {
		case isWhitespace(tok.cur):
			tok.advance()
		case tok.atNewline():
			if err := tok.consumeNewline(); err != nil {
				return err
			}
		case isCommentStart(tok.cur):
			for tok.hasMore() && !isNewline(tok.cur) {
				tok.advance()
			}
		default:
			return nil
		}
	}
	return nil
}
