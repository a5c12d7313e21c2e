package toml

import "strings"

// parseKeySegment consumes one key segment: a bare key, a basic-quoted key,
// or a literal-quoted key. Grounded on _mytoml_parser_parse_key.
func parseKeySegment(tok *tokenizer) (string, error) {
	switch {
	case isBasicStringStart(tok.cur):
		v, err := parseBasicString(tok, false)
		if err != nil {
			return "", err
		}
		s, _ := v.String()
		return s, nil
	case isLiteralStringStart(tok.cur):
		v, err := parseLiteralString(tok, false)
		if err != nil {
			return "", err
		}
		s, _ := v.String()
		return s, nil
	case isBareKeyChar(tok.cur):
		var out strings.Builder
		for tok.hasMore() && isBareKeyChar(tok.cur) {
			out.WriteByte(tok.cur)
			if out.Len() > tok.limits.MaxIdentifierLength {
				return "", lexicalErr(tok, "key exceeds max length %d", tok.limits.MaxIdentifierLength)
			}
			tok.advance()
		}
		if out.Len() == 0 {
			return "", lexicalErr(tok, "expected a key")
		}
		return out.String(), nil
	default:
		return "", grammarErr(tok, "expected a key, found %q", tok.cur)
	}
}

// parseDottedKey consumes a full dotted-key path: one or more segments
// joined by '.', with optional surrounding whitespace around each dot.
// Grounded on the dotted-key loop in _mytoml_parser_parse_statement.
func parseDottedKey(tok *tokenizer) ([]string, error) {
	var segments []string

	seg, err := parseKeySegment(tok)
	if err != nil {
		return nil, err
	}
	segments = append(segments, seg)

	for {
		tok.skipWhitespace()
		if !tok.hasMore() || !isDot(tok.cur) {
			return segments, nil
		}
		tok.advance()
		tok.skipWhitespace()
		seg, err := parseKeySegment(tok)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
}

// resolveDottedKey walks the Key chain named by segments under root,
// creating every segment that does not exist yet, applying leafKind to the
// final segment and intermediateKind to every segment before it. Dotted-key
// assignments use KindKey for the intermediate segments; table and array-table headers use KindTable for the
// intermediate segments so an intervening "[a.b]" header is recorded
// correctly even though "a" never got its own header. Mirrors how
// _mytoml_value_add_sub_key is driven for both statement shapes.
func resolveDottedKey(root *Key, tok *tokenizer, segments []string, intermediateKind, leafKind KeyKind) (*Key, error) {
	cur := root
	for i, seg := range segments {
		kind := intermediateKind
		if i == len(segments)-1 {
			kind = leafKind
		}
		next := newKey(kind)
		next.ID = seg
		placed, err := cur.addSubkey(next, tok)
		if err != nil {
			return nil, err
		}
		cur = placed
	}
	return cur, nil
}
