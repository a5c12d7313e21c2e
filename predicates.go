package toml

// Character classification predicates, restated from the original
// tokenizer's _mytoml_is_* family as plain byte predicates.

func isWhitespace(c byte) bool { return c == ' ' || c == '\t' }
func isNewline(c byte) bool    { return c == '\n' }
func isReturn(c byte) bool     { return c == '\r' }
func isCommentStart(c byte) bool { return c == '#' }
func isEqual(c byte) bool        { return c == '=' }
func isEscape(c byte) bool       { return c == '\\' }
func isDot(c byte) bool          { return c == '.' }
func isComma(c byte) bool        { return c == ',' }

func isBasicStringStart(c byte) bool   { return c == '"' }
func isLiteralStringStart(c byte) bool { return c == '\'' }

func isTableStart(c byte) bool { return c == '[' }
func isTableEnd(c byte) bool   { return c == ']' }

func isInlineTableStart(c byte) bool { return c == '{' }
func isInlineTableEnd(c byte) bool   { return c == '}' }

func isArrayStart(c byte) bool { return c == '[' }
func isArrayEnd(c byte) bool   { return c == ']' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }

func isNumberStart(c byte) bool {
	return c == '+' || c == '-' || isDigit(c)
}

func isUnderscore(c byte) bool     { return c == '_' }
func isDecimalPoint(c byte) bool   { return c == '.' }

func isBareKeyChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
		isDigit(c) || c == '_' || c == '-'
}

// isControl matches control characters forbidden, unescaped, inside a
// single-line basic string: 0x00-0x08, 0x0A-0x1F, 0x7F. Only 0x09 (tab) is
// permitted bare.
func isControl(c byte) bool {
	return (c <= 0x08) || (c >= 0x0A && c <= 0x1F) || c == 0x7F
}

// isControlMulti is the multi-line basic string variant: additionally
// allows bare 0x0A/0x0D (newlines are data there) but still forbids 0x0B,
// 0x0C and the rest of the control range.
func isControlMulti(c byte) bool {
	return (c <= 0x08) || c == 0x0B || c == 0x0C || (c >= 0x0E && c <= 0x1F) || c == 0x7F
}

// isControlLiteral matches control characters forbidden in literal
// strings: everything below 0x20 except tab (0x09) and newline (0x0A), plus 0x7F.
func isControlLiteral(c byte) bool {
	return ((c != 0x09) && (c != 0x0A) && c <= 0x1F) || c == 0x7F
}

// isNumberEnd reports whether c belongs to the given number-end set, a
// context-dependent set of characters that terminate a numeric or datetime
// literal ("# \n" at statement scope, "#,] \n" inside arrays, ", }" inside
// inline tables).
func isNumberEnd(c byte, end string) bool {
	for i := 0; i < len(end); i++ {
		if c == end[i] {
			return true
		}
	}
	return false
}

const (
	numberEndStatement   = "#\n \t"
	numberEndArray       = "#,]\n \t"
	numberEndInlineTable = ",} \t"
)

// isLeapYear applies the Gregorian leap-year rule.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isValidDate reports whether year-month-day is a real calendar date.
func isValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	max := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		max = 29
	}
	return day <= max
}
