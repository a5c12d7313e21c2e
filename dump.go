package toml

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// DumpJSON serializes root as BurntSushi-style typed JSON: every scalar is
// wrapped as {"type": "...", "value": "..."}, tables and inline tables
// become JSON objects, and TOML arrays become JSON arrays of the same
// wrapped shape. Grounded on the teacher's cmd/tomljson output convention
// and mytoml.c's dump routines, built on bytes.Buffer rather than a
// hand-rolled growable string.
func DumpJSON(root *Key) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeKeyObject(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DumpJSONIndent is DumpJSON with two-space indentation applied to the
// result via a second pass, mirroring how the teacher's CLI offers both a
// compact and a pretty output mode.
func DumpJSONIndent(root *Key) ([]byte, error) {
	compact, err := DumpJSON(root)
	if err != nil {
		return nil, err
	}
	var pretty bytes.Buffer
	if err := indentJSON(&pretty, compact); err != nil {
		return nil, err
	}
	return pretty.Bytes(), nil
}

func writeKeyObject(buf *bytes.Buffer, k *Key) error {
	buf.WriteByte('{')
	names := sortedChildNames(k)
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, name)
		buf.WriteByte(':')
		if err := writeChild(buf, k.Children[name]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeChild(buf *bytes.Buffer, k *Key) error {
	switch k.Kind {
	case KindKeyLeaf, KindTableLeaf:
		if k.Value != nil {
			return writeValue(buf, k.Value)
		}
		return writeKeyObject(buf, k)
	case KindArrayTable:
		buf.WriteByte('[')
		elems, _ := k.Value.Array()
		for i, elem := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			entry, _ := elem.Table()
			if err := writeKeyObject(buf, entry); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default: // KindKey, KindTable: intermediate node, recurse
		return writeKeyObject(buf, k)
	}
}

func writeValue(buf *bytes.Buffer, v *Value) error {
	switch v.Kind {
	case KindString:
		s, _ := v.String()
		return writeTyped(buf, "string", jsonQuoted(s))
	case KindInteger:
		n, _ := v.Float64()
		return writeTyped(buf, "integer", jsonQuoted(strconv.FormatInt(int64(n), 10)))
	case KindFloat:
		n, _ := v.Float64()
		precision, scientific := v.FloatFormat()
		return writeTyped(buf, "float", jsonQuoted(formatTOMLFloat(n, precision, scientific)))
	case KindBoolean:
		b, _ := v.Bool()
		return writeTyped(buf, "bool", jsonQuoted(strconv.FormatBool(b)))
	case KindOffsetDatetime, KindLocalDatetime, KindLocalDate, KindLocalTime:
		dt, _ := v.Datetime()
		return writeTyped(buf, v.Kind.String(), jsonQuoted(formatDatetime(dt)))
	case KindArray:
		buf.WriteByte('[')
		elems, _ := v.Array()
		for i, elem := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindInlineTable:
		tbl, _ := v.Table()
		return writeKeyObject(buf, tbl)
	default:
		return fmt.Errorf("toml: cannot serialize value of kind %v", v.Kind)
	}
}

func writeTyped(buf *bytes.Buffer, typ, value string) error {
	buf.WriteString(`{"type":"`)
	buf.WriteString(typ)
	buf.WriteString(`","value":`)
	buf.WriteString(value)
	buf.WriteByte('}')
	return nil
}

func jsonQuoted(s string) string {
	var b bytes.Buffer
	writeJSONString(&b, s)
	return b.String()
}

func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

// formatTOMLFloat renders a float the way mytoml.c's dump routine does:
// nan/inf get their bare TOML spellings, zero is special-cased to "0.0"
// (or "-0.0"), scientific literals round-trip through Go's shortest 'e'
// form, and everything else uses a fixed-point rendering at the stored
// precision so `f = 3.14` keeps exactly two digits after the point.
func formatTOMLFloat(n float64, precision int, scientific bool) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case n == 0:
		if math.Signbit(n) {
			return "-0.0"
		}
		return "0.0"
	case scientific:
		return strconv.FormatFloat(n, 'e', -1, 64)
	default:
		if precision < 1 {
			precision = 1
		}
		return strconv.FormatFloat(n, 'f', precision, 64)
	}
}

func formatDatetime(dt DateTime) string {
	switch dt.Kind {
	case LocalDate:
		return fmt.Sprintf("%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
	case LocalTime:
		return formatClock(dt)
	default:
		return fmt.Sprintf("%04d-%02d-%02dT%s", dt.Year, dt.Month, dt.Day, formatClock(dt))
	}
}

func formatClock(dt DateTime) string {
	s := fmt.Sprintf("%02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	if dt.SubsecondDigits > 0 {
		frac := fmt.Sprintf("%09d", dt.Nanosecond)[:dt.SubsecondDigits]
		s += "." + frac
	}
	if dt.HasOffset {
		if dt.OffsetHour == 0 && dt.OffsetMinute == 0 && dt.Format != "" && dt.Format[len(dt.Format)-1] == 'Z' {
			s += "Z"
		} else {
			sign := "+"
			h := dt.OffsetHour
			if h < 0 {
				sign = "-"
				h = -h
			}
			s += fmt.Sprintf("%s%02d:%02d", sign, h, dt.OffsetMinute)
		}
	}
	return s
}

// sortedChildNames returns k's direct child names in a deterministic
// order. TOML itself makes no ordering guarantee between sibling keys;
// sorting here only keeps serialized output and test fixtures
// reproducible, it is not a claim about source ordering.
func sortedChildNames(k *Key) []string {
	names := make([]string, 0, len(k.Children))
	for name := range k.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// indentJSON re-indents already-valid compact JSON with two-space steps.
// A small hand-rolled pass is enough here since the input is always our
// own writer's output, never untrusted JSON.
func indentJSON(dst *bytes.Buffer, src []byte) error {
	depth := 0
	inString := false
	escaped := false
	newline := func() {
		dst.WriteByte('\n')
		for i := 0; i < depth; i++ {
			dst.WriteString("  ")
		}
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		if inString {
			dst.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			dst.WriteByte(c)
		case '{', '[':
			dst.WriteByte(c)
			if i+1 < len(src) && (src[i+1] == '}' || src[i+1] == ']') {
				i++
				dst.WriteByte(src[i])
				continue
			}
			depth++
			newline()
		case '}', ']':
			depth--
			newline()
			dst.WriteByte(c)
		case ',':
			dst.WriteByte(c)
			newline()
		case ':':
			dst.WriteString(": ")
		default:
			dst.WriteByte(c)
		}
	}
	return nil
}
