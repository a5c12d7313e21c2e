package toml

// Kind tags the type of a stored TOML value. It replaces the C
// implementation's `TomlValueType` + `void *data` union with a closed sum
// type: the serializer's switch over Kind is exhaustive, so there is no
// "unknown value type" case to fall through to.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindInlineTable
	KindOffsetDatetime
	KindLocalDatetime
	KindLocalDate
	KindLocalTime
)

// String names a Kind the way the typed-JSON dump spells it.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "bool"
	case KindOffsetDatetime:
		return "datetime"
	case KindLocalDatetime:
		return "datetime-local"
	case KindLocalDate:
		return "date-local"
	case KindLocalTime:
		return "time-local"
	default:
		return "unknown"
	}
}

// DatetimeKind distinguishes the four TOML temporal kinds.
type DatetimeKind int

const (
	OffsetDatetime DatetimeKind = iota
	LocalDatetime
	LocalDate
	LocalTime
)

// DateTime is a broken-down TOML date/time value. It never performs
// timezone arithmetic; Offset* fields record only what was spelled in the
// source, and Format preserves the exact textual layout for re-emission -
// the only way, per the design notes, to tell "+00:00" apart from "Z".
type DateTime struct {
	Kind DatetimeKind

	Year, Month, Day      int
	Hour, Minute, Second  int
	Nanosecond            int // sub-second value normalized to nanoseconds
	SubsecondDigits       int // digits of precision actually present (0 if none)

	HasOffset   bool
	OffsetHour  int // signed
	OffsetMinute int

	Format string // source layout, e.g. "2006-01-02T15:04:05-07:00"
}

// Value is the tagged union of every TOML value shape: string, number
// (integer or float, both stored as float64 magnitude), boolean, array,
// inline table, and the four datetime kinds.
type Value struct {
	Kind Kind

	str string

	num        float64
	precision  int
	scientific bool

	elems []*Value

	table *Key // for KindInlineTable: root of the spliced-in subtree

	dt DateTime
}

func newStringValue(s string) *Value {
	return &Value{Kind: KindString, str: s}
}

func newIntegerValue(n float64) *Value {
	return &Value{Kind: KindInteger, num: n}
}

func newFloatValue(n float64, precision int, scientific bool) *Value {
	return &Value{Kind: KindFloat, num: n, precision: precision, scientific: scientific}
}

func newBooleanValue(b bool) *Value {
	n := 0.0
	if b {
		n = 1.0
	}
	return &Value{Kind: KindBoolean, num: n}
}

func newArrayValue() *Value {
	return &Value{Kind: KindArray}
}

func newInlineTableValue(root *Key) *Value {
	return &Value{Kind: KindInlineTable, table: root}
}

func newDatetimeValue(dt DateTime) *Value {
	var k Kind
	switch dt.Kind {
	case OffsetDatetime:
		k = KindOffsetDatetime
	case LocalDatetime:
		k = KindLocalDatetime
	case LocalDate:
		k = KindLocalDate
	case LocalTime:
		k = KindLocalTime
	}
	return &Value{Kind: k, dt: dt}
}

// String returns the string payload, or ("", false) if this isn't a string.
func (v *Value) String() (string, bool) {
	if v == nil || v.Kind != KindString {
		return "", false
	}
	return v.str, true
}

// Float64 returns the numeric magnitude for integer, float, or boolean
// values (booleans store as 0/1), or (0, false) otherwise.
func (v *Value) Float64() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.Kind {
	case KindInteger, KindFloat, KindBoolean:
		return v.num, true
	default:
		return 0, false
	}
}

// FloatFormat returns the precision (digits after the decimal point, as
// written in the source) and whether the literal used scientific notation,
// for a float value. Meaningless for any other Kind.
func (v *Value) FloatFormat() (precision int, scientific bool) {
	if v == nil || v.Kind != KindFloat {
		return 0, false
	}
	return v.precision, v.scientific
}

// Bool returns the boolean payload, or (false, false) if this isn't boolean.
func (v *Value) Bool() (bool, bool) {
	if v == nil || v.Kind != KindBoolean {
		return false, false
	}
	return v.num != 0, true
}

// Array returns the element slice for an array value.
func (v *Value) Array() ([]*Value, bool) {
	if v == nil || v.Kind != KindArray {
		return nil, false
	}
	return v.elems, true
}

// Table returns the inline-table root key.
func (v *Value) Table() (*Key, bool) {
	if v == nil || v.Kind != KindInlineTable {
		return nil, false
	}
	return v.table, true
}

// NewString builds a string Value. Exported for callers constructing a
// tree programmatically rather than parsing one.
func NewString(s string) *Value { return newStringValue(s) }

// NewInteger builds an integer Value.
func NewInteger(n int64) *Value { return newIntegerValue(float64(n)) }

// NewFloat builds a float Value.
func NewFloat(n float64) *Value { return newFloatValue(n, 0, false) }

// NewBoolean builds a boolean Value.
func NewBoolean(b bool) *Value { return newBooleanValue(b) }

// NewArray builds an array Value from the given elements.
func NewArray(elems ...*Value) *Value {
	v := newArrayValue()
	v.elems = append(v.elems, elems...)
	return v
}

// NewInlineTable builds an inline-table Value wrapping a fresh, empty
// table root.
func NewInlineTable() *Value {
	return newInlineTableValue(newKey(KindTable))
}

// NewDatetime builds a datetime Value from a broken-down DateTime.
func NewDatetime(dt DateTime) *Value { return newDatetimeValue(dt) }

// Datetime returns the broken-down datetime payload.
func (v *Value) Datetime() (DateTime, bool) {
	if v == nil {
		return DateTime{}, false
	}
	switch v.Kind {
	case KindOffsetDatetime, KindLocalDatetime, KindLocalDate, KindLocalTime:
		return v.dt, true
	default:
		return DateTime{}, false
	}
}
