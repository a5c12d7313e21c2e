package toml

import "strconv"

// parseDatetimeOrDate consumes one of the four temporal literal shapes:
// offset datetime, local datetime, local date, or local time. tok.cur is
// the first digit on entry. The caller (parseValue) has already used
// peekAt to confirm this is a date/time literal rather than a plain
// integer, per the disambiguation rule: a date is distinguished from a
// number by a '-' at offset 4 or a ':' at offset 2. Grounded on
// _mytoml_parser_parse_datetime.
func parseDatetimeOrDate(tok *tokenizer, numEnd string) (*Value, error) {
	if tok.peekAt(2) == ':' {
		return parseLocalTime(tok, numEnd)
	}

	year, err := readFixedDigits(tok, 4)
	if err != nil {
		return nil, err
	}
	if tok.cur != '-' {
		return nil, grammarErr(tok, "expected '-' in date")
	}
	tok.advance()
	month, err := readFixedDigits(tok, 2)
	if err != nil {
		return nil, err
	}
	if tok.cur != '-' {
		return nil, grammarErr(tok, "expected '-' in date")
	}
	tok.advance()
	day, err := readFixedDigits(tok, 2)
	if err != nil {
		return nil, err
	}
	if !isValidDate(year, month, day) {
		return nil, semanticErr(tok, "%04d-%02d-%02d is not a valid calendar date", year, month, day)
	}

	dt := DateTime{Kind: LocalDate, Year: year, Month: month, Day: day, Format: "2006-01-02"}

	if !tok.hasMore() || isNumberEnd(tok.cur, numEnd) {
		return newDatetimeValue(dt), nil
	}
	if tok.cur != 'T' && tok.cur != 't' && tok.cur != ' ' {
		return newDatetimeValue(dt), nil
	}

	sep := tok.cur
	tok.advance()

	timePart, err := parseClock(tok, numEnd)
	if err != nil {
		return nil, err
	}
	dt.Hour, dt.Minute, dt.Second = timePart.Hour, timePart.Minute, timePart.Second
	dt.Nanosecond, dt.SubsecondDigits = timePart.Nanosecond, timePart.SubsecondDigits
	dt.HasOffset, dt.OffsetHour, dt.OffsetMinute = timePart.HasOffset, timePart.OffsetHour, timePart.OffsetMinute

	layout := "2006-01-02"
	if sep == ' ' {
		layout += " "
	} else {
		layout += "T"
	}
	layout += timePart.Format

	if timePart.HasOffset {
		dt.Kind = OffsetDatetime
	} else {
		dt.Kind = LocalDatetime
	}
	dt.Format = layout

	return newDatetimeValue(dt), nil
}

// parseLocalTime consumes a bare HH:MM:SS[.fraction] literal with no date
// part and no offset.
func parseLocalTime(tok *tokenizer, numEnd string) (*Value, error) {
	dt, err := parseClock(tok, numEnd)
	if err != nil {
		return nil, err
	}
	dt.Kind = LocalTime
	return newDatetimeValue(dt), nil
}

// parseClock consumes HH:MM:SS[.fraction][offset] and returns a DateTime
// with only the time-of-day and offset fields populated; the caller fills
// in the date fields (or leaves them zero for a bare local time).
func parseClock(tok *tokenizer, numEnd string) (DateTime, error) {
	var dt DateTime

	hour, err := readFixedDigits(tok, 2)
	if err != nil {
		return dt, err
	}
	if tok.cur != ':' {
		return dt, grammarErr(tok, "expected ':' in time")
	}
	tok.advance()
	minute, err := readFixedDigits(tok, 2)
	if err != nil {
		return dt, err
	}
	if tok.cur != ':' {
		return dt, grammarErr(tok, "expected ':' in time")
	}
	tok.advance()
	second, err := readFixedDigits(tok, 2)
	if err != nil {
		return dt, err
	}
	if hour > 23 || minute > 59 || second > 60 {
		return dt, semanticErr(tok, "%02d:%02d:%02d is not a valid time of day", hour, minute, second)
	}

	dt.Hour, dt.Minute, dt.Second = hour, minute, second
	layout := "15:04:05"

	if tok.hasMore() && tok.cur == '.' {
		tok.advance()
		var frac []byte
		for tok.hasMore() && isDigit(tok.cur) {
			frac = append(frac, tok.cur)
			tok.advance()
		}
		if len(frac) == 0 {
			return dt, lexicalErr(tok, "expected a digit after '.' in time")
		}
		dt.Nanosecond = fractionToNanos(frac)
		dt.SubsecondDigits = normalizedSubsecondDigits(len(frac))
		layout += ".000000000"[:dt.SubsecondDigits+1]
	}

	if tok.hasMore() && (tok.cur == 'Z' || tok.cur == 'z') {
		dt.HasOffset = true
		tok.advance()
		layout += "Z"
		dt.Format = layout
		return dt, nil
	}

	if tok.hasMore() && (tok.cur == '+' || tok.cur == '-') {
		neg := tok.cur == '-'
		tok.advance()
		offHour, err := readFixedDigits(tok, 2)
		if err != nil {
			return dt, err
		}
		if tok.cur != ':' {
			return dt, grammarErr(tok, "expected ':' in time-zone offset")
		}
		tok.advance()
		offMinute, err := readFixedDigits(tok, 2)
		if err != nil {
			return dt, err
		}
		if offHour > 23 || offMinute > 59 {
			return dt, semanticErr(tok, "offset %02d:%02d out of range", offHour, offMinute)
		}
		dt.HasOffset = true
		if neg {
			offHour = -offHour
		}
		dt.OffsetHour = offHour
		dt.OffsetMinute = offMinute
		layout += "-07:00"
	}

	dt.Format = layout
	return dt, nil
}

// readFixedDigits reads exactly n decimal digits and returns their value.
func readFixedDigits(tok *tokenizer, n int) (int, error) {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		if !tok.hasMore() || !isDigit(tok.cur) {
			return 0, lexicalErr(tok, "expected %d digits", n)
		}
		buf = append(buf, tok.cur)
		tok.advance()
	}
	n64, err := strconv.Atoi(string(buf))
	if err != nil {
		return 0, lexicalErr(tok, "invalid digits %q", buf)
	}
	return n64, nil
}

// normalizedSubsecondDigits applies the fractional-second normalization
// rule: a 1-digit fraction is scaled to milliseconds (x100), a 2-digit
// fraction to milliseconds (x10), and 3-or-more digits are kept as read,
// so the effective precision recorded for re-serialization is never
// narrower than milliseconds. Grounded on the original's
// "if (mlen==1) millis*=100; if (mlen==2) millis*=10;" handling.
func normalizedSubsecondDigits(raw int) int {
	if raw < 3 {
		return 3
	}
	return raw
}

// fractionToNanos expands a decimal fraction's digits to nanosecond scale,
// truncating or zero-padding to 9 digits.
func fractionToNanos(frac []byte) int {
	const width = 9
	padded := make([]byte, width)
	for i := range padded {
		padded[i] = '0'
	}
	n := len(frac)
	if n > width {
		n = width
	}
	copy(padded, frac[:n])
	v, _ := strconv.Atoi(string(padded))
	return v
}
