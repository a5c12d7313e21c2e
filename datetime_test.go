package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseVal(t *testing.T, src string) *Value {
	tok := newTokenizer([]byte(src), "", DefaultLimits())
	v, err := parseValue(tok, numberEndStatement)
	require.NoError(t, err)
	return v
}

func TestParseOffsetDatetime(t *testing.T) {
	v := parseVal(t, "1979-05-27T07:32:00Z")
	require.Equal(t, KindOffsetDatetime, v.Kind)
	dt, _ := v.Datetime()
	require.Equal(t, 1979, dt.Year)
	require.Equal(t, 5, dt.Month)
	require.Equal(t, 27, dt.Day)
	require.Equal(t, 7, dt.Hour)
	require.True(t, dt.HasOffset)
	require.Equal(t, 0, dt.OffsetHour)
}

func TestParseOffsetDatetimeWithNumericOffset(t *testing.T) {
	v := parseVal(t, "1979-05-27T00:32:00-07:00")
	dt, _ := v.Datetime()
	require.True(t, dt.HasOffset)
	require.Equal(t, -7, dt.OffsetHour)
	require.Equal(t, 0, dt.OffsetMinute)
}

func TestParseLocalDatetimeWithFraction(t *testing.T) {
	v := parseVal(t, "1979-05-27T00:32:00.999999")
	require.Equal(t, KindLocalDatetime, v.Kind)
	dt, _ := v.Datetime()
	require.False(t, dt.HasOffset)
	require.Equal(t, 6, dt.SubsecondDigits)
	require.Equal(t, 999999000, dt.Nanosecond)
}

func TestParseLocalDate(t *testing.T) {
	v := parseVal(t, "1979-05-27")
	require.Equal(t, KindLocalDate, v.Kind)
	dt, _ := v.Datetime()
	require.Equal(t, 1979, dt.Year)
}

func TestParseLocalTime(t *testing.T) {
	v := parseVal(t, "07:32:00")
	require.Equal(t, KindLocalTime, v.Kind)
	dt, _ := v.Datetime()
	require.Equal(t, 7, dt.Hour)
	require.Equal(t, 32, dt.Minute)
}

func TestParseInvalidCalendarDateRejected(t *testing.T) {
	tok := newTokenizer([]byte("1979-02-30"), "", DefaultLimits())
	_, err := parseDatetimeOrDate(tok, numberEndStatement)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSemantic)
}

func TestParseInvalidTimeRejected(t *testing.T) {
	tok := newTokenizer([]byte("25:00:00"), "", DefaultLimits())
	_, err := parseLocalTime(tok, numberEndStatement)
	require.Error(t, err)
}

func TestLooksLikeDatetimeDisambiguatesFromNumber(t *testing.T) {
	tok := newTokenizer([]byte("1234"), "", DefaultLimits())
	require.False(t, looksLikeDatetime(tok))

	tok2 := newTokenizer([]byte("12:34"), "", DefaultLimits())
	require.True(t, looksLikeDatetime(tok2))
}
