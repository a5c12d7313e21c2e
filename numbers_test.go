package toml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseNumber(t *testing.T, src string) *Value {
	tok := newTokenizer([]byte(src), "", DefaultLimits())
	v, err := parseNumber(tok, numberEndStatement)
	require.NoError(t, err)
	return v
}

func TestParseNumberDecimalInteger(t *testing.T) {
	v := mustParseNumber(t, "42")
	require.Equal(t, KindInteger, v.Kind)
	n, ok := v.Float64()
	require.True(t, ok)
	require.Equal(t, 42.0, n)
}

func TestParseNumberNegativeInteger(t *testing.T) {
	v := mustParseNumber(t, "-17")
	n, _ := v.Float64()
	require.Equal(t, -17.0, n)
}

func TestParseNumberUnderscoreSeparators(t *testing.T) {
	v := mustParseNumber(t, "1_000_000")
	n, _ := v.Float64()
	require.Equal(t, 1000000.0, n)
}

func TestParseNumberLeadingZeroRejected(t *testing.T) {
	tok := newTokenizer([]byte("007"), "", DefaultLimits())
	_, err := parseNumber(tok, numberEndStatement)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSemantic)
}

func TestParseNumberFloat(t *testing.T) {
	v := mustParseNumber(t, "3.1415")
	require.Equal(t, KindFloat, v.Kind)
	n, _ := v.Float64()
	require.InDelta(t, 3.1415, n, 1e-9)
}

func TestParseNumberExponent(t *testing.T) {
	v := mustParseNumber(t, "5e+22")
	n, _ := v.Float64()
	require.InDelta(t, 5e22, n, 1e10)
}

func TestParseNumberHex(t *testing.T) {
	v := mustParseNumber(t, "0xDEADBEEF")
	require.Equal(t, KindInteger, v.Kind)
	n, _ := v.Float64()
	require.Equal(t, float64(0xDEADBEEF), n)
}

func TestParseNumberOctal(t *testing.T) {
	v := mustParseNumber(t, "0o17")
	n, _ := v.Float64()
	require.Equal(t, 15.0, n)
}

func TestParseNumberBinary(t *testing.T) {
	v := mustParseNumber(t, "0b1101")
	n, _ := v.Float64()
	require.Equal(t, 13.0, n)
}

func TestParseNumberInf(t *testing.T) {
	v := mustParseNumber(t, "inf")
	n, _ := v.Float64()
	require.True(t, math.IsInf(n, 1))
}

func TestParseNumberNegInf(t *testing.T) {
	v := mustParseNumber(t, "-inf")
	n, _ := v.Float64()
	require.True(t, math.IsInf(n, -1))
}

func TestParseNumberNaN(t *testing.T) {
	v := mustParseNumber(t, "nan")
	n, _ := v.Float64()
	require.True(t, math.IsNaN(n))
}

func TestParseNumberStrayUnderscoreRejected(t *testing.T) {
	tok := newTokenizer([]byte("1__0"), "", DefaultLimits())
	_, err := parseNumber(tok, numberEndStatement)
	require.Error(t, err)
}
