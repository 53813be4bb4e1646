package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestParseDate(t *testing.T) {
	parsed := ParseDate("2026-02-14")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.February, parsed.Month())
	assert.Equal(t, 14, parsed.Day())

	// empty and malformed input fall back to today
	for _, input := range []string{"", "14/02/2026", "not-a-date"} {
		fallback := ParseDate(input)
		assert.WithinDuration(t, time.Now(), fallback, time.Minute, "input %q", input)
	}
}

func TestParseDateStrict(t *testing.T) {
	parsed, err := ParseDateStrict("2026-02-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDateStrict("14/02/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")

	_, err = ParseDateStrict("")
	assert.Error(t, err)
}

func TestGenerateBookingCode(t *testing.T) {
	code := GenerateBookingCode()

	assert.True(t, strings.HasPrefix(code, "RSV-"), "code %s", code)
	parts := strings.Split(code, "-")
	require.Len(t, parts, 4)
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
	assert.Len(t, parts[3], 4)
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}
