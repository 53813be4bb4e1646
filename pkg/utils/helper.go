package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseDate parses a YYYY-MM-DD query parameter. Invalid or empty input
// falls back to the current day instead of erroring.
func ParseDate(value string) time.Time {
	if value == "" {
		return time.Now()
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Now()
	}

	return parsed
}

// ParseDateStrict parses a YYYY-MM-DD value and reports failure to the caller.
func ParseDateStrict(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return parsed, nil
}

// GenerateBookingCode creates a unique booking code with timestamp
func GenerateBookingCode() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: RSV-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RSV-%s-%s-%s", datePart, timePart, randomPart)
}
