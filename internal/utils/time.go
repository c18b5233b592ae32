package utils

import (
	"time"

	"github.com/wirdhq/wird/internal/constants"
)

// DayKey returns the local calendar day of t as a YYYY-MM-DD string.
// All streak/history arithmetic operates on this string form, not on
// instants, to avoid timezone drift across a single day.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns today's local calendar day as a YYYY-MM-DD string.
func Today() string {
	return DayKey(time.Now())
}

// AddDays shifts a YYYY-MM-DD day string by the given number of calendar
// days. The error is the parse error for a malformed input.
func AddDays(day string, days int) (string, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(constants.DateFormat), nil
}

// ValidDate reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDate(day string) bool {
	_, err := time.Parse(constants.DateFormat, day)
	return err == nil
}
