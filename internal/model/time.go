package model

import (
	"fmt"
	"time"
)

// Timestamp layouts used throughout the store. Every date comparison in the
// filter and report engines is a lexicographic string comparison, which is
// only correct because these layouts are fixed-width and zero-padded.
const (
	// TimeLayout is the canonical createTime/createAt format.
	TimeLayout = "2006-01-02 15:04:05"
	// TimeLayoutT is the alternate ISO-style format accepted on input.
	TimeLayoutT = "2006-01-02T15:04:05"
	// DateLayout is the format for date-only fields (budget periods, deadlines).
	DateLayout = "2006-01-02"
)

// Now returns the current local time in TimeLayout.
func Now() string {
	return time.Now().Format(TimeLayout)
}

// ParseTime parses a timestamp in either accepted layout, or a bare date.
// Malformed input fails the operation; it is never defaulted to zero or now.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range []string{TimeLayout, TimeLayoutT, DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected %q or %q", s, TimeLayout, DateLayout)
}

// ParseDate parses a date-only string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %q", s, DateLayout)
	}
	return t, nil
}

// EndOfDay widens a bare date (10 characters) to the last second of that day
// so day-granularity upper bounds include the entire final day. Full
// timestamps pass through unchanged.
func EndOfDay(s string) string {
	if len(s) == len(DateLayout) {
		return s + " 23:59:59"
	}
	return s
}
