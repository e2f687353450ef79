// Package timestamp parses backend record timestamps.
package timestamp

import (
	"errors"
	"strings"
	"time"
)

// ErrNaiveTimestamp is returned for timestamps that carry no zone information.
// They cannot be compared with zoned instants and are never assumed to be UTC.
var ErrNaiveTimestamp = errors.New("timestamp has no zone information")

// ErrEmptyTimestamp is returned for an empty input.
var ErrEmptyTimestamp = errors.New("timestamp is empty")

var zonedLayouts = []string{
	"2006-01-02 15:04:05.999999999Z07:00",
	time.RFC3339Nano,
}

var naiveLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// Parse reads a backend timestamp such as "2026-10-17 09:30:00.123Z" and returns it in UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return time.Time{}, ErrNaiveTimestamp
		}
	}

	_, err := time.Parse(time.RFC3339Nano, s)
	return time.Time{}, err
}

// Format renders t the way the backend stores timestamps.
func Format(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05.000Z")
}

// FormatISO renders t as RFC 3339 in UTC with fractional seconds.
func FormatISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
