package streak

import (
	"strings"
	"time"
)

// TimestampLayout is how completions are stored: ISO-8601, second
// precision, local time, no offset.
const TimestampLayout = "2006-01-02T15:04:05"

// Layouts tried, in order, for values without an explicit offset.
// Fractional seconds are accepted by time.Parse after any seconds field.
var naiveLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp. Values carrying an offset
// keep it; naive values are read in time.Local.
func ParseTimestamp(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	var firstErr error
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, v, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &FormatError{Value: s, Err: firstErr}
}

// FormatTimestamp renders t in TimestampLayout in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
