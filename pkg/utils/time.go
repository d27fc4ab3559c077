package utils

import (
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// ParseUserTime accepts RFC3339 or a bare YYYY-MM-DD date. A date-only
// value passed as a range end resolves to 23:59:59 of that day so the
// whole day is included.
func ParseUserTime(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", raw)
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
