package models

import "time"

// TimeLayout is the single timestamp format used across the store.
// All timestamp columns hold local-time strings in this layout; no
// timezone is encoded.
const TimeLayout = "2006-01-02 15:04:05"

// Now returns the current local time rendered in TimeLayout.
func Now() string {
	return time.Now().Format(TimeLayout)
}

// parseTime parses a stored timestamp string. ok is false for empty or
// malformed input, which callers treat as recoverable noise rather than
// an error.
func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatTime re-renders a stored timestamp in a display layout, falling
// back to the raw string when it doesn't parse.
func formatTime(s, layout string) string {
	t, ok := parseTime(s)
	if !ok {
		return s
	}
	return t.Format(layout)
}
