package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// GMTLayout is the zone-less timestamp format the provider uses for start
// times; values are GMT by contract.
const GMTLayout = "2006-01-02T15:04:05"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGMT parses a provider start-time string as UTC. An empty value or a
// parse failure yields the zero time.
func ParseGMT(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(GMTLayout, value, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatClockGMT renders a wall-clock hour like "14:30 GMT".
func FormatClockGMT(t time.Time) string {
	return t.UTC().Format("15:04") + " GMT"
}
