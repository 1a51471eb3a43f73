package view

import (
	"fmt"
	"time"

	"criclite/internal/timeutil"
)

// Countdown renders the start-time wording for an upcoming match, e.g.
// "Starts in 2 hours". Matches already past their start time show as
// starting soon; the status line will take over once the provider flips
// the match to live.
func Countdown(start, now time.Time) string {
	diff := start.Sub(now)
	switch {
	case diff < time.Minute:
		return "Starting in less than a minute"
	case diff < time.Hour:
		return fmt.Sprintf("Starts in %s", plural(int(diff/time.Minute), "minute"))
	case diff < 24*time.Hour:
		return fmt.Sprintf("Starts in %s", plural(int(diff/time.Hour), "hour"))
	case diff < 48*time.Hour:
		return "Starts tomorrow"
	default:
		return fmt.Sprintf("Starts in %s", plural(int(diff/(24*time.Hour)), "day"))
	}
}

// StartClock renders the wall-clock companion line for a countdown.
func StartClock(start time.Time) string {
	return timeutil.FormatClockGMT(start)
}

// TimeAgo renders the "Updated N minutes ago" wording for the page header.
func TimeAgo(age time.Duration) string {
	if age < 0 {
		age = 0
	}
	if age < time.Minute {
		return fmt.Sprintf("%d seconds ago", int(age/time.Second))
	}
	return plural(int(age/time.Minute), "minute") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
