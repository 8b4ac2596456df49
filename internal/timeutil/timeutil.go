package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayName returns the English weekday name for a date ("Saturday").
func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}

// TimeToMinutes converts a kickoff time ("HH:MM" or "H:MM", 24-hour) to
// minutes since midnight. Empty or malformed input sorts first as zero.
func TimeToMinutes(kickoff string) int {
	h, m, ok := splitClock(kickoff)
	if !ok {
		return 0
	}
	return h*60 + m
}

// ValidClock reports whether kickoff looks like a 24-hour H:MM or HH:MM time.
func ValidClock(kickoff string) bool {
	_, _, ok := splitClock(kickoff)
	return ok
}

func splitClock(kickoff string) (int, int, bool) {
	parts := strings.SplitN(strings.TrimSpace(kickoff), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
