package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinicstack-service/internal/pkg/constvars"
)

// ClockTimeToMinutes converts an "HH:MM" string to minutes since local
// midnight. Malformed input returns an error so callers reject it before any
// slot arithmetic runs.
func ClockTimeToMinutes(clockTime string) (int, error) {
	parts := strings.Split(clockTime, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", clockTime)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", clockTime)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", clockTime)
	}
	return hours*60 + minutes, nil
}

// MinutesToClockTime converts minutes since midnight back to a zero-padded
// "HH:MM" string.
func MinutesToClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func ParseDateISO(date string) (time.Time, error) {
	return time.Parse(constvars.DateLayoutISO, date)
}

func FormatDateISO(t time.Time) string {
	return t.Format(constvars.DateLayoutISO)
}

// TruncateToDate drops the time-of-day component, keeping the location.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameCalendarDate reports whether two instants fall on the same calendar
// date, ignoring time-of-day.
func SameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
