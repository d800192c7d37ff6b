// Package deadline converts the API's display-format date and time strings
// into a single normalized UTC instant. All ordering decisions in the service
// compare instants produced here; the display strings exist only at the HTTP
// boundary.
package deadline

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates, e.g. "10/01/2025".
	DateLayout = "02/01/2006"
	// TimeLayout is the wire format for times of day, e.g. "9:00 AM".
	TimeLayout = "3:04 PM"
)

// Parse combines a "DD/MM/YYYY" date and an "h:mm AM/PM" time into one UTC
// instant. An empty time defaults to the start of the day.
func Parse(dateStr, timeStr string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(dateStr), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want DD/MM/YYYY): %w", dateStr, err)
	}

	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return d, nil
	}

	t, err := time.ParseInLocation(TimeLayout, strings.ToUpper(timeStr), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want h:mm AM/PM): %w", timeStr, err)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// FormatDate renders the calendar-date half of an instant.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatTime renders the time-of-day half of an instant.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Format renders the full instant for user-facing messages.
func Format(t time.Time) string {
	return t.UTC().Format(DateLayout + " " + TimeLayout)
}
