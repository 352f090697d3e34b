package util

import "time"

const (
	dateLayout     = "02/01/2006"
	timeLayout     = "15:04"
	datetimeLayout = "2006-01-02T15:04:05.000000-0700"
)

// FormatDate renders a date as DD/MM/YYYY. Zero dates render as an empty
// string, which is how Ergani expects absent optional dates.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// FormatTime renders a time of day as HH:MM, or an empty string for the
// zero value.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

// FormatDatetime renders a timestamp as ISO-8601 with microseconds and the
// numeric zone offset, or an empty string for the zero value.
func FormatDatetime(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(datetimeLayout)
}

// DayOfWeek returns the Ergani day index for a date: 0 for Sunday through
// 6 for Saturday.
func DayOfWeek(d time.Time) int {
	return int(d.Weekday())
}
