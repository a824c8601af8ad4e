package domain

import "time"

// DateLayout is the calendar-date format used by every dated record.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders the calendar date of t, as seen in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CivilDay maps the calendar date of t to a day number, ignoring the time of day
// and the zone offset, so that day arithmetic is immune to DST shifts.
func CivilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
