package state

import "time"

// DateLayout is the calendar-date encoding used by LastResetDate and
// WeekStartDate.
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayIndex re-indexes the native Sunday-first weekday numbering to
// Monday=0 .. Sunday=6.
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart returns the Monday of the week containing t as a calendar-date
// string. Sunday maps to the Monday six days earlier.
func WeekStart(t time.Time) string {
	return FormatDate(t.AddDate(0, 0, -DayIndex(t)))
}
