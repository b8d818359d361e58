package dateutil

import "time"

// DateLayout is the fixed textual date format used everywhere in the
// application, both for input and output.
// Example: 15.01.2025
const DateLayout = "02.01.2006"

// ParseDate parses a date string strictly against DateLayout. Lenient
// matches that time.Parse would accept (single-digit day or month,
// two-digit year) are rejected by requiring an exact round-trip.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(DateLayout) != dateStr {
		return time.Time{}, &time.ParseError{
			Layout:  DateLayout,
			Value:   dateStr,
			Message: ": not a zero-padded " + DateLayout + " date",
		}
	}
	return t, nil
}

// FormatDate formats a date according to DateLayout.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// ShiftOffWeekend moves a Saturday forward 2 days and a Sunday
// forward 1 day, landing on the following Monday. Weekdays are
// returned unchanged.
func ShiftOffWeekend(date time.Time) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	default:
		return date
	}
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysBetween returns the number of whole days from 'from' to 'to'.
// Both dates are normalized to midnight UTC first so that DST
// transitions in a local zone cannot skew the count.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
