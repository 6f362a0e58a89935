package dateutil

import (
	"time"
)

// StartOfMonth truncates a date to the first day of its calendar month in UTC.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds a specified number of calendar months to a date.
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// MonthsBetween calculates the number of whole calendar months from one date's
// month to another's. Days within the month are ignored; the result is
// negative when to precedes from.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// SameMonth reports whether two dates fall in the same calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
