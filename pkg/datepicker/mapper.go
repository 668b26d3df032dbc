package datepicker

import (
	"iter"
	"time"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// DaysInMonth returns the number of days in month of year, measured as the
// span between the first of the month and the first of the following month.
// Months outside 1..12 roll over year boundaries, so month 13 of 2023 is
// January 2024 and month 0 of 2024 is December 2023.
func DaysInMonth(month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return int(next.Sub(first) / (24 * time.Hour))
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// ApplyMonthChange returns current with its month replaced. If the day does
// not exist in the new month it is clamped to the month's last day; that is
// a normalization, not an error. A month outside 1..12 is an InvalidArgument.
func ApplyMonthChange(current CalendarDate, month time.Month) (CalendarDate, error) {
	if month < time.January || month > time.December {
		return current, fluenterrors.InvalidArgument("datepicker.ApplyMonthChange", "month %d outside 1..12", int(month))
	}
	next := current
	next.Month = month
	if n := DaysInMonth(int(month), current.Year); next.Day > n {
		next.Day = n
	}
	return next, nil
}

// ApplyDayChange returns current with its day replaced. The day must exist
// in current's month.
func ApplyDayChange(current CalendarDate, day int) (CalendarDate, error) {
	n := DaysInMonth(int(current.Month), current.Year)
	if day < 1 || day > n {
		return current, fluenterrors.InvalidArgument("datepicker.ApplyDayChange", "day %d outside 1..%d for %s %d", day, n, current.Month, current.Year)
	}
	next := current
	next.Day = day
	return next, nil
}

// ApplyYearChange returns current with its year replaced. The year comes from
// a wheel whose index 0 is yearLowerBound+1, so a year at or below the bound
// is an InvalidArgument.
//
// The day is not re-clamped: Feb 29 moved into a non-leap year stays Feb 29.
// Hosts that want a valid date call Clamp on the result.
func ApplyYearChange(current CalendarDate, year, yearLowerBound int) (CalendarDate, error) {
	if year <= yearLowerBound {
		return current, fluenterrors.InvalidArgument("datepicker.ApplyYearChange", "year %d not after lower bound %d", year, yearLowerBound)
	}
	next := current
	next.Year = year
	return next, nil
}

// YearRange returns the years startYear+1 through endYear in ascending order.
// The sequence is empty when endYear <= startYear and may be ranged over
// any number of times.
func YearRange(startYear, endYear int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for y := startYear + 1; y <= endYear; y++ {
			if !yield(y) {
				return
			}
		}
	}
}

const (
	// DefaultYearsBack is how far before the current year the year wheel starts.
	DefaultYearsBack = 100
	// DefaultYearsAhead is how far after the current year the year wheel ends.
	DefaultYearsAhead = 25
)

// DefaultYearBounds returns the year wheel bounds used when none are configured.
func DefaultYearBounds(now time.Time) (startYear, endYear int) {
	return now.Year() - DefaultYearsBack, now.Year() + DefaultYearsAhead
}
