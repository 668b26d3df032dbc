package datepicker

import (
	"iter"
	"time"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// Bounds is the exclusive-inclusive year range (StartYear, EndYear] shown by
// the year wheel. Index 0 of the wheel is StartYear+1.
type Bounds struct {
	StartYear int
	EndYear   int
}

// DefaultBounds returns Bounds from DefaultYearBounds.
func DefaultBounds(now time.Time) Bounds {
	start, end := DefaultYearBounds(now)
	return Bounds{StartYear: start, EndYear: end}
}

// Validate returns an InvalidArgument error if the wheel would be empty.
func (b Bounds) Validate() error {
	if b.EndYear <= b.StartYear {
		return fluenterrors.InvalidArgument("datepicker.Bounds.Validate", "end year %d not after start year %d", b.EndYear, b.StartYear)
	}
	return nil
}

// Len returns the number of years on the wheel.
func (b Bounds) Len() int {
	if b.EndYear <= b.StartYear {
		return 0
	}
	return b.EndYear - b.StartYear
}

// Contains reports whether year appears on the wheel.
func (b Bounds) Contains(year int) bool {
	return year > b.StartYear && year <= b.EndYear
}

// Years returns the wheel's years in order.
func (b Bounds) Years() iter.Seq[int] {
	return YearRange(b.StartYear, b.EndYear)
}

// MonthFromIndex maps a month wheel index (0 = January) to a month.
func MonthFromIndex(index int) (time.Month, error) {
	if index < 0 || index > 11 {
		return 0, fluenterrors.InvalidArgument("datepicker.MonthFromIndex", "month index %d outside 0..11", index)
	}
	return time.Month(index + 1), nil
}

// MonthIndex is the inverse of MonthFromIndex.
func MonthIndex(month time.Month) int {
	return int(month) - 1
}

// DayFromIndex maps a day wheel index (0 = the 1st) to a day of a month
// with daysInMonth days.
func DayFromIndex(index, daysInMonth int) (int, error) {
	if index < 0 || index >= daysInMonth {
		return 0, fluenterrors.InvalidArgument("datepicker.DayFromIndex", "day index %d outside 0..%d", index, daysInMonth-1)
	}
	return index + 1, nil
}

// DayIndex is the inverse of DayFromIndex.
func DayIndex(day int) int {
	return day - 1
}

// YearFromIndex maps a year wheel index to a year; index 0 is startYear+1.
func YearFromIndex(startYear, index int) int {
	return startYear + index + 1
}

// YearIndex is the inverse of YearFromIndex.
func YearIndex(startYear, year int) int {
	return year - startYear - 1
}

// Column describes one wheel as the host should lay it out.
type Column struct {
	Field DateField
	// Count is the number of items on the wheel.
	Count int
	// Selected is the index of the current value.
	Selected int
}

// Picker maps wheel indices to dates for a given year range and field order.
// The zero value is not usable; construct with NewPicker.
type Picker struct {
	Bounds Bounds
	Order  FieldOrder
}

// NewPicker returns a Picker for bounds with the field order of locale.
func NewPicker(bounds Bounds, locale *LocaleKey) (Picker, error) {
	if err := bounds.Validate(); err != nil {
		return Picker{}, err
	}
	return Picker{Bounds: bounds, Order: ResolveFieldOrder(locale)}, nil
}

// SelectMonth applies a month wheel selection to current.
func (p Picker) SelectMonth(current CalendarDate, index int) (CalendarDate, error) {
	month, err := MonthFromIndex(index)
	if err != nil {
		return current, err
	}
	return ApplyMonthChange(current, month)
}

// SelectDay applies a day wheel selection to current. The day wheel is sized
// to current's month.
func (p Picker) SelectDay(current CalendarDate, index int) (CalendarDate, error) {
	day, err := DayFromIndex(index, DaysInMonth(int(current.Month), current.Year))
	if err != nil {
		return current, err
	}
	return ApplyDayChange(current, day)
}

// SelectYear applies a year wheel selection to current. Like ApplyYearChange
// it leaves the day alone.
func (p Picker) SelectYear(current CalendarDate, index int) (CalendarDate, error) {
	if index < 0 || index >= p.Bounds.Len() {
		return current, fluenterrors.InvalidArgument("datepicker.Picker.SelectYear", "year index %d outside 0..%d", index, p.Bounds.Len()-1)
	}
	return ApplyYearChange(current, YearFromIndex(p.Bounds.StartYear, index), p.Bounds.StartYear)
}

// Columns returns the wheels for current in field order.
func (p Picker) Columns(current CalendarDate) ([]Column, error) {
	if err := p.Order.Validate(); err != nil {
		return nil, err
	}
	if current.Month < time.January || current.Month > time.December {
		return nil, fluenterrors.InvalidArgument("datepicker.Picker.Columns", "month %d outside 1..12", int(current.Month))
	}
	if !p.Bounds.Contains(current.Year) {
		return nil, fluenterrors.InvalidArgument("datepicker.Picker.Columns", "year %d outside (%d, %d]", current.Year, p.Bounds.StartYear, p.Bounds.EndYear)
	}
	cols := make([]Column, 0, len(p.Order))
	for _, f := range p.Order {
		switch f {
		case Year:
			cols = append(cols, Column{Field: Year, Count: p.Bounds.Len(), Selected: YearIndex(p.Bounds.StartYear, current.Year)})
		case Month:
			cols = append(cols, Column{Field: Month, Count: 12, Selected: MonthIndex(current.Month)})
		case Day:
			n := DaysInMonth(int(current.Month), current.Year)
			sel := DayIndex(current.Day)
			// A day left invalid by a year change sits on the last day.
			sel = min(max(sel, 0), n-1)
			cols = append(cols, Column{Field: Day, Count: n, Selected: sel})
		}
	}
	return cols, nil
}
