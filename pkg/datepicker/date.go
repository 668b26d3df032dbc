package datepicker

import (
	"fmt"
	"time"
)

// CalendarDate is a date with the sub-day components carried alongside it.
//
// The mapper functions only ever touch Year, Month and Day. Everything else
// passes through unchanged.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int

	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	// Location is the time zone of the date. Nil means UTC.
	Location *time.Location
}

// FromTime returns the CalendarDate for t in t's location.
func FromTime(t time.Time) CalendarDate {
	return CalendarDate{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
		Location:   t.Location(),
	}
}

// Date returns a CalendarDate at midnight UTC.
func Date(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Time converts d to a time.Time. An invalid date (see Valid) is normalized
// by the time package, so callers should Clamp first if that matters.
func (d CalendarDate) Time() time.Time {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second, d.Nanosecond, loc)
}

// Valid reports whether the month is in 1..12 and the day fits the month.
func (d CalendarDate) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(int(d.Month), d.Year)
}

// Clamp returns d with Day limited to 1..DaysInMonth(d.Month, d.Year).
// It never rolls over into the next month.
func (d CalendarDate) Clamp() CalendarDate {
	if n := DaysInMonth(int(d.Month), d.Year); d.Day > n {
		d.Day = n
	}
	if d.Day < 1 {
		d.Day = 1
	}
	return d
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
