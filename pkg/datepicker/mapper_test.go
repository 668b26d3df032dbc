package datepicker

import (
	"errors"
	"slices"
	"testing"
	"time"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month, year int
		want        int
	}{
		{2, 2000, 29},
		{2, 1900, 28},
		{2, 2024, 29},
		{2, 2023, 28},
		{1, 2023, 31},
		{4, 2023, 30},
		{12, 2023, 31},
		{13, 2023, 31}, // January 2024
		{14, 2023, 29}, // February 2024
		{0, 2024, 31},  // December 2023
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonthMatchesGregorianTable(t *testing.T) {
	lengths := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for year := 1600; year <= 2400; year++ {
		for m := 1; m <= 12; m++ {
			want := lengths[m-1]
			if m == 2 && IsLeap(year) {
				want = 29
			}
			if got := DaysInMonth(m, year); got != want {
				t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", m, year, got, want)
			}
		}
	}
}

func TestApplyMonthChange(t *testing.T) {
	current := CalendarDate{Year: 2024, Month: time.January, Day: 31, Hour: 13, Minute: 45, Second: 7, Nanosecond: 9}
	tests := []struct {
		month   time.Month
		wantDay int
	}{
		{time.February, 29},
		{time.March, 31},
		{time.April, 30},
		{time.December, 31},
	}
	for _, tt := range tests {
		got, err := ApplyMonthChange(current, tt.month)
		if err != nil {
			t.Fatalf("ApplyMonthChange(%v) error: %v", tt.month, err)
		}
		want := current
		want.Month = tt.month
		want.Day = tt.wantDay
		if got != want {
			t.Errorf("ApplyMonthChange(%v) = %+v, want %+v", tt.month, got, want)
		}
		if got.Day > DaysInMonth(int(tt.month), got.Year) {
			t.Errorf("day %d overflows %v", got.Day, tt.month)
		}
	}

	got, _ := ApplyMonthChange(Date(2023, time.March, 31), time.February)
	if got != Date(2023, time.February, 28) {
		t.Errorf("got %v, want 2023-02-28", got)
	}
}

func TestApplyMonthChangeInvalid(t *testing.T) {
	current := Date(2024, time.May, 5)
	for _, m := range []time.Month{0, 13, -1} {
		got, err := ApplyMonthChange(current, m)
		if !errors.Is(err, fluenterrors.ErrInvalidArgument) {
			t.Errorf("ApplyMonthChange(%d) err = %v, want InvalidArgument", m, err)
		}
		if got != current {
			t.Errorf("ApplyMonthChange(%d) changed date to %v", m, got)
		}
	}
}

func TestApplyDayChange(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	current := CalendarDate{Year: 2024, Month: time.February, Day: 10, Hour: 8, Location: loc}

	got, err := ApplyDayChange(current, 29)
	if err != nil {
		t.Fatalf("ApplyDayChange(29) error: %v", err)
	}
	want := current
	want.Day = 29
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	for _, day := range []int{0, 30, -3} {
		if _, err := ApplyDayChange(current, day); !errors.Is(err, fluenterrors.ErrInvalidArgument) {
			t.Errorf("ApplyDayChange(%d) err = %v, want InvalidArgument", day, err)
		}
	}
}

func TestApplyYearChangeDoesNotClamp(t *testing.T) {
	current := CalendarDate{Year: 2024, Month: time.February, Day: 29, Minute: 30}
	got, err := ApplyYearChange(current, 2023, 1924)
	if err != nil {
		t.Fatalf("ApplyYearChange error: %v", err)
	}
	want := current
	want.Year = 2023
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Valid() {
		t.Error("2023-02-29 should be reported invalid")
	}
	if c := got.Clamp(); c.Day != 28 || c.Month != time.February {
		t.Errorf("Clamp() = %v, want 2023-02-28", c)
	}
}

func TestApplyYearChangeLowerBound(t *testing.T) {
	current := Date(2000, time.June, 1)
	for _, year := range []int{1924, 1900} {
		if _, err := ApplyYearChange(current, year, 1924); !errors.Is(err, fluenterrors.ErrInvalidArgument) {
			t.Errorf("ApplyYearChange(%d) err = %v, want InvalidArgument", year, err)
		}
	}
	if _, err := ApplyYearChange(current, 1925, 1924); err != nil {
		t.Errorf("ApplyYearChange(1925) error: %v", err)
	}
}

func TestYearRange(t *testing.T) {
	seq := YearRange(1990, 1992)
	if got := slices.Collect(seq); !slices.Equal(got, []int{1991, 1992}) {
		t.Errorf("YearRange(1990, 1992) = %v, want [1991 1992]", got)
	}
	// Restartable.
	if got := slices.Collect(seq); !slices.Equal(got, []int{1991, 1992}) {
		t.Errorf("second pass = %v, want [1991 1992]", got)
	}
	if got := slices.Collect(YearRange(2000, 2000)); len(got) != 0 {
		t.Errorf("YearRange(2000, 2000) = %v, want empty", got)
	}
	if got := slices.Collect(YearRange(2000, 1990)); len(got) != 0 {
		t.Errorf("YearRange(2000, 1990) = %v, want empty", got)
	}

	var first []int
	for y := range YearRange(0, 100) {
		if len(first) == 3 {
			break
		}
		first = append(first, y)
	}
	if !slices.Equal(first, []int{1, 2, 3}) {
		t.Errorf("early break got %v", first)
	}
}

func TestDefaultYearBounds(t *testing.T) {
	start, end := DefaultYearBounds(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC))
	if start != 1926 || end != 2051 {
		t.Errorf("DefaultYearBounds = (%d, %d), want (1926, 2051)", start, end)
	}
}

func TestCalendarDateTimeRoundTrip(t *testing.T) {
	loc := time.FixedZone("Y", -5*3600)
	tm := time.Date(2024, time.March, 3, 4, 5, 6, 7, loc)
	d := FromTime(tm)
	if !d.Time().Equal(tm) {
		t.Errorf("Time() = %v, want %v", d.Time(), tm)
	}
	if d.String() != "2024-03-03" {
		t.Errorf("String() = %q", d.String())
	}
	if Date(2024, time.March, 3).Time().Location() != time.UTC {
		t.Error("nil location should convert to UTC")
	}
}

func TestCalendarDateValid(t *testing.T) {
	tests := []struct {
		d    CalendarDate
		want bool
	}{
		{Date(2024, time.February, 29), true},
		{Date(2023, time.February, 29), false},
		{Date(2023, time.April, 31), false},
		{Date(2023, 13, 1), false},
		{Date(2023, time.January, 0), false},
	}
	for _, tt := range tests {
		if got := tt.d.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}
