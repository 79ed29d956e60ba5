package datafiles

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, rejecting combinations that do not exist in the calendar.
func NewDate(year int, month time.Month, day int) (Date, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func firstOfMonth(year int, month time.Month) Date {
	return DateOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

func lastOfMonth(year int, month time.Month) Date {
	// Day zero of the following month normalises to the last day of month.
	return DateOf(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a YYYY-MM-DD date.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(dateLayout, string(text))
	if err != nil {
		return fmt.Errorf("datafiles: parse date %q: %w", string(text), err)
	}
	*d = DateOf(t)
	return nil
}

// DateRange is the period a datafile covers. Both ends are nil for undated frequencies.
type DateRange struct {
	Start *Date `json:"start_date"`
	End   *Date `json:"end_date"`
}

// IsEmpty reports whether neither end of the range is set.
func (r DateRange) IsEmpty() bool {
	return r.Start == nil && r.End == nil
}

func newRange(start, end Date) DateRange {
	return DateRange{Start: &start, End: &end}
}
