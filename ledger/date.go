package ledger

import (
	"fmt"
	"time"
)

// DateFormat is the on-disk representation of a calendar day, ISO-8601.
const DateFormat = "2006-01-02"

// readDateFormat is permissive on read (allows single-digit month/day).
const readDateFormat = "2006-1-2"

// ClockFormat is the on-disk representation of a time of day.
const ClockFormat = "15:04"

// Date is a calendar day (year, month, day) with no time-of-day or
// location attached. It is the partition key for all per-day aggregation.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(readDateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t.Date()), nil
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

// Year returns the year.
func (d Date) Year() int { return d.y }

// Month returns the month.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week, time.Sunday = 0.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(DateFormat) }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	p, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// time returns the canonical time.Time for that day, midnight UTC.
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// IsLeapYear reports whether year is a Gregorian leap year: divisible by
// four, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Clock is a time of day with minute granularity. It orders trades within
// a day for display and carries no aggregation meaning.
type Clock struct {
	h int
	m int
}

// NewClock returns a Clock for the given hour and minute.
func NewClock(hour, minute int) Clock { return Clock{hour, minute} }

// ParseClock parses an HH:MM string into a Clock.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return Clock{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return Clock{t.Hour(), t.Minute()}, nil
}

// ClockOf truncates a time.Time to its hour and minute.
func ClockOf(t time.Time) Clock { return Clock{t.Hour(), t.Minute()} }

// Hour returns the hour, 0-23.
func (c Clock) Hour() int { return c.h }

// Minute returns the minute, 0-59.
func (c Clock) Minute() int { return c.m }

// String formats the clock as HH:MM.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.h, c.m) }

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(b []byte) error {
	p, err := ParseClock(string(b))
	if err != nil {
		return err
	}
	*c = p
	return nil
}
