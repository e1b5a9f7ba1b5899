// Package easter computes the date of Easter Sunday in the Gregorian calendar
// and the movable feasts that hang off it.
package easter

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate means the computus produced a month and day that the
// calendar could not represent for the given year. It should never happen.
var ErrInvalidDate = errors.New("computus produced an unrepresentable date")

// DateError reports the year, month and day that failed to round-trip
type DateError struct {
	Year  int
	Month time.Month
	Day   int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("easter %d: %04d-%02d-%02d: %s", e.Year, e.Year, int(e.Month), e.Day, ErrInvalidDate)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDate
}

// Date returns the month and day of Easter Sunday for a proleptic Gregorian
// year, using the anonymous Gregorian (Meeus/Jones/Butcher) algorithm.
func Date(year int) (time.Month, int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := h + l - 7*m + 114

	return time.Month(n / 31), n%31 + 1
}

// Ordinal returns the 1-based day of the year (as time.Time.YearDay counts
// it) on which Easter Sunday falls.
func Ordinal(year int) (int, error) {
	month, day := Date(year)
	return ordinal(year, month, day)
}

// MustOrdinal is Ordinal for callers that treat a computus failure as fatal
func MustOrdinal(year int) int {
	n, err := Ordinal(year)
	if err != nil {
		panic(err)
	}
	return n
}

func ordinal(year int, month time.Month, day int) (int, error) {
	t, err := construct(year, month, day, time.UTC)
	if err != nil {
		return 0, err
	}
	return t.YearDay(), nil
}

// time.Date normalizes out-of-range values (April 31st becomes May 1st),
// so anything that doesn't come back unchanged is rejected.
func construct(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if y, m, d := t.Date(); y != year || m != month || d != day {
		return time.Time{}, &DateError{Year: year, Month: month, Day: day}
	}
	return t, nil
}

// Sunday returns midnight of Easter Sunday in loc (UTC when loc is nil)
func Sunday(year int, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	month, day := Date(year)
	return construct(year, month, day, loc)
}

// GoodFriday returns the Friday before Easter Sunday
func GoodFriday(year int, loc *time.Location) (time.Time, error) {
	return offset(year, -2, loc)
}

// EasterMonday returns the Monday after Easter Sunday
func EasterMonday(year int, loc *time.Location) (time.Time, error) {
	return offset(year, 1, loc)
}

func offset(year, days int, loc *time.Location) (time.Time, error) {
	t, err := Sunday(year, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, days), nil
}
