// Package calendar holds the date and rule vocabulary shared by the
// per-jurisdiction holiday classifiers, plus business-day arithmetic on top
// of any of them.
package calendar

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// ErrNotImplemented is returned by a classifier for a jurisdiction that has
// no rule set yet. It must never be treated as "not a holiday".
var ErrNotImplemented = errors.New("holiday rules not implemented")

// Date is the read-only view of a calendar day that the classifiers consume.
// time.Time satisfies it.
type Date interface {
	Year() int
	Month() time.Month
	Day() int
	Weekday() time.Weekday
	YearDay() int
}

// Classifier decides whether a date is an observed public holiday
type Classifier func(Date) (bool, error)

// Observance is a classification together with the name of the rule or
// exception that decided it
type Observance struct {
	Holiday bool
	Name    string
}

// Describer is a Classifier that also names the holiday
type Describer func(Date) (Observance, error)

// ExactDate is a single day of a single year
type ExactDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf drops everything but the year, month and day
func DateOf(d Date) ExactDate {
	return ExactDate{d.Year(), d.Month(), d.Day()}
}

// ParseExactDate parses YYYY-MM-DD
func ParseExactDate(s string) (ExactDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return ExactDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (e ExactDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", e.Year, int(e.Month), e.Day)
}

// In returns midnight of the date in loc (UTC when loc is nil)
func (e ExactDate) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(e.Year, e.Month, e.Day, 0, 0, 0, 0, loc)
}

func (e ExactDate) Compare(other ExactDate) int {
	if c := e.Year - other.Year; c != 0 {
		return c
	}
	if c := int(e.Month - other.Month); c != 0 {
		return c
	}
	return e.Day - other.Day
}

// Exception forces the classification of one exact date. Reason is for
// people; it never affects the answer.
type Exception struct {
	Holiday bool
	Reason  string
}

// ExceptionTable holds one-off overrides keyed by exact date
type ExceptionTable map[ExactDate]Exception

// Lookup returns the override for d, if there is one
func (t ExceptionTable) Lookup(d Date) (Exception, bool) {
	ex, ok := t[DateOf(d)]
	return ex, ok
}

type ExceptionEntry struct {
	Date ExactDate
	Exception
}

// Sorted returns a copy of the table in date order
func (t ExceptionTable) Sorted() []ExceptionEntry {
	entries := make([]ExceptionEntry, 0, len(t))
	for date, ex := range t {
		entries = append(entries, ExceptionEntry{date, ex})
	}
	slices.SortFunc(entries, func(a, b ExceptionEntry) int {
		return a.Date.Compare(b.Date)
	})
	return entries
}
