package calendar

import (
	"fmt"
	"time"
)

// GetSuffixEnglish returns the ordinal suffix of n, as in 1st, 12th or 23rd
func GetSuffixEnglish(n int) string {
	switch tens := n % 100; {
	case tens >= 11 && tens <= 13:
		return "th"
	case n%10 == 1:
		return "st"
	case n%10 == 2:
		return "nd"
	case n%10 == 3:
		return "rd"
	}
	return "th"
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// the 0th day of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Returns which nth weekday of the month the target date is (e.g. 2nd Tuesday)
func NthWeekday(d Date) int {
	return (d.Day()-1)/7 + 1
}

// NthWeekdayFromEnd is NthWeekday counted backwards, so 1 is the last Monday
// (or Tuesday, etc) of the month
func NthWeekdayFromEnd(d Date) int {
	lastDay := DaysIn(d.Year(), d.Month())
	return (lastDay-d.Day())/7 + 1
}

// GetNthWeekday can find the 1st, 2nd, 3rd, 4th (and sometimes 5th) Monday, etc of the given month.
// Negative n counts from the end of the month.
func GetNthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, bool) {
	if n == 0 {
		return time.Time{}, false
	}

	if n < 0 {
		last := time.Date(year, month, DaysIn(year, month), 0, 0, 0, 0, time.UTC)
		daysToSub := int(last.Weekday() - weekday)
		if daysToSub < 0 {
			daysToSub += 7
		}
		target := last.AddDate(0, 0, -daysToSub+(n+1)*7)
		if target.Month() != month {
			return time.Time{}, false
		}
		return target, true
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysToAdd := int(weekday - first.Weekday())
	if daysToAdd < 0 {
		daysToAdd += 7
	}
	target := first.AddDate(0, 0, daysToAdd+(n-1)*7)
	if target.Month() != month {
		return time.Time{}, false
	}
	return target, true
}

// Occurrence names which weekday of its month d is, such as
// "1st Monday of May" or "last Monday of August"
func Occurrence(d Date) string {
	if NthWeekdayFromEnd(d) == 1 {
		return fmt.Sprintf("last %s of %s", d.Weekday(), d.Month())
	}
	n := NthWeekday(d)
	return fmt.Sprintf("%d%s %s of %s", n, GetSuffixEnglish(n), d.Weekday(), d.Month())
}

// IsWeekend reports whether d falls on a Saturday or Sunday
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
