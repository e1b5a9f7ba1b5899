// Package uk classifies bank holidays in England and Wales.
//
// A date is checked against the table of one-off exceptions first. Anything
// not in the table falls through to the standing rules: weekends are never
// holidays, the fixed holidays move to the following Monday (or Tuesday)
// when they land on a weekend, and Good Friday and Easter Monday follow
// Easter Sunday.
package uk

import (
	"fmt"
	"time"

	"github.com/therootcompany/bankholiday/time/calendar"
	"github.com/therootcompany/bankholiday/time/easter"
)

// IsBankHoliday satisfies calendar.Classifier
func IsBankHoliday(d calendar.Date) (bool, error) {
	o, err := Classify(d)
	return o.Holiday, err
}

// Classify is IsBankHoliday plus the name of the holiday
func Classify(d calendar.Date) (calendar.Observance, error) {
	if ex, ok := exceptions.Lookup(d); ok {
		return calendar.Observance{Holiday: ex.Holiday, Name: ex.Reason}, nil
	}

	var name string
	var err error
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return calendar.Observance{}, nil
	case time.Monday:
		name, err = monday(d)
	default:
		name, err = midweek(d)
	}
	if err != nil {
		return calendar.Observance{}, fmt.Errorf("uk: %s: %w", calendar.DateOf(d), err)
	}

	return calendar.Observance{Holiday: name != "", Name: name}, nil
}

// Exceptions lists the one-off overrides in date order
func Exceptions() []calendar.ExceptionEntry {
	return exceptions.Sorted()
}

func monday(d calendar.Date) (string, error) {
	day := d.Day()
	switch d.Month() {
	case time.January:
		if day <= 3 {
			return newYear(day), nil
		}
	case time.March, time.April:
		sunday, err := easter.Ordinal(d.Year())
		if err != nil {
			return "", err
		}
		if d.YearDay() == sunday+1 {
			return "Easter Monday", nil
		}
	case time.May:
		if isNthMonday(d, 1) {
			return "Early May Bank Holiday", nil
		}
		if isNthMonday(d, -1) {
			return "Spring Bank Holiday", nil
		}
	case time.August:
		if isNthMonday(d, -1) {
			return "Summer Bank Holiday", nil
		}
	case time.December:
		// Monday can be in lieu of either or both of a weekend Christmas
		return christmas(day, 29), nil
	}
	return "", nil
}

// isNthMonday is true when d is the nth (or, negative, nth from last) Monday
// of its month
func isNthMonday(d calendar.Date, n int) bool {
	t, ok := calendar.GetNthWeekday(d.Year(), d.Month(), time.Monday, n)
	return ok && t.Day() == d.Day()
}

// Tuesday through Friday
func midweek(d calendar.Date) (string, error) {
	day := d.Day()
	switch d.Month() {
	case time.January:
		if day == 1 {
			return newYear(day), nil
		}
	case time.March, time.April:
		sunday, err := easter.Ordinal(d.Year())
		if err != nil {
			return "", err
		}
		if d.YearDay() == sunday-2 {
			return "Good Friday", nil
		}
	case time.December:
		// Tuesday takes Boxing Day when Christmas and Boxing Day are both on the weekend
		end := 27
		if d.Weekday() == time.Tuesday {
			end = 29
		}
		return christmas(day, end), nil
	}
	return "", nil
}

func newYear(day int) string {
	if day == 1 {
		return "New Year's Day"
	}
	return "New Year's Day (substitute day)"
}

// christmas names days in [25, end)
func christmas(day, end int) string {
	if day < 25 || day >= end {
		return ""
	}
	switch day {
	case 25:
		return "Christmas Day"
	case 26:
		return "Boxing Day"
	case 27:
		return "Christmas Day (substitute day)"
	default:
		return "Boxing Day (substitute day)"
	}
}
