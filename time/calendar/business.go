package calendar

import (
	"errors"
	"time"
)

// ErrNoHoliday is returned when no holiday turns up within the search window
var ErrNoHoliday = errors.New("no holiday found within two years")

const maxSearchDays = 2 * 366

// BusinessCalendar does business-day arithmetic on top of a jurisdiction's
// Classifier. Errors from the classifier (such as ErrNotImplemented) are
// passed through rather than guessed around.
type BusinessCalendar struct {
	Classify Classifier
}

func NewBusinessCalendar(classify Classifier) BusinessCalendar {
	return BusinessCalendar{Classify: classify}
}

// IsBusinessDay is true for weekdays that are not holidays.
// Weekends forced to holidays by an exception table are still not business days.
func (c BusinessCalendar) IsBusinessDay(t time.Time) (bool, error) {
	holiday, err := c.Classify(t)
	if err != nil {
		return false, err
	}
	if IsWeekend(t) {
		return false, nil
	}
	return !holiday, nil
}

// NthBankDayBefore is useful for calculating transactions that must occur such
// that they will complete by the target date. For example, if you want money to be in
// your account by the 1st each month, and the transfer takes 3 business days, and this
// month's 1st is a Monday that happens to be a bank holiday, this would return the previous
// Tuesday.
func (c BusinessCalendar) NthBankDayBefore(t time.Time, n int) (time.Time, error) {
	ok, err := c.IsBusinessDay(t)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		n++
	}
	for n > 0 {
		t = t.AddDate(0, 0, -1)
		ok, err := c.IsBusinessDay(t)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			n--
		}
	}
	return t, nil
}

// NthBankDayAfter returns the nth business day strictly after t
func (c BusinessCalendar) NthBankDayAfter(t time.Time, n int) (time.Time, error) {
	for n > 0 {
		t = t.AddDate(0, 0, 1)
		ok, err := c.IsBusinessDay(t)
		if err != nil {
			return time.Time{}, err
		}
		if ok {
			n--
		}
	}
	return t, nil
}

// NextHoliday returns the first holiday strictly after t
func (c BusinessCalendar) NextHoliday(t time.Time) (time.Time, error) {
	for range maxSearchDays {
		t = t.AddDate(0, 0, 1)
		holiday, err := c.Classify(t)
		if err != nil {
			return time.Time{}, err
		}
		if holiday {
			return t, nil
		}
	}
	return time.Time{}, ErrNoHoliday
}

// HolidaysIn lists every holiday of the year, at midnight in loc (UTC when nil)
func (c BusinessCalendar) HolidaysIn(year int, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	var days []time.Time
	for t := time.Date(year, time.January, 1, 0, 0, 0, 0, loc); t.Year() == year; t = t.AddDate(0, 0, 1) {
		holiday, err := c.Classify(t)
		if err != nil {
			return nil, err
		}
		if holiday {
			days = append(days, t)
		}
	}
	return days, nil
}
