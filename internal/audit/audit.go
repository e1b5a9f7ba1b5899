// Package audit compares a holiday classifier against an independent
// reference calendar, day by day. Disagreements usually mean a one-off
// proclamation that the exception table has not caught up with.
package audit

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/gb"

	"github.com/therootcompany/bankholiday/time/calendar"
)

// Reference reports whether the other calendar observes a holiday on t
type Reference func(t time.Time) bool

type Mismatch struct {
	Date      calendar.ExactDate
	Weekday   time.Weekday
	Ours      bool
	Reference bool
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s (%s): ours=%v reference=%v", m.Date, m.Weekday.String()[:3], m.Ours, m.Reference)
}

// Compare walks every day from one date to another, inclusive
func Compare(from, to time.Time, ours calendar.Classifier, ref Reference) ([]Mismatch, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("audit: %s is before %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	from = calendar.DateOf(from).In(time.UTC)
	to = calendar.DateOf(to).In(time.UTC)

	var mismatches []Mismatch
	for t := from; !t.After(to); t = t.AddDate(0, 0, 1) {
		holiday, err := ours(t)
		if err != nil {
			return nil, err
		}
		if other := ref(t); other != holiday {
			mismatches = append(mismatches, Mismatch{
				Date:      calendar.DateOf(t),
				Weekday:   t.Weekday(),
				Ours:      holiday,
				Reference: other,
			})
		}
	}
	return mismatches, nil
}

// ByYear counts mismatches per year
func ByYear(mismatches []Mismatch) map[int]int {
	counts := make(map[int]int)
	for _, m := range mismatches {
		counts[m.Date.Year]++
	}
	return counts
}

// GBReference uses the England and Wales holidays from github.com/rickar/cal
func GBReference() Reference {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(gb.Holidays...)
	return func(t time.Time) bool {
		_, observed, _ := c.IsHoliday(t)
		return observed
	}
}
