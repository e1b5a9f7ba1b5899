package us

import (
	"errors"
	"testing"
	"time"

	"github.com/therootcompany/bankholiday/time/calendar"
)

func TestNotImplemented(t *testing.T) {
	for _, d := range []time.Time{
		time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
	} {
		_, err := IsBankHoliday(d)
		if !errors.Is(err, calendar.ErrNotImplemented) {
			t.Errorf("%s: expected ErrNotImplemented, got %v", d.Format(time.DateOnly), err)
		}
		if _, err := Classify(d); !errors.Is(err, calendar.ErrNotImplemented) {
			t.Errorf("%s: Classify: expected ErrNotImplemented, got %v", d.Format(time.DateOnly), err)
		}
	}
}
