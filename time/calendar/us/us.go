// Package us reserves the slot for United States federal holidays.
// No rules exist yet, so every query fails with calendar.ErrNotImplemented.
package us

import (
	"fmt"

	"github.com/therootcompany/bankholiday/time/calendar"
)

// IsBankHoliday satisfies calendar.Classifier
func IsBankHoliday(d calendar.Date) (bool, error) {
	return false, fmt.Errorf("us: %s: %w", calendar.DateOf(d), calendar.ErrNotImplemented)
}

// Classify satisfies calendar.Describer
func Classify(d calendar.Date) (calendar.Observance, error) {
	_, err := IsBankHoliday(d)
	return calendar.Observance{}, err
}
