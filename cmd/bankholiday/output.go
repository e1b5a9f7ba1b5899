package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/therootcompany/bankholiday/time/calendar"
)

var (
	dateColor    = color.New(color.FgCyan)
	holidayColor = color.New(color.FgGreen, color.Bold)
	plainColor   = color.New(color.Faint)
	warnColor    = color.New(color.FgYellow)
)

// parseDate accepts YYYY-MM-DD, today, tomorrow or yesterday.
// The result is midnight UTC.
func (cfg *CLIConfig) parseDate(s string) (time.Time, error) {
	today := calendar.DateOf(cfg.now()).In(time.UTC)
	switch strings.ToLower(s) {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	d, err := calendar.ParseExactDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return d.In(time.UTC), nil
}

func checkYear(year int) error {
	if year < 1583 || year > 9999 {
		return fmt.Errorf("year must be from 1583 to 9999, not %d", year)
	}
	return nil
}

// printObservance writes e.g. "2017-04-14 Fri  holiday  Good Friday"
func printObservance(w io.Writer, t time.Time, o calendar.Observance) {
	day := t.Weekday().String()[:3]
	if !o.Holiday {
		_, _ = fmt.Fprintf(w, "%s %s  %s\n", dateColor.Sprint(t.Format(time.DateOnly)), day, plainColor.Sprint("not a holiday"))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s  %s  %s\n", dateColor.Sprint(t.Format(time.DateOnly)), day, holidayColor.Sprint("holiday"), o.Name)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
