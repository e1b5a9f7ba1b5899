package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/therootcompany/bankholiday"
	"github.com/therootcompany/bankholiday/internal/audit"
	"github.com/therootcompany/bankholiday/time/calendar"
	"github.com/therootcompany/bankholiday/time/easter"
)

func newIsCmd(cfg *CLIConfig) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "is [date...]",
		Short: "Check dates (default today); exits 1 if any is not a holiday",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"today"}
			}

			allHolidays := true
			for _, arg := range args {
				t, err := cfg.parseDate(arg)
				if err != nil {
					return err
				}
				o, err := bankholiday.Describe(t, cfg.j)
				if err != nil {
					return err
				}
				allHolidays = allHolidays && o.Holiday
				if !quiet {
					printObservance(cmd.OutOrStdout(), t, o)
				}
			}

			if !allHolidays {
				return errNotHoliday
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing, only set the exit status")

	return cmd
}

func newListCmd(cfg *CLIConfig) *cobra.Command {
	var year int
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every holiday of a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = cfg.now().Year()
			}
			if err := checkYear(year); err != nil {
				return err
			}

			bc, err := bankholiday.Calendar(cfg.j)
			if err != nil {
				return err
			}
			days, err := bc.HolidaysIn(year, time.UTC)
			if err != nil {
				return err
			}

			var cw *csv.Writer
			if asCSV {
				cw = csv.NewWriter(cmd.OutOrStdout())
				_ = cw.Write([]string{"date", "weekday", "occurrence", "name"})
			}
			for _, t := range days {
				o, err := bankholiday.Describe(t, cfg.j)
				if err != nil {
					return err
				}
				if cw != nil {
					_ = cw.Write([]string{t.Format(time.DateOnly), t.Weekday().String(), calendar.Occurrence(t), o.Name})
					continue
				}
				printObservance(cmd.OutOrStdout(), t, o)
			}
			if cw != nil {
				cw.Flush()
				return cw.Error()
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year to list (default this year)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV with a header row")

	return cmd
}

func newNextCmd(cfg *CLIConfig) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "next [date]",
		Short: "Show the next holidays on or after a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, not %d", count)
			}
			start := "today"
			if len(args) > 0 {
				start = args[0]
			}
			t, err := cfg.parseDate(start)
			if err != nil {
				return err
			}

			bc, err := bankholiday.Calendar(cfg.j)
			if err != nil {
				return err
			}
			// NextHoliday is exclusive
			t = t.AddDate(0, 0, -1)
			for range count {
				if t, err = bc.NextHoliday(t); err != nil {
					return err
				}
				o, err := bankholiday.Describe(t, cfg.j)
				if err != nil {
					return err
				}
				printObservance(cmd.OutOrStdout(), t, o)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many holidays to show")

	return cmd
}

func newEasterCmd(cfg *CLIConfig) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "easter",
		Short: "Show Good Friday, Easter Sunday and Easter Monday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = cfg.now().Year()
			}
			if err := checkYear(year); err != nil {
				return err
			}

			feasts := []struct {
				name string
				at   func(int, *time.Location) (time.Time, error)
			}{
				{"Good Friday", easter.GoodFriday},
				{"Easter Sunday", easter.Sunday},
				{"Easter Monday", easter.EasterMonday},
			}
			w := cmd.OutOrStdout()
			for _, f := range feasts {
				t, err := f.at(year, time.UTC)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "%-14s %s %s\n", f.name, dateColor.Sprint(t.Format(time.DateOnly)), t.Weekday().String()[:3])
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Year (default this year)")

	return cmd
}

func newWorkdaysCmd(cfg *CLIConfig) *cobra.Command {
	var before, after int

	cmd := &cobra.Command{
		Use:   "workdays [date]",
		Short: "Count business days before or after a date (default today)",
		Long: `Count business days before or after a date (default today).

--before counts back such that work started on the result has N business
days to finish by the date. --after returns the Nth business day after the
date. Without either, --after 1 is assumed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if before < 0 || after < 0 {
				return fmt.Errorf("--before and --after must not be negative")
			}
			start := "today"
			if len(args) > 0 {
				start = args[0]
			}
			t, err := cfg.parseDate(start)
			if err != nil {
				return err
			}

			bc, err := bankholiday.Calendar(cfg.j)
			if err != nil {
				return err
			}
			var result time.Time
			if cmd.Flags().Changed("before") {
				result, err = bc.NthBankDayBefore(t, before)
			} else {
				if !cmd.Flags().Changed("after") {
					after = 1
				}
				result, err = bc.NthBankDayAfter(t, after)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", dateColor.Sprint(result.Format(time.DateOnly)), result.Weekday().String()[:3])
			return nil
		},
	}
	cmd.Flags().IntVar(&before, "before", 0, "Business days before the date")
	cmd.Flags().IntVar(&after, "after", 0, "Business days after the date")
	cmd.MarkFlagsMutuallyExclusive("before", "after")

	return cmd
}

func newExceptionsCmd(cfg *CLIConfig) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "exceptions",
		Short: "List the one-off dates that override the usual rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := bankholiday.Exceptions(cfg.j)
			if err != nil {
				return err
			}
			if asCSV {
				return writeExceptionsCSV(cmd.OutOrStdout(), entries)
			}

			w := cmd.OutOrStdout()
			for _, e := range entries {
				t := e.Date.In(time.UTC)
				status := holidayColor.Sprint("holiday    ")
				if !e.Holiday {
					status = plainColor.Sprint("not holiday")
				}
				_, _ = fmt.Fprintf(w, "%s %s  %s  %s\n", dateColor.Sprint(e.Date), t.Weekday().String()[:3], status, e.Reason)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV with a header row")

	return cmd
}

func writeExceptionsCSV(w io.Writer, entries []calendar.ExceptionEntry) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "holiday", "reason"})
	for _, e := range entries {
		_ = cw.Write([]string{e.Date.String(), fmt.Sprint(e.Holiday), e.Reason})
	}
	cw.Flush()
	return cw.Error()
}

func newAuditCmd(cfg *CLIConfig) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Compare uk holidays with github.com/rickar/cal's England and Wales calendar",
		Long: `Compare uk holidays with github.com/rickar/cal's England and Wales calendar.

Differences usually mean a one-off holiday is missing from one of the two
exception tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.j != bankholiday.UK {
				return fmt.Errorf("audit: no reference calendar for %s", cfg.j)
			}
			if !cmd.Flags().Changed("to") {
				to = cfg.now().Year()
			}
			if err := checkYear(from); err != nil {
				return err
			}
			if err := checkYear(to); err != nil {
				return err
			}

			ours, err := bankholiday.Classifier(cfg.j)
			if err != nil {
				return err
			}
			start := time.Date(from, time.January, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(to, time.December, 31, 0, 0, 0, 0, time.UTC)
			mismatches, err := audit.Compare(start, end, ours, audit.GBReference())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(mismatches) == 0 {
				_, _ = fmt.Fprintf(w, "no differences from %d to %d\n", from, to)
				return nil
			}
			for _, m := range mismatches {
				_, _ = fmt.Fprintln(w, warnColor.Sprint(m.String()))
			}

			counts := audit.ByYear(mismatches)
			years := make([]int, 0, len(counts))
			for y := range counts {
				years = append(years, y)
			}
			slices.Sort(years)
			_, _ = fmt.Fprintln(w)
			for _, y := range years {
				_, _ = fmt.Fprintf(w, "%d: %d %s\n", y, counts[y], plural(counts[y], "difference", "differences"))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 1995, "First year to compare")
	cmd.Flags().IntVar(&to, "to", 0, "Last year to compare (default this year)")

	return cmd
}
