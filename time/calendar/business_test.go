package calendar

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func fixedHolidays(dates ...string) Classifier {
	set := make(map[ExactDate]struct{}, len(dates))
	for _, s := range dates {
		d, err := ParseExactDate(s)
		if err != nil {
			panic(err)
		}
		set[d] = struct{}{}
	}
	return func(d Date) (bool, error) {
		_, ok := set[DateOf(d)]
		return ok, nil
	}
}

func notImplemented(Date) (bool, error) {
	return false, ErrNotImplemented
}

type businessDaysBeforeTest struct {
	start string
	n     int
	want  string
}

func TestNthBankDayBefore(t *testing.T) {
	tests := []businessDaysBeforeTest{
		{"2025-11-10T12:00:01Z", 1, "2025-11-07T12:00:01Z"}, // Mon → Fri
		{"2025-11-10T12:00:02Z", 2, "2025-11-06T12:00:02Z"}, // Mon → Thu
		{"2025-11-08T12:00:03Z", 1, "2025-11-06T12:00:03Z"}, // Sat (non-biz) → count 2 → Thu
		{"2025-11-11T12:00:04Z", 1, "2025-11-10T12:00:04Z"}, // Tue → Mon
		{"2025-11-27T12:00:04Z", 1, "2025-11-25T12:00:04Z"}, // Thu (holiday) → count 2 → Tue
		{"2025-12-26T12:00:05Z", 1, "2025-12-23T12:00:05Z"}, // Fri → Tue (skip Xmas, Xmas Eve)
		{"2025-12-31T12:00:06Z", 1, "2025-12-29T12:00:06Z"}, // NYE (non-biz) → count 2 → Mon
	}
	cal := NewBusinessCalendar(fixedHolidays("2025-11-27", "2025-12-24", "2025-12-25", "2025-12-31"))

	for _, tt := range tests {
		t.Run(tt.start+"_"+strconv.Itoa(tt.n), func(t *testing.T) {
			start, _ := time.Parse(time.RFC3339, tt.start)
			got, err := cal.NthBankDayBefore(start, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want, _ := time.Parse(time.RFC3339, tt.want)
			if !got.Equal(want) {
				t.Errorf("For %d days before %s got %s, want %s", tt.n, tt.start, got.Format(time.RFC3339), want.Format(time.RFC3339))
			}
		})
	}
}

func TestNthBankDayAfter(t *testing.T) {
	cal := NewBusinessCalendar(fixedHolidays("2025-12-25", "2025-12-26", "2026-01-01"))

	tests := []businessDaysBeforeTest{
		{"2025-12-24T09:00:00Z", 1, "2025-12-29T09:00:00Z"}, // Wed → Mon over Christmas and the weekend
		{"2025-12-24T09:00:00Z", 3, "2025-12-31T09:00:00Z"},
		{"2025-12-31T09:00:00Z", 1, "2026-01-02T09:00:00Z"}, // skip New Year's Day
		{"2025-12-27T09:00:00Z", 1, "2025-12-29T09:00:00Z"}, // Sat → Mon
		{"2025-12-29T09:00:00Z", 0, "2025-12-29T09:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.start+"_"+strconv.Itoa(tt.n), func(t *testing.T) {
			start, _ := time.Parse(time.RFC3339, tt.start)
			got, err := cal.NthBankDayAfter(start, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(time.RFC3339) != tt.want {
				t.Errorf("For %d days after %s got %s, want %s", tt.n, tt.start, got.Format(time.RFC3339), tt.want)
			}
		})
	}
}

func TestIsBusinessDay(t *testing.T) {
	// a forced weekend holiday is still not a business day
	cal := NewBusinessCalendar(fixedHolidays("2022-06-03", "2022-06-04"))

	tests := map[string]bool{
		"2022-06-02": true,
		"2022-06-03": false,
		"2022-06-04": false,
		"2022-06-05": false,
		"2022-06-06": true,
	}
	for date, want := range tests {
		d, _ := time.Parse(time.DateOnly, date)
		got, err := cal.IsBusinessDay(d)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", date, err)
		}
		if got != want {
			t.Errorf("%s: expected %v, got %v", date, want, got)
		}
	}
}

func TestNextHoliday(t *testing.T) {
	cal := NewBusinessCalendar(fixedHolidays("2022-06-02", "2022-06-03", "2022-09-19"))

	start := time.Date(2022, time.June, 2, 8, 0, 0, 0, time.UTC)
	got, err := cal.NextHoliday(start)
	if err != nil {
		t.Fatal(err)
	}
	if got.Format(time.DateOnly) != "2022-06-03" {
		t.Errorf("expected 2022-06-03, got %s", got.Format(time.DateOnly))
	}

	got, err = cal.NextHoliday(got)
	if err != nil {
		t.Fatal(err)
	}
	if got.Format(time.DateOnly) != "2022-09-19" {
		t.Errorf("expected 2022-09-19, got %s", got.Format(time.DateOnly))
	}

	_, err = cal.NextHoliday(got)
	if !errors.Is(err, ErrNoHoliday) {
		t.Errorf("expected ErrNoHoliday, got %v", err)
	}
}

func TestHolidaysIn(t *testing.T) {
	cal := NewBusinessCalendar(fixedHolidays("2021-12-31", "2022-01-03", "2022-12-27", "2023-01-02"))

	days, err := cal.HolidaysIn(2022, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 holidays, got %d", len(days))
	}
	if days[0].Format(time.DateOnly) != "2022-01-03" || days[1].Format(time.DateOnly) != "2022-12-27" {
		t.Errorf("unexpected holidays %v", days)
	}
}

func TestBusinessCalendarPropagatesErrors(t *testing.T) {
	cal := NewBusinessCalendar(notImplemented)
	now := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)

	if _, err := cal.IsBusinessDay(now); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("IsBusinessDay: expected ErrNotImplemented, got %v", err)
	}
	if _, err := cal.NthBankDayBefore(now, 1); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("NthBankDayBefore: expected ErrNotImplemented, got %v", err)
	}
	if _, err := cal.NthBankDayAfter(now, 1); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("NthBankDayAfter: expected ErrNotImplemented, got %v", err)
	}
	if _, err := cal.NextHoliday(now); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("NextHoliday: expected ErrNotImplemented, got %v", err)
	}
	if _, err := cal.HolidaysIn(2022, nil); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("HolidaysIn: expected ErrNotImplemented, got %v", err)
	}
}
