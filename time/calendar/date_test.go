package calendar

import (
	"testing"
	"time"
)

func TestParseExactDate(t *testing.T) {
	d, err := ParseExactDate("2022-09-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != (ExactDate{2022, time.September, 19}) {
		t.Errorf("unexpected date %+v", d)
	}
	if d.String() != "2022-09-19" {
		t.Errorf("expected 2022-09-19, got %s", d)
	}

	for _, bad := range []string{"", "2022-02-30", "19/09/2022", "2022-9-19"} {
		if _, err := ParseExactDate(bad); err == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
}

func TestExactDateIn(t *testing.T) {
	d := ExactDate{1999, time.December, 31}
	got := d.In(nil)
	if got.Location() != time.UTC || got.Format(time.DateOnly) != "1999-12-31" {
		t.Errorf("unexpected time %s", got)
	}
	if DateOf(got) != d {
		t.Errorf("DateOf(%s) != %s", got, d)
	}
}

func TestExceptionTable(t *testing.T) {
	table := ExceptionTable{
		{2020, time.May, 8}:    {true, "moved"},
		{2020, time.May, 4}:    {false, "moved"},
		{1995, time.May, 8}:    {true, "moved"},
		{2011, time.April, 29}: {true, "extra"},
	}

	ex, ok := table.Lookup(time.Date(2020, time.May, 4, 13, 30, 0, 0, time.UTC))
	if !ok || ex.Holiday {
		t.Errorf("expected a forced non-holiday, got %+v (found=%v)", ex, ok)
	}
	if _, ok := table.Lookup(time.Date(2021, time.May, 4, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("did not expect an exception in 2021")
	}

	sorted := table.Sorted()
	want := []string{"1995-05-08", "2011-04-29", "2020-05-04", "2020-05-08"}
	if len(sorted) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(sorted))
	}
	for i, entry := range sorted {
		if entry.Date.String() != want[i] {
			t.Errorf("entry %d: expected %s, got %s", i, want[i], entry.Date)
		}
	}

	sorted[0].Holiday = false
	if !table[ExactDate{1995, time.May, 8}].Holiday {
		t.Error("Sorted must return a copy")
	}
}
