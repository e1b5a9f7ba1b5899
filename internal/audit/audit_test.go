package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therootcompany/bankholiday/time/calendar"
	"github.com/therootcompany/bankholiday/time/calendar/uk"
	"github.com/therootcompany/bankholiday/time/calendar/us"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCompare(t *testing.T) {
	// pretends the 2022 jubilee never happened
	ref := func(d time.Time) bool {
		switch d.Format(time.DateOnly) {
		case "2022-05-30", "2022-06-01":
			return true
		}
		return false
	}
	ours := func(d calendar.Date) (bool, error) {
		switch calendar.DateOf(d).String() {
		case "2022-06-01", "2022-06-02", "2022-06-03":
			return true, nil
		}
		return false, nil
	}

	mismatches, err := Compare(date("2022-05-01"), date("2022-06-30"), ours, ref)
	require.NoError(t, err)
	require.Len(t, mismatches, 3)

	assert.Equal(t, "2022-05-30", mismatches[0].Date.String())
	assert.False(t, mismatches[0].Ours)
	assert.True(t, mismatches[0].Reference)
	assert.Equal(t, time.Monday, mismatches[0].Weekday)

	assert.Equal(t, "2022-06-02", mismatches[1].Date.String())
	assert.Equal(t, "2022-06-03", mismatches[2].Date.String())
	assert.Equal(t, "2022-06-03 (Fri): ours=true reference=false", mismatches[2].String())

	assert.Equal(t, map[int]int{2022: 3}, ByYear(mismatches))
}

func TestCompareInclusive(t *testing.T) {
	always := func(calendar.Date) (bool, error) { return true, nil }
	never := func(time.Time) bool { return false }

	mismatches, err := Compare(date("2022-01-01"), date("2022-01-01"), always, never)
	require.NoError(t, err)
	assert.Len(t, mismatches, 1)

	_, err = Compare(date("2022-01-02"), date("2022-01-01"), always, never)
	assert.Error(t, err)
}

func TestComparePropagatesErrors(t *testing.T) {
	_, err := Compare(date("2022-01-01"), date("2022-01-31"), us.IsBankHoliday, func(time.Time) bool { return false })
	assert.ErrorIs(t, err, calendar.ErrNotImplemented)
}

func TestGBReference(t *testing.T) {
	ref := GBReference()
	assert.True(t, ref(date("2017-04-14")), "Good Friday")
	assert.True(t, ref(date("2017-12-25")), "Christmas Day")
	assert.False(t, ref(date("2017-04-16")), "Easter Sunday")

	ours, err := uk.IsBankHoliday(date("2017-04-14"))
	require.NoError(t, err)
	assert.Equal(t, ours, ref(date("2017-04-14")))
}
