// Package bankholiday answers whether a date is an observed public holiday
// in a given jurisdiction.
//
//	ok, err := bankholiday.IsHoliday(time.Now(), bankholiday.UK)
//	ok, err := bankholiday.On(time.Now()).IsHoliday(bankholiday.UK)
//
// Jurisdictions without rules return calendar.ErrNotImplemented rather than
// a guess.
package bankholiday

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/therootcompany/bankholiday/time/calendar"
	"github.com/therootcompany/bankholiday/time/calendar/uk"
	"github.com/therootcompany/bankholiday/time/calendar/us"
)

var ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

type Jurisdiction string

const (
	UK Jurisdiction = "uk"
	US Jurisdiction = "us"
)

type rules struct {
	classify calendar.Classifier
	describe calendar.Describer
	// nil until the jurisdiction has rules
	exceptions func() []calendar.ExceptionEntry
	// IANA zone that decides what "today" is; empty means the host's zone
	zone string
}

// adding a jurisdiction means adding a package with a calendar.Classifier
// and listing it here
var jurisdictions = map[Jurisdiction]rules{
	UK: {uk.IsBankHoliday, uk.Classify, uk.Exceptions, "Europe/London"},
	US: {us.IsBankHoliday, us.Classify, nil, ""},
}

var aliases = map[string]Jurisdiction{
	"uk":             UK,
	"gb":             UK,
	"england":        UK,
	"united kingdom": UK,
	"us":             US,
	"usa":            US,
	"united states":  US,
}

// ParseJurisdiction accepts a jurisdiction code or a common alias
func ParseJurisdiction(s string) (Jurisdiction, error) {
	j, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q (use one of %s)", ErrUnknownJurisdiction, s, joinJurisdictions())
	}
	return j, nil
}

// Jurisdictions lists every known jurisdiction, implemented or not
func Jurisdictions() []Jurisdiction {
	js := make([]Jurisdiction, 0, len(jurisdictions))
	for j := range jurisdictions {
		js = append(js, j)
	}
	slices.Sort(js)
	return js
}

func joinJurisdictions() string {
	var names []string
	for _, j := range Jurisdictions() {
		names = append(names, string(j))
	}
	return strings.Join(names, ", ")
}

// Location is the time zone whose calendar date counts as "today" in j.
// Jurisdictions spanning several zones use the host's local zone.
func Location(j Jurisdiction) (*time.Location, error) {
	r, ok := jurisdictions[j]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, string(j))
	}
	if r.zone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(r.zone)
}

// Classifier returns the rule set for j
func Classifier(j Jurisdiction) (calendar.Classifier, error) {
	r, ok := jurisdictions[j]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, string(j))
	}
	return r.classify, nil
}

// Describe classifies d and names the holiday, if it is one
func Describe(d calendar.Date, j Jurisdiction) (calendar.Observance, error) {
	r, ok := jurisdictions[j]
	if !ok {
		return calendar.Observance{}, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, string(j))
	}
	return r.describe(d)
}

// Exceptions lists the one-off overrides of j, by date
func Exceptions(j Jurisdiction) ([]calendar.ExceptionEntry, error) {
	r, ok := jurisdictions[j]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJurisdiction, string(j))
	}
	if r.exceptions == nil {
		return nil, fmt.Errorf("%s: %w", j, calendar.ErrNotImplemented)
	}
	return r.exceptions(), nil
}

// IsHoliday reports whether d is an observed public holiday in j
func IsHoliday(d calendar.Date, j Jurisdiction) (bool, error) {
	c, err := Classifier(j)
	if err != nil {
		return false, err
	}
	return c(d)
}

// MustIsHoliday panics where IsHoliday would return an error
func MustIsHoliday(d calendar.Date, j Jurisdiction) bool {
	ok, err := IsHoliday(d, j)
	if err != nil {
		panic(err)
	}
	return ok
}

// Calendar returns business-day arithmetic for j
func Calendar(j Jurisdiction) (calendar.BusinessCalendar, error) {
	c, err := Classifier(j)
	if err != nil {
		return calendar.BusinessCalendar{}, err
	}
	return calendar.NewBusinessCalendar(c), nil
}

// Day adds holiday methods to a time.Time
type Day struct {
	time.Time
}

func On(t time.Time) Day {
	return Day{t}
}

func (d Day) IsHoliday(j Jurisdiction) (bool, error) {
	return IsHoliday(d, j)
}

func (d Day) IsUKBankHoliday() (bool, error) {
	return IsHoliday(d, UK)
}
