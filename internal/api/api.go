// Package api serves holiday lookups over HTTP as JSON
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/therootcompany/bankholiday"
	"github.com/therootcompany/bankholiday/http/middleware"
	"github.com/therootcompany/bankholiday/time/calendar"
	"github.com/therootcompany/bankholiday/time/easter"
)

type API struct {
	StartTime time.Time
	Version   string
	Logger    *zap.Logger
	// Jurisdiction answers /api/today
	Jurisdiction bankholiday.Jurisdiction
	// Now is used for "today" and default years; time.Now when nil
	Now func() time.Time
}

type APIStatus struct {
	Version    string  `json:"version,omitempty"`
	APISeconds float64 `json:"api_seconds"`
	APIUptime  string  `json:"api_uptime"`
}

type Holiday struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	Jurisdiction string `json:"jurisdiction"`
	Holiday      bool   `json:"holiday"`
	Name         string `json:"name,omitempty"`
	Occurrence   string `json:"occurrence"`
}

type HolidayList struct {
	Jurisdiction string    `json:"jurisdiction"`
	Year         int       `json:"year"`
	Holidays     []Holiday `json:"holidays"`
}

type Easter struct {
	Year         int    `json:"year"`
	GoodFriday   string `json:"good_friday"`
	EasterSunday string `json:"easter_sunday"`
	EasterMonday string `json:"easter_monday"`
}

type BusinessDay struct {
	Jurisdiction string `json:"jurisdiction"`
	From         string `json:"from"`
	N            int    `json:"n"`
	Direction    string `json:"direction"`
	Date         string `json:"date"`
}

type Error struct {
	Error string `json:"error"`
}

// Register adds every route to m
func (a *API) Register(m middleware.Mux) {
	m.HandleFunc("GET /api/status", a.instrument("status", a.HandleStatus))
	m.HandleFunc("GET /api/today", a.instrument("today", a.HandleToday))
	m.HandleFunc("GET /api/holidays/{jurisdiction}", a.instrument("holidays_year", a.HandleYear))
	m.HandleFunc("GET /api/holidays/{jurisdiction}/{date}", a.instrument("holidays_date", a.HandleHoliday))
	m.HandleFunc("GET /api/easter/{year}", a.instrument("easter", a.HandleEaster))
	m.HandleFunc("GET /api/business-days/{jurisdiction}/{date}", a.instrument("business_days", a.HandleBusinessDays))
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *API) HandleStatus(w http.ResponseWriter, r *http.Request) {
	apiUptime := time.Since(a.StartTime)
	writeJSON(w, http.StatusOK, APIStatus{
		Version:    a.Version,
		APISeconds: apiUptime.Seconds(),
		APIUptime:  formatUptime(apiUptime),
	})
}

func (a *API) HandleToday(w http.ResponseWriter, r *http.Request) {
	j := a.Jurisdiction
	if j == "" {
		j = bankholiday.UK
	}
	date, err := a.today(j)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.describe(w, j, date)
}

func (a *API) HandleHoliday(w http.ResponseWriter, r *http.Request) {
	j, err := bankholiday.ParseJurisdiction(r.PathValue("jurisdiction"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	date, err := a.parseDate(j, r.PathValue("date"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.describe(w, j, date)
}

func (a *API) describe(w http.ResponseWriter, j bankholiday.Jurisdiction, date calendar.ExactDate) {
	t := date.In(nil)
	o, err := bankholiday.Describe(t, j)
	if err != nil {
		a.writeError(w, err)
		return
	}
	classifications.WithLabelValues(string(j), strconv.FormatBool(o.Holiday)).Inc()

	writeJSON(w, http.StatusOK, holiday(t, j, o))
}

func (a *API) HandleYear(w http.ResponseWriter, r *http.Request) {
	j, err := bankholiday.ParseJurisdiction(r.PathValue("jurisdiction"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	year := a.now().Year()
	if s := r.URL.Query().Get("year"); s != "" {
		year, err = parseYear(s)
		if err != nil {
			a.writeError(w, err)
			return
		}
	}

	list := HolidayList{Jurisdiction: string(j), Year: year, Holidays: []Holiday{}}
	for t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); t.Year() == year; t = t.AddDate(0, 0, 1) {
		o, err := bankholiday.Describe(t, j)
		if err != nil {
			a.writeError(w, err)
			return
		}
		if o.Holiday {
			list.Holidays = append(list.Holidays, holiday(t, j, o))
		}
	}

	writeJSON(w, http.StatusOK, list)
}

func (a *API) HandleEaster(w http.ResponseWriter, r *http.Request) {
	year, err := parseYear(r.PathValue("year"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	sunday, err := easter.Sunday(year, nil)
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Easter{
		Year:         year,
		GoodFriday:   sunday.AddDate(0, 0, -2).Format(time.DateOnly),
		EasterSunday: sunday.Format(time.DateOnly),
		EasterMonday: sunday.AddDate(0, 0, 1).Format(time.DateOnly),
	})
}

func (a *API) HandleBusinessDays(w http.ResponseWriter, r *http.Request) {
	j, err := bankholiday.ParseJurisdiction(r.PathValue("jurisdiction"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	date, err := a.parseDate(j, r.PathValue("date"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	query := r.URL.Query()
	n := 1
	if s := query.Get("n"); s != "" {
		n, err = strconv.Atoi(s)
		if err != nil || n < 0 || n > 366 {
			a.writeError(w, badRequest("n must be a number from 0 to 366, not %q", s))
			return
		}
	}
	direction := query.Get("direction")
	if direction == "" {
		direction = "after"
	}

	cal, err := bankholiday.Calendar(j)
	if err != nil {
		a.writeError(w, err)
		return
	}

	var result time.Time
	switch direction {
	case "after":
		result, err = cal.NthBankDayAfter(date.In(nil), n)
	case "before":
		result, err = cal.NthBankDayBefore(date.In(nil), n)
	default:
		err = badRequest("direction must be 'before' or 'after', not %q", direction)
	}
	if err != nil {
		a.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, BusinessDay{
		Jurisdiction: string(j),
		From:         date.String(),
		N:            n,
		Direction:    direction,
		Date:         result.Format(time.DateOnly),
	})
}

func holiday(t time.Time, j bankholiday.Jurisdiction, o calendar.Observance) Holiday {
	return Holiday{
		Date:         t.Format(time.DateOnly),
		Weekday:      t.Weekday().String(),
		Jurisdiction: string(j),
		Holiday:      o.Holiday,
		Name:         o.Name,
		Occurrence:   calendar.Occurrence(t),
	}
}

type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string {
	return e.msg
}

func badRequest(format string, args ...any) error {
	return badRequestError{fmt.Sprintf(format, args...)}
}

// today is the current date in j's time zone
func (a *API) today(j bankholiday.Jurisdiction) (calendar.ExactDate, error) {
	loc, err := bankholiday.Location(j)
	if err != nil {
		return calendar.ExactDate{}, err
	}
	return calendar.DateOf(a.now().In(loc)), nil
}

func (a *API) parseDate(j bankholiday.Jurisdiction, s string) (calendar.ExactDate, error) {
	if s == "today" {
		return a.today(j)
	}
	d, err := calendar.ParseExactDate(s)
	if err != nil {
		return d, badRequestError{err.Error()}
	}
	if d.Year < 1583 || d.Year > 9999 {
		return d, badRequest("year must be from 1583 to 9999, not %04d", d.Year)
	}
	return d, nil
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1583 || year > 9999 {
		return 0, badRequest("year must be from 1583 to 9999, not %q", s)
	}
	return year, nil
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var badReq badRequestError
	switch {
	case errors.As(err, &badReq):
		status = http.StatusBadRequest
	case errors.Is(err, bankholiday.ErrUnknownJurisdiction):
		status = http.StatusNotFound
	case errors.Is(err, calendar.ErrNotImplemented):
		status = http.StatusNotImplemented
	}

	if status == http.StatusInternalServerError && a.Logger != nil {
		a.Logger.Error("holiday lookup failed", zap.Error(err))
	}
	writeJSON(w, status, Error{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}
