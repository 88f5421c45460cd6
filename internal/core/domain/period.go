package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/apperrors"
)

// Period is a named look-back window used for count-by-period statistics.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Periods lists every period from the narrowest window to the widest.
var Periods = []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear}

// ParsePeriod converts a period token. Matching is case-insensitive; any other
// token is a validation error.
func ParsePeriod(token string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(token))); p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return p, nil
	default:
		return "", fmt.Errorf("%w: invalid period %q, expected one of week, month, quarter, year", apperrors.ErrValidation, token)
	}
}

// Window returns the inclusive range ending at anchor and reaching back one period.
func (p Period) Window(anchor time.Time) Window {
	var start time.Time
	switch p {
	case PeriodWeek:
		start = anchor.AddDate(0, 0, -7)
	case PeriodMonth:
		start = addMonthsClamped(anchor, -1)
	case PeriodQuarter:
		start = addMonthsClamped(anchor, -3)
	case PeriodYear:
		start = addMonthsClamped(anchor, -12)
	default:
		panic(fmt.Sprintf("domain: unhandled period %q", string(p)))
	}
	return Window{Start: start, End: anchor}
}

// addMonthsClamped shifts t by n months, clamping the day to the end of the
// target month instead of overflowing into the next one (Mar 31 - 1 month = Feb 28/29).
func addMonthsClamped(t time.Time, n int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

// Window is an inclusive [Start, End] range on operation date/time.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate rejects windows whose start is after their end.
func (w Window) Validate() error {
	if w.Start.After(w.End) {
		return fmt.Errorf("%w: start date must not be after end date", apperrors.ErrValidation)
	}
	return nil
}

// Contains reports whether t lies inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// LastMonth is the default export and category report window: one month back from now.
func LastMonth(now time.Time) Window {
	return PeriodMonth.Window(now)
}

// LastYear is the default dashboard window: one year back from now.
func LastYear(now time.Time) Window {
	return PeriodYear.Window(now)
}
