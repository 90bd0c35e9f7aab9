// Package timeutil provides utility functions and types for working with
// calendar days and reporting periods.
package timeutil

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const dayLayout = "2006-01-02"

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// DayKey converts a time value to the database key of its day.
func DayKey(t time.Time) []byte {
	return []byte(t.Format(dayLayout))
}

// FormatDay formats t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// RangeFor returns the start and end time of the specified period relative
// to now.
func RangeFor(period Period, now time.Time) (start, end time.Time) {
	start = RoundToStart(now)
	end = RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case PeriodToday:
		return
	case PeriodYesterday:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
		end = RoundToEnd(start)

		return
	case PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = RoundToStart(now.AddDate(0, 0, Range[period]))
	}

	return
}

// FromStr parses an absolute or relative date such as "2025-05-01" or
// "3 days ago".
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	t, err := time.ParseInLocation(dayLayout, s, now.Location())
	if err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return dt.Time, nil
}

// DaysBetween returns the number of calendar days from start to end,
// counting both.
func DaysBetween(start, end time.Time) int {
	s := RoundToStart(start)
	e := RoundToStart(end)

	days := 0

	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days++
	}

	return days
}
