package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/stepsquad/stepsquad/internal/timeutil"
)

// FilterConfig selects history rows by day.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// Filter builds a history filter from the --period, --start and --end
// flags. It defaults to the last seven days.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return newFilter(
		ctx.String("period"),
		ctx.String("start"),
		ctx.String("end"),
		time.Now(),
	)
}

func newFilter(period, start, end string, now time.Time) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	p := timeutil.Period(strings.TrimSpace(period))

	if p != "" && !slices.Contains(timeutil.PeriodCollection, p) {
		return nil, errInvalidPeriod
	}

	if p == "" && start == "" && end == "" {
		p = timeutil.Period7Days
	}

	if p != "" {
		filterCfg.StartTime, filterCfg.EndTime = timeutil.RangeFor(p, now)

		return filterCfg, nil
	}

	filterCfg.EndTime = timeutil.RoundToEnd(now)

	if start != "" {
		t, err := timeutil.FromStr(start, now)
		if err != nil {
			return nil, errInvalidDate.Fmt(start)
		}

		filterCfg.StartTime = timeutil.RoundToStart(t)
	}

	if end != "" {
		t, err := timeutil.FromStr(end, now)
		if err != nil {
			return nil, errInvalidDate.Fmt(end)
		}

		filterCfg.EndTime = timeutil.RoundToEnd(t)
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}
