// Package stats reports daily step history and aggregate statistics
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/internal/timeutil"
	"github.com/stepsquad/stepsquad/internal/ui"
)

const (
	barChartChar = "▇"
	noDaysMsg    = "No step history found for the specified time range"
	reportLayout = "January 02, 2006"
)

// Stats summarises the step history of a reporting period.
type Stats struct {
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	BestDay       *models.Day   `json:"best_day,omitempty"`
	Days          []*models.Day `json:"days"`
	TotalSteps    int           `json:"total_steps"`
	AverageSteps  int           `json:"average_steps"`
	DaysTracked   int           `json:"days_tracked"`
	GoalDays      int           `json:"goal_days"`
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
}

// Compute aggregates the history rows that fall between start and end. A
// zero start means all-time, in which case the period begins on the first
// recorded day.
func Compute(days []*models.Day, start, end time.Time) *Stats {
	s := &Stats{
		StartTime: start,
		EndTime:   end,
		Days:      make([]*models.Day, 0, len(days)),
	}

	for _, day := range days {
		if day == nil || day.Date.Before(timeutil.RoundToStart(start)) ||
			day.Date.After(end) {
			continue
		}

		s.Days = append(s.Days, day)
	}

	if s.StartTime.IsZero() && len(s.Days) > 0 {
		s.StartTime = timeutil.RoundToStart(s.Days[0].Date)
	}

	s.DaysTracked = len(s.Days)

	for _, day := range s.Days {
		s.TotalSteps += day.Steps

		if day.GoalReached() {
			s.GoalDays++
		}

		if s.BestDay == nil || day.Steps > s.BestDay.Steps {
			s.BestDay = day
		}
	}

	if s.StartTime.IsZero() {
		return s
	}

	numberOfDays := timeutil.DaysBetween(s.StartTime, s.EndTime)
	if numberOfDays > 0 {
		s.AverageSteps = s.TotalSteps / numberOfDays
	}

	s.CurrentStreak, s.LongestStreak = streaks(s.Days, s.StartTime, s.EndTime)

	return s
}

// streaks counts runs of consecutive calendar days on which the goal was
// reached. The current streak ends on the last day of the period, or the day
// before it when the last day is still short of its goal.
func streaks(days []*models.Day, start, end time.Time) (current, longest int) {
	reached := make(map[string]bool, len(days))

	for _, day := range days {
		reached[timeutil.FormatDay(day.Date)] = day.GoalReached()
	}

	run := 0

	for d := timeutil.RoundToStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if !reached[timeutil.FormatDay(d)] {
			run = 0
			continue
		}

		run++

		longest = max(longest, run)
	}

	d := timeutil.RoundToStart(end)
	if !reached[timeutil.FormatDay(d)] {
		d = d.AddDate(0, 0, -1)
	}

	for ; !d.Before(timeutil.RoundToStart(start)); d = d.AddDate(0, 0, -1) {
		if !reached[timeutil.FormatDay(d)] {
			break
		}

		current++
	}

	return current, longest
}

// ToJSON renders the statistics as indented JSON.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

func (s *Stats) summary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	lines := []string{
		fmt.Sprintln("Total steps:", ui.Green(s.TotalSteps)),
		fmt.Sprintln("Average per day:", ui.Green(s.AverageSteps)),
		fmt.Sprintln("Days tracked:", ui.Green(s.DaysTracked)),
		fmt.Sprintln("Goal reached:", ui.Green(fmt.Sprintf("%d days", s.GoalDays))),
		fmt.Sprintln("Current streak:", ui.Green(fmt.Sprintf("%d days", s.CurrentStreak))),
		fmt.Sprintln("Longest streak:", ui.Green(fmt.Sprintf("%d days", s.LongestStreak))),
	}

	if s.BestDay != nil {
		lines = append(lines, fmt.Sprintf(
			"Best day: %s (%s steps)\n",
			s.BestDay.Date.Format(reportLayout),
			ui.Green(s.BestDay.Steps),
		))
	}

	return header + strings.Join(lines, "")
}

func (s *Stats) barChart() string {
	if len(s.Days) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (steps)")

	bars := make(pterm.Bars, 0, len(s.Days))

	for _, day := range s.Days {
		bars = append(bars, pterm.Bar{
			Label: day.Date.Format("Jan 02"),
			Value: day.Steps,
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show writes the statistics for the reporting period to w.
func (s *Stats) Show(w io.Writer) {
	if s.DaysTracked == 0 {
		pterm.Info.Println(noDaysMsg)
		return
	}

	timePeriod := "Reporting period: " + s.StartTime.Format(reportLayout) +
		" - " + s.EndTime.Format(reportLayout)

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	output := fmt.Sprint(header, s.summary(), s.barChart())

	fmt.Fprintln(w, strings.TrimSpace(output))
}
