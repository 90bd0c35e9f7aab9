package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/internal/ui"
	"github.com/stepsquad/stepsquad/store"
)

func printDaysTable(w io.Writer, days []*models.Day) {
	data := [][]string{
		{"#", "DATE", "STEPS", "GOAL", "STATUS"},
	}

	for i, day := range days {
		statusText := ui.Red("in progress")
		if day.GoalReached() {
			statusText = ui.Green("reached")
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			day.Date.Format(reportLayout),
			strconv.Itoa(day.Steps),
			strconv.Itoa(day.Goal),
			statusText,
		})
	}

	ui.PrintTable(data, w)
}

// List prints the history rows within the filter's range as a table, or as
// JSON when asJSON is set.
func List(
	w io.Writer,
	db store.DB,
	filter *config.FilterConfig,
	asJSON bool,
) error {
	days, err := db.GetDays(filter.StartTime, filter.EndTime)
	if err != nil {
		return err
	}

	if asJSON {
		if days == nil {
			days = []*models.Day{}
		}

		b, err := json.MarshalIndent(days, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if len(days) == 0 {
		pterm.Info.Println(noDaysMsg)
		return nil
	}

	printDaysTable(w, days)

	return nil
}

// Show computes and prints the statistics for the filter's range.
func Show(
	w io.Writer,
	db store.DB,
	filter *config.FilterConfig,
	asJSON bool,
) error {
	days, err := db.GetDays(filter.StartTime, filter.EndTime)
	if err != nil {
		return err
	}

	s := Compute(days, filter.StartTime, filter.EndTime)

	if asJSON {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	s.Show(w)

	return nil
}
