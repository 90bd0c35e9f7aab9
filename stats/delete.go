package stats

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/store"
)

// Delete removes the history rows that fall in the filter's range. It asks
// for confirmation before the rows are removed permanently.
func Delete(
	r io.Reader,
	w io.Writer,
	db store.DB,
	filter *config.FilterConfig,
) error {
	days, err := db.GetDays(filter.StartTime, filter.EndTime)
	if err != nil {
		return err
	}

	if len(days) == 0 {
		pterm.Info.Println(noDaysMsg)
		return nil
	}

	printDaysTable(w, days)

	warning := pterm.Warning.Sprint(
		"The above days will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')

	dates := make([]time.Time, 0, len(days))
	for _, day := range days {
		dates = append(dates, day.Date)
	}

	return db.DeleteDays(dates)
}
