package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/internal/ui"
)

const noLeaderboardMsg = "There are no steps recorded for this period yet"

// ordinal returns n with its English ordinal suffix, e.g. 1st or 12th.
func ordinal(n int) string {
	suffix := "th"

	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// printLeaderboard writes the ranking as a table, or as JSON. The row that
// belongs to userID is marked when userID is non-zero.
func printLeaderboard(
	w io.Writer,
	entries []models.LeaderboardEntry,
	userID int64,
	asJSON bool,
) error {
	if asJSON {
		if entries == nil {
			entries = []models.LeaderboardEntry{}
		}

		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if len(entries) == 0 {
		pterm.Info.WithWriter(w).Println(noLeaderboardMsg)
		return nil
	}

	data := [][]string{{"#", "NAME", "STEPS"}}

	for i := range entries {
		e := &entries[i]

		name := e.Name()
		if userID != 0 && e.ID == userID {
			name += " " + ui.Cyan("(you)")
			fmt.Fprintf(w, "Your position: %s\n", ui.Green(ordinal(e.Position)))
		}

		data = append(data, []string{
			ordinal(e.Position),
			name,
			strconv.Itoa(e.TotalSteps),
		})
	}

	ui.PrintTable(data, w)

	return nil
}

// leaderboardAction handles the leaderboard command which prints the users
// ranked by total steps for a period.
func leaderboardAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	client, err := newActivityClient(cfg)
	if err != nil {
		return err
	}

	if client == nil {
		return errSyncDisabled.Fmt("leaderboard")
	}

	period := models.LeaderboardPeriod(
		strings.ToUpper(strings.TrimSpace(ctx.String("period"))),
	)

	reqCtx, cancel := context.WithTimeout(ctx.Context, cfg.API.Timeout)
	defer cancel()

	entries, err := client.Leaderboard(reqCtx, period)
	if err != nil {
		return err
	}

	var userID int64

	// today's record identifies the current user
	a, err := client.Today(reqCtx)
	if err != nil {
		slog.WarnContext(ctx.Context, "unable to identify the current user",
			slog.Any("error", err),
		)
	} else {
		userID = a.UserID
	}

	return printLeaderboard(config.Stdout, entries, userID, ctx.Bool("json"))
}
