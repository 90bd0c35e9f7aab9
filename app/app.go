package app

import (
	"slices"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/stepsquad/stepsquad/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the stepsquad app instance.
func Get() *cli.App {
	filterFlags := []cli.Flag{
		periodFlag,
		startFlag,
		endFlag,
	}

	stepsquadApp := &cli.App{
		Name: "stepsquad",
		Usage: `
		stepsquad counts your steps from the command-line. It reconciles a
		pedometer stream with the total saved on disk, tracks your progress
		towards a daily goal, and keeps your activity record in sync.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "track",
				Usage:  "Count steps live and keep the daily total in sync (default)",
				Flags:  trackFlags(),
				Action: trackAction,
			},
			{
				Name:   "status",
				Usage:  "Print the saved step count and today's goal",
				Action: statusAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the daily step history. Defaults to the last 7 days",
				Flags:   slices.Concat(filterFlags, []cli.Flag{jsonFlag}),
				Action:  listAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with aggregate statistics. Defaults to a
				reporting period of 7 days`,
				Flags: slices.Concat(
					filterFlags,
					[]cli.Flag{jsonFlag, serveFlag, statsPortFlag},
				),
				Action: statsAction,
			},
			{
				Name:   "delete",
				Usage:  "Delete daily history in the specified time range",
				Flags:  filterFlags,
				Action: deleteAction,
			},
			{
				Name:   "leaderboard",
				Usage:  "Show where you rank by total steps for a day, week or month",
				Flags:  []cli.Flag{leaderboardPeriodFlag, jsonFlag},
				Action: leaderboardAction,
			},
			{
				Name:   "reset",
				Usage:  "Clear the saved step count",
				Action: resetAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append(trackFlags(), noColorFlag),
		Action: trackAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return stepsquadApp
}
