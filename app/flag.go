package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	goalFlag = &cli.IntFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Daily step goal used until the activity record provides one (default: 10000)",
	}

	sourceFlag = &cli.StringFlag{
		Name:  "source",
		Usage: "Pedometer source: simulated or replay",
	}

	replayFlag = &cli.StringFlag{
		Name:    "replay",
		Aliases: []string{"r"},
		Usage:   "Replay recorded step events from a JSON lines file or directory",
	}

	intervalFlag = &cli.DurationFlag{
		Name:  "interval",
		Usage: "How often the simulated pedometer reports steps (default: 1s)",
	}

	apiURLFlag = &cli.StringFlag{
		Name:  "api-url",
		Usage: "Base URL of the activity API. Remote sync is disabled when unset",
	}

	noSyncFlag = &cli.BoolFlag{
		Name:  "no-sync",
		Usage: "Do not fetch or update the remote activity record",
	}

	goalCmdFlag = &cli.StringFlag{
		Name:    "goal-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when the daily goal is reached",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound file (mp3, ogg, flac or wav) to play when the daily goal is reached. Disable sound by setting to 'off'",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when the daily goal is reached",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Specify a time period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days or all-time",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Specify a start date (e.g. 2025-05-01 or '2 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Specify an end date (e.g. 2025-05-07 or yesterday)",
	}

	leaderboardPeriodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Leaderboard period: daily, weekly or monthly",
		Value:   "daily",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the statistics over HTTP instead of printing them",
	}

	statsPortFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the statistics server",
		Value: 1111,
	}
)

func trackFlags() []cli.Flag {
	return []cli.Flag{
		goalFlag,
		sourceFlag,
		replayFlag,
		intervalFlag,
		apiURLFlag,
		noSyncFlag,
		goalCmdFlag,
		soundFlag,
		disableNotificationFlag,
		logLevelFlag,
	}
}
