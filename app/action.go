package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/stepsquad/stepsquad/activity"
	"github.com/stepsquad/stepsquad/internal/config"
	"github.com/stepsquad/stepsquad/internal/models"
	"github.com/stepsquad/stepsquad/internal/pathutil"
	"github.com/stepsquad/stepsquad/internal/ui"
	"github.com/stepsquad/stepsquad/stats"
	"github.com/stepsquad/stepsquad/stepcounter"
	"github.com/stepsquad/stepsquad/store"
)

const (
	envNoColor          = "NO_COLOR"
	envStepsquadNoColor = "STEPSQUAD_NO_COLOR"
)

const noSavedStepsMsg = "There is no saved step count to reset"

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the configuration from the first run prompt, the config
// file, the environment and the command-line flags, in that order.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithEnvConfig(),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	logLevel.Set(cfg.SlogLevel())

	return cfg, nil
}

// newActivityClient returns the activity API client, or nil when remote sync
// is disabled.
func newActivityClient(cfg *config.Config) (*activity.Client, error) {
	if !cfg.SyncEnabled() {
		return nil, nil
	}

	return activity.New(activity.Options{
		BaseURL:      cfg.API.BaseURL,
		Token:        cfg.API.Token,
		ActivityType: models.ActivityType(cfg.API.ActivityType),
		Timeout:      cfg.API.Timeout,
		Logger:       slog.Default(),
	})
}

// statusAction handles the status command and prints the saved step count
// and today's goal.
func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	client, err := newActivityClient(cfg)
	if err != nil {
		return err
	}

	return printStatus(ctx.Context, config.Stdout, cfg, db, client)
}

// printStatus writes the saved step count against today's goal. The goal
// comes from the activity record when client is set, then today's history
// row, then the configured default.
func printStatus(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	db *store.Client,
	client *activity.Client,
) error {
	var steps int

	value, ok, err := db.GetItem(cfg.Storage.Key)
	if err != nil {
		return err
	}

	if ok {
		steps, _ = stepcounter.ParseSteps(value)
	}

	goal := cfg.Goal.Steps

	day, err := db.GetDay(time.Now())
	if err != nil {
		return err
	}

	if day != nil && day.Goal > 0 {
		goal = day.Goal
	}

	if client != nil {
		reqCtx, cancel := context.WithTimeout(ctx, cfg.API.Timeout)
		defer cancel()

		a, err := client.Today(reqCtx)
		if err != nil {
			pterm.Warning.WithWriter(w).Printfln(
				"unable to fetch today's activity: %v",
				err,
			)
		} else if a.Goal > 0 {
			goal = a.Goal
		}
	}

	text := fmt.Sprintf("%s / %d steps", ui.Green(steps), goal)
	if steps >= goal {
		text += " " + ui.Cyan("(goal reached)")
	}

	fmt.Fprintln(w, text)

	return nil
}

// listAction handles the list command and prints the daily history within a
// time period.
func listAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.List(config.Stdout, db, filter, ctx.Bool("json"))
}

// statsAction computes the stats for the specified time period and prints
// them or serves them over HTTP.
func statsAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("serve") {
		return stats.Serve(ctx.Context, db, ctx.Uint("port"))
	}

	return stats.Show(config.Stdout, db, filter, ctx.Bool("json"))
}

// deleteAction handles the delete command which deletes the daily history
// within a time period.
func deleteAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return stats.Delete(config.Stdin, config.Stdout, db, filter)
}

// resetAction handles the reset command which clears the saved step count
// after confirmation.
func resetAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	return resetSteps(ctx.Context, config.Stdin, config.Stdout, db, cfg.Storage.Key)
}

// resetSteps removes the step count saved under key once the user presses
// ENTER.
func resetSteps(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	db *store.Client,
	key string,
) error {
	value, ok, err := db.GetItem(key)
	if err != nil {
		return err
	}

	if !ok {
		pterm.Info.WithWriter(w).Println(noSavedStepsMsg)
		return nil
	}

	steps, _ := stepcounter.ParseSteps(value)

	warning := pterm.Warning.Sprintf(
		"The saved step count (%s) will be cleared. Press ENTER to proceed",
		strconv.Itoa(steps),
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')

	err = db.RemoveItem(key)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "saved step count cleared",
		slog.Int("steps", steps),
	)

	return nil
}

// editConfigAction handles the edit-config command which opens the stepsquad
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	setupLogging()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STEPSQUAD_NO_COLOR is set
	if _, exists := os.LookupEnv(envStepsquadNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting stepsquad")

	return closeLogging()
}
