package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
     _                                       _
 ___| |_ ___ _ __  ___  __ _ _   _  __ _  __| |
/ __| __/ _ \ '_ \/ __|/ _' | | | |/ _' |/ _' |
\__ \ ||  __/ |_) \__ \ (_| | |_| | (_| | (_| |
|___/\__\___| .__/|___/\__, |\__,_|\__,_|\__,_|
            |_|           |_|`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Source string
	Goal   int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It only prompts when the config file does not exist.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure stepsquad for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'stepsquad edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Daily step goal").
				Options(
					huh.NewOption("5,000 steps", 5000),
					huh.NewOption("7,500 steps", 7500),
					huh.NewOption("10,000 steps", 10000).Selected(true),
					huh.NewOption("12,500 steps", 12500),
					huh.NewOption("15,000 steps", 15000),
				).
				Value(&opts.Goal),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Step source").
				Options(
					huh.NewOption("Simulated pedometer", SourceSimulated).Selected(true),
					huh.NewOption("Replay recorded events", SourceReplay),
				).
				Value(&opts.Source),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Goal.Steps = opts.Goal
	c.Sensor.Source = opts.Source
}
