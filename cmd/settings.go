package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/settings"
)

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change settings",
	Long: `Show and change settings.

Settings:
  notifications  Push notifications (default on)
  dark-mode      Dark theme for the terminal UI and output (default off)

Examples:
  encore settings
  encore settings toggle dark-mode
  encore settings set notifications off`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show every setting",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsToggleCmd = &cobra.Command{
	Use:               "toggle SETTING",
	Short:             "Flip a setting",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := settings.ParseName(args[0])
		if err != nil {
			return err
		}
		value, err := ctx.Settings.Toggle(name)
		if err != nil {
			return err
		}
		return reportSetting(name, value)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:               "set SETTING on|off",
	Short:             "Turn a setting on or off",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := settings.ParseName(args[0])
		if err != nil {
			return err
		}
		value, err := settings.ParseBool(args[1])
		if err != nil {
			return err
		}
		if err := ctx.Settings.Set(name, value); err != nil {
			return err
		}
		return reportSetting(name, value)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsToggleCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	current, err := ctx.Settings.Get()
	if err != nil {
		return err
	}

	values := settings.Values(current)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(values)
	}
	cli := ctx.CLIFormatter()
	cli.Title("Settings")
	cli.PrintSettings(values)
	return nil
}

func reportSetting(name string, value bool) error {
	state := "off"
	if value {
		state = "on"
	}
	message := name + " turned " + state

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAction("ok", message)
	}
	ctx.CLIFormatter().Success(message)
	return nil
}
