package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/form"
)

// profileCmd represents the profile command.
var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"me"},
	Short:   "Show the account and edit the profile form",
	Long: `Show the account on this device, or fill in and submit the profile form.

Fields: username, email, genre.

Examples:
  encore profile
  encore profile set username=neo_99 email=neo@example.com
  encore profile set genre Jazz
  encore profile form
  encore profile submit`,
	Args: cobra.NoArgs,
	RunE: runProfileAccount,
}

var profileSetCmd = &cobra.Command{
	Use:   "set FIELD=VALUE... | FIELD VALUE | FIELD",
	Short: "Set form fields",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := ctx.ProfileDraft
		results, err := setFields(d, args)
		if err != nil {
			return err
		}
		return printFieldResults(d, results)
	},
	ValidArgsFunction: completeFields(func() []string { return ctx.ProfileDraft.FieldNames() }),
}

var profileFormCmd = &cobra.Command{
	Use:     "form",
	Aliases: []string{"show"},
	Short:   "Show the profile form and its preview",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := ctx.ProfileDraft
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintForm(d.Name(), d.Fields(), d.Errors())
		}

		cli := ctx.CLIFormatter()
		cli.PrintFields("Profile Form", d.Fields(), d.Errors())
		if f := d.Data(); f.ShowPreview() {
			name := f.Username
			if name == "" {
				name = "Your Name"
			}
			cli.Println()
			cli.PrintPreview(name, f.Email, f.Genre)
		}
		return nil
	},
}

var profileSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and submit the profile form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		submitted, err := form.SubmitProfile(ctx.ProfileDraft)
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintAction("submitted", "Profile submitted for "+submitted.Username)
		}
		cli := ctx.CLIFormatter()
		cli.Success("Profile submitted")
		cli.PrintPreview(submitted.Username, submitted.Email, submitted.Genre)
		return nil
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the profile form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return clearDraft(ctx.ProfileDraft, "Profile form")
	},
}

func init() {
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileFormCmd)
	profileCmd.AddCommand(profileSubmitCmd)
	profileCmd.AddCommand(profileClearCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileAccount(cmd *cobra.Command, args []string) error {
	profile, err := ctx.Accounts.Profile()
	if errors.Is(err, errors.ErrNotSignedUp) {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintAction("no_account", "No account on this device")
		}
		cli := ctx.CLIFormatter()
		cli.Muted("No account on this device.")
		cli.Muted("Create one with 'encore signup'.")
		return nil
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProfile(profile)
	}
	ctx.CLIFormatter().PrintProfile(profile)
	return nil
}
