package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/form"
)

// signupCmd represents the signup command.
var signupCmd = &cobra.Command{
	Use:     "signup",
	Aliases: []string{"register"},
	Short:   "Fill in and submit the signup form",
	Long: `Fill in and submit the signup form. Values are checked as they are set
and the form is kept between runs until it is submitted.

Fields: firstName, lastName, password, birthDate (or month, day, year),
username, email, genre.

Examples:
  encore signup set firstName=Ada lastName=Lovelace
  encore signup set birthDate "March 3 1999"
  encore signup set password
  encore signup show
  encore signup submit`,
	Args: cobra.NoArgs,
	RunE: runSignupShow,
}

var signupSetCmd = &cobra.Command{
	Use:   "set FIELD=VALUE... | FIELD VALUE | FIELD",
	Short: "Set form fields",
	Long: `Set one or more fields. With only a field name the value is prompted
for. Password input is hidden.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := ctx.SignupDraft
		results, err := setFields(d, args)
		if err != nil {
			return err
		}
		return printFieldResults(d, results)
	},
	ValidArgsFunction: completeFields(func() []string { return ctx.SignupDraft.FieldNames() }),
}

var signupShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the form and its preview",
	Args:  cobra.NoArgs,
	RunE:  runSignupShow,
}

var signupSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Create the account",
	Args:  cobra.NoArgs,
	RunE:  runSignupSubmit,
}

var signupClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return clearDraft(ctx.SignupDraft, "Signup form")
	},
}

func init() {
	signupCmd.AddCommand(signupSetCmd)
	signupCmd.AddCommand(signupShowCmd)
	signupCmd.AddCommand(signupSubmitCmd)
	signupCmd.AddCommand(signupClearCmd)
	rootCmd.AddCommand(signupCmd)
}

func runSignupShow(cmd *cobra.Command, args []string) error {
	d := ctx.SignupDraft
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintForm(d.Name(), d.Fields(), d.Errors())
	}

	cli := ctx.CLIFormatter()
	cli.PrintFields("Sign Up", d.Fields(), d.Errors())
	if f := d.Data(); f.ShowPreview() {
		cli.Println()
		cli.PrintPreview(f.DisplayName(), f.Email, f.Genre)
	}
	return nil
}

func runSignupSubmit(cmd *cobra.Command, args []string) error {
	profile, err := form.SubmitSignup(ctx.SignupDraft, ctx.Accounts, ctx.Navigator)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintProfile(profile)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Account created for " + profile.FullName)
	cli.PrintProfile(profile)
	cli.Muted("Sign in with 'encore login " + profile.Username + "'.")
	return nil
}
