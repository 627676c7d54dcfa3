package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/output"
)

// loginCmd represents the login command.
var loginCmd = &cobra.Command{
	Use:     "login [USERNAME|EMAIL]",
	Aliases: []string{"signin"},
	Short:   "Sign in to the account on this device",
	Long: `Sign in with the username or email of the account on this device. The
password is prompted for, or read from the first line of standard input
when it is not a terminal.

Examples:
  encore login ada_l
  echo "$PASSWORD" | encore login ada@example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"signout"},
	Short:   "Sign out and return to the login screen",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ctx.Accounts.Logout(); err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintAction("signed_out", "Signed out")
		}
		ctx.CLIFormatter().Success("Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, profile, err := ctx.Accounts.Current()
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintProfile(profile)
		}
		cli := ctx.CLIFormatter()
		cli.PrintProfile(profile)
		cli.Muted("Signed in " + output.FormatAge(session.SignedInAt, ctx.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	var (
		identifier string
		err        error
	)
	if len(args) == 1 {
		identifier = args[0]
	} else if identifier, err = readValue("Username or email"); err != nil {
		return err
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return errors.NewUserErrorWithField("identifier", "", "Username or email is required", "Run 'encore login USERNAME'.")
	}

	password, err := readSecret("Password")
	if err != nil {
		return err
	}

	session, err := ctx.Accounts.Login(identifier, password)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAction("signed_in", "Signed in as "+session.Username)
	}
	ctx.CLIFormatter().Success("Signed in as " + session.Username)
	return nil
}
