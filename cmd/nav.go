package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/nav"
)

// navCmd represents the nav command.
var navCmd = &cobra.Command{
	Use:     "nav",
	Aliases: []string{"go"},
	Short:   "Move between screens",
	Long: `Move between screens. The screen stack is kept between runs.

Examples:
  encore nav
  encore nav push settings
  encore nav replace login
  encore nav back
  encore nav routes`,
	Args: cobra.NoArgs,
	RunE: runNavShow,
}

var navPushCmd = &cobra.Command{
	Use:               "push SCREEN",
	Aliases:           []string{"open"},
	Short:             "Open a screen on top of the current one",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeRoutes,
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := nav.Resolve(args[0])
		if err != nil {
			return err
		}
		if err := ctx.Navigator.Push(route); err != nil {
			return err
		}
		return runNavShow(cmd, nil)
	},
}

var navReplaceCmd = &cobra.Command{
	Use:               "replace SCREEN",
	Short:             "Open a screen and drop the history",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeRoutes,
	RunE: func(cmd *cobra.Command, args []string) error {
		route, err := nav.Resolve(args[0])
		if err != nil {
			return err
		}
		if err := ctx.Navigator.Replace(route); err != nil {
			return err
		}
		return runNavShow(cmd, nil)
	},
}

var navBackCmd = &cobra.Command{
	Use:   "back",
	Short: "Return to the previous screen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ctx.Navigator.Back() {
			if ctx.IsJSON() {
				return ctx.JSONFormatter().PrintNav(ctx.Navigator.Stack())
			}
			ctx.CLIFormatter().Muted("Already on the first screen.")
			return nil
		}
		return runNavShow(cmd, nil)
	},
}

var navShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the screen stack",
	Args:  cobra.NoArgs,
	RunE:  runNavShow,
}

var navRoutesCmd = &cobra.Command{
	Use:     "routes",
	Aliases: []string{"screens"},
	Short:   "List every screen",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintRoutes(nav.Routes)
		}
		ctx.CLIFormatter().PrintRoutes(nav.Routes)
		return nil
	},
}

func init() {
	navCmd.AddCommand(navPushCmd)
	navCmd.AddCommand(navReplaceCmd)
	navCmd.AddCommand(navBackCmd)
	navCmd.AddCommand(navShowCmd)
	navCmd.AddCommand(navRoutesCmd)
	rootCmd.AddCommand(navCmd)
}

func runNavShow(cmd *cobra.Command, args []string) error {
	stack := ctx.Navigator.Stack()
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintNav(stack)
	}
	ctx.CLIFormatter().PrintNav(stack)
	return nil
}
