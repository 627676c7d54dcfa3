package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/tui"
)

// uiCmd opens the interactive playlist screen.
var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "app"},
	Short:   "Open the interactive playlist",
	Long: `Open the interactive playlist. Add, remove and search songs, and undo or
redo every change. The keys are listed at the bottom of the screen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx.Log.Debug("opening playlist screen")
		return tui.Run(tui.PlaylistConfig{
			Store: ctx.Playlist,
			Theme: ctx.Theme,
			Now:   ctx.Now,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
