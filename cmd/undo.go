package cmd

import (
	"github.com/spf13/cobra"
)

// undoCmd is a shortcut for playlist undo.
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last playlist change",
	Long: `Undo the last playlist change. The undone change can be redone until
the playlist is changed again.

Examples:
  encore undo
  encore redo`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

// redoCmd is a shortcut for playlist redo.
var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Redo the last undone playlist change",
	Args:  cobra.NoArgs,
	RunE:  runRedo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(redoCmd)
}
