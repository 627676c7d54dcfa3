// Package cmd provides the CLI commands for encore.
//
// Copyright (c) Manav Panchal
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Print a completion script for bash, zsh or fish.

Completions are looked up in your local database as you type:
song names for 'playlist remove', screens for 'nav push' and
'nav replace', settings for 'settings toggle' and 'settings set',
and field names for 'signup set' and 'profile set'.

Bash (needs bash-completion v2):
  $ source <(encore completion bash)
  $ encore completion bash > ~/.local/share/bash-completion/completions/encore

Zsh:
  $ encore completion zsh > "${fpath[1]}/_encore"

Fish:
  $ encore completion fish > ~/.config/fish/completions/encore.fish

Start a new shell afterwards.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
