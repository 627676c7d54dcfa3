// Package cmd provides the CLI commands for encore.
//
// Copyright (c) Manav Panchal
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/config"
	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
	"github.com/manav03panchal/encore/internal/output"
	"github.com/manav03panchal/encore/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// skipRuntime lists commands that run without opening the database.
var skipRuntime = map[string]bool{
	"completion": true,
	"help":       true,
	"version":    true,
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "encore",
	Short: "A playlist with undo, plus signup, profile and settings screens",
	Long: `Encore keeps a playlist with full undo and redo history, a signup and
profile form with validation, and the settings for the app, all stored
locally between runs.

Examples:
  encore playlist add "Chill Vibes"
  encore undo
  encore signup set birthDate "March 3 1999"
  encore login ada_l
  encore nav push settings
  encore ui`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if skipRuntime[cmd.Name()] {
			return nil
		}

		cfg, err := config.Load(config.FilePaths()...)
		if err != nil {
			return err
		}

		opts := runtime.DefaultOptions()
		opts.Config = cfg
		opts.Format = parseFormat(flagFormat, cfg.Output.Format, cmd.Flags().Changed("format"))
		opts.ColorMode = parseColor(flagColor, cfg.Output.Color, cmd.Flags().Changed("color"))
		opts.Debug = flagDebug
		opts.Command = strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")

		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current status
		return runStatus(cmd, args)
	},
}

// parseFormat picks the flag value when given, else the configured one.
func parseFormat(flag, configured string, changed bool) output.Format {
	value := configured
	if changed || configured == "" {
		value = flag
	}
	switch value {
	case "json":
		return output.FormatJSON
	case "plain":
		return output.FormatPlain
	default:
		return output.FormatCLI
	}
}

// parseColor picks the flag value when given, else the configured one.
func parseColor(flag, configured string, changed bool) output.ColorMode {
	value := configured
	if changed || configured == "" {
		value = flag
	}
	switch value {
	case "always":
		return output.ColorAlways
	case "never":
		return output.ColorNever
	default:
		return output.ColorAuto
	}
}

// statusCmd shows the home summary.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current screen, account and playlist size",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

// runStatus shows the current screen, signed-in user and playlist size.
func runStatus(cmd *cobra.Command, args []string) error {
	status := ctx.Status()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(status)
	}

	ctx.CLIFormatter().PrintStatus(status)
	return nil
}

// Execute runs the root command and reports any error. It returns the
// error so main can pick the exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	// PersistentPostRunE is skipped when a command fails.
	if ctx != nil {
		if cerr := ctx.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("encore %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// reportError prints err in the selected output format.
func reportError(err error) {
	logging.DebugLog("command failed", logging.KeyError, err, "chain", errors.Chain(err))
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.JSONFormatter().PrintError("error", err.Error(), runtime.GetSuggestion(err), runtime.FieldErrors(err))
		return
	}
	fmt.Fprintln(os.Stderr, "Error: "+runtime.FormatError(err))
}
