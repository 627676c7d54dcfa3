package cmd

import (
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/config"
	"github.com/manav03panchal/encore/internal/output"
	"github.com/manav03panchal/encore/internal/runtime"
	"github.com/manav03panchal/encore/internal/storage"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show the effective configuration",
	Long: `Show the effective configuration. Values come from the defaults, then
each config file that exists (later files win), then ENCORE_* environment
variables, then command flags.

Examples:
  encore config
  encore config paths
  encore config --format json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the config files that are read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := configFiles()
		if ctx.IsJSON() {
			return ctx.Formatter.PrintJSON(files)
		}

		cli := ctx.CLIFormatter()
		for _, f := range files {
			state := "missing"
			if f.Exists {
				state = "loaded"
			}
			cli.Printf("  %-7s  %s\n", state, f.Path)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathsCmd)
	rootCmd.AddCommand(configCmd)
}

// configFile is a config file candidate.
type configFile struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

func configFiles() []configFile {
	paths := config.FilePaths()
	files := make([]configFile, len(paths))
	for i, p := range paths {
		_, err := os.Stat(p)
		files[i] = configFile{Path: p, Exists: err == nil}
	}
	return files
}

// configResponse is the JSON form of the effective configuration.
type configResponse struct {
	Config   *config.RuntimeConfig `json:"config"`
	Database string                `json:"database"`
	Files    []configFile          `json:"files"`
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := ctx.Config
	database := ctx.DB.Path()
	if database == "" {
		database = runtime.MemoryPath
	}

	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(configResponse{Config: cfg, Database: database, Files: configFiles()})
	}

	historyLimit := strconv.Itoa(cfg.Playlist.HistoryLimit)
	if cfg.Playlist.HistoryLimit == 0 {
		historyLimit = "unlimited"
	}

	cli := ctx.CLIFormatter()
	cli.Title("Configuration")
	cli.PrintTable([]string{"KEY", "VALUE"}, []output.TableRow{
		{Columns: []string{"storage.path", database}},
		{Columns: []string{"storage.min_free_space", humanize.IBytes(cfg.Storage.MinFreeSpace)}},
		{Columns: []string{"storage.min_free_space_warning", humanize.IBytes(cfg.Storage.MinFreeSpaceWarning)}},
		{Columns: []string{"playlist.history_limit", historyLimit}},
		{Columns: []string{"output.format", cfg.Output.Format}},
		{Columns: []string{"output.color", cfg.Output.Color}},
		{Columns: []string{"login.bcrypt_cost", strconv.Itoa(cfg.Login.BcryptCost)}},
	})
	cli.Println()
	cli.Muted("Default database: " + storage.DefaultPath())
	return nil
}
