package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/storage"
)

var (
	doctorBackup bool
	doctorDump   string
)

// doctorCmd checks the local database.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local database and disk space",
	Long: `Check that every stored document can be read and that the disk holding
the database has room to spare. Damaged documents are reset to their
defaults the next time they are loaded.

Examples:
  encore doctor
  encore doctor --backup
  encore doctor --dump encore.json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorBackup, "backup", false, "Copy the database directory before checking")
	doctorCmd.Flags().StringVar(&doctorDump, "dump", "", "Write every stored document to FILE as JSON (- for stdout)")
	rootCmd.AddCommand(doctorCmd)
}

// doctorReport is the JSON form of a doctor run.
type doctorReport struct {
	Integrity *storage.RecoveryStatus `json:"integrity"`
	Database  string                  `json:"database"`
	FreeBytes uint64                  `json:"free_bytes,omitempty"`
	FreePct   float64                 `json:"free_percent,omitempty"`
	LowSpace  bool                    `json:"low_space"`
	Backup    string                  `json:"backup,omitempty"`
	Dumped    int                     `json:"dumped,omitempty"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	report := doctorReport{Database: ctx.DB.Path()}

	if doctorBackup {
		if report.Database == "" {
			return errors.NewUserError("Nothing to back up", "The database is in memory for this run.")
		}
		backup, err := storage.CreateBackup(report.Database)
		if err != nil {
			return errors.Wrap(err, "backup failed")
		}
		report.Backup = backup
	}

	report.Integrity = storage.CheckDatabaseIntegrity(ctx.DB)

	if report.Database != "" {
		if info, err := storage.GetDiskSpace(report.Database); err == nil {
			report.FreeBytes = info.FreeBytes
			report.FreePct = info.FreePercent()
			report.LowSpace = info.FreeBytes < ctx.Config.Storage.MinFreeSpaceWarning
		}
	}

	if doctorDump != "" {
		n, err := dumpDatabase(doctorDump)
		if err != nil {
			return err
		}
		report.Dumped = n
	}

	if ctx.IsJSON() {
		if doctorDump == "-" {
			return nil
		}
		return ctx.Formatter.PrintJSON(report)
	}
	if doctorDump != "-" {
		printDoctorReport(report)
	}
	return nil
}

func dumpDatabase(path string) (int, error) {
	if path == "-" {
		return storage.Dump(ctx.DB, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create dump file")
	}
	defer f.Close()
	return storage.Dump(ctx.DB, f)
}

func printDoctorReport(r doctorReport) {
	cli := ctx.CLIFormatter()
	cli.Title("Database")

	if r.Database == "" {
		cli.Muted("  In memory for this run")
	} else {
		cli.Printf("  %s\n", r.Database)
	}

	if r.Integrity.Healthy {
		cli.Success("Checked " + humanize.Comma(int64(r.Integrity.KeysChecked)) + " documents, all readable")
	} else {
		cli.Error("Found " + humanize.Comma(int64(r.Integrity.ErrorCount)) + " damaged documents")
		for _, e := range r.Integrity.Errors {
			cli.Muted("  " + e)
		}
		if r.Integrity.Recoverable {
			cli.Muted("Damaged documents are reset to defaults when next loaded.")
		}
	}

	if r.FreeBytes > 0 {
		free := fmt.Sprintf("%s free (%.0f%%)", humanize.IBytes(r.FreeBytes), r.FreePct)
		if r.LowSpace {
			cli.Warning("Low disk space: " + free)
		} else {
			cli.Success(free)
		}
	}

	if r.Backup != "" {
		cli.Success("Backup written to " + r.Backup)
	}
	if r.Dumped > 0 {
		cli.Success("Dumped " + humanize.Comma(int64(r.Dumped)) + " documents to " + doctorDump)
	}
}
