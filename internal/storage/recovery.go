package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/manav03panchal/encore/internal/errors"
	"github.com/manav03panchal/encore/internal/logging"
)

// maxIntegrityScan bounds how many entries a health check reads.
const maxIntegrityScan = 1000

// RecoveryStatus represents the result of a database health check.
type RecoveryStatus struct {
	Healthy     bool      `json:"healthy"`
	Corrupted   bool      `json:"corrupted"`
	LastCheck   time.Time `json:"last_check"`
	KeysChecked int       `json:"keys_checked"`
	ErrorCount  int       `json:"error_count"`
	Errors      []string  `json:"errors,omitempty"`
	Recoverable bool      `json:"recoverable"`
}

// CheckDatabaseIntegrity reads every stored document and verifies it still
// decodes as JSON. Every value encore writes is a JSON document, so anything
// else means the entry was damaged or written by something else.
func CheckDatabaseIntegrity(db *DB) *RecoveryStatus {
	status := &RecoveryStatus{
		LastCheck: time.Now(),
		Healthy:   true,
	}

	if db == nil || db.db == nil {
		status.Healthy = false
		status.Corrupted = true
		status.Errors = append(status.Errors, "database not initialized")
		return status
	}

	err := db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 10
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid() && status.KeysChecked < maxIntegrityScan; it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				if !json.Valid(val) {
					return fmt.Errorf("value is not valid JSON")
				}
				return nil
			})
			if err != nil {
				status.Errors = append(status.Errors, fmt.Sprintf("%s: %v", key, err))
				status.ErrorCount++
			}
			status.KeysChecked++
		}
		return nil
	})

	if err != nil {
		status.Errors = append(status.Errors, fmt.Sprintf("iteration error: %v", err))
		status.ErrorCount++
	}

	if status.ErrorCount > 0 {
		status.Healthy = false
		status.Corrupted = true
		// Damaged documents are reset to defaults on next load
		status.Recoverable = err == nil
	}

	return status
}

// CreateBackup creates a backup of the database directory.
// Returns the path to the backup or an error.
func CreateBackup(dbPath string) (string, error) {
	if dbPath == "" {
		return "", fmt.Errorf("database path is empty")
	}

	backupDir := filepath.Join(filepath.Dir(dbPath), "backups")
	if err := EnsureDirectory(backupDir); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102-150405")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("db-backup-%s", timestamp))

	if err := copyDir(dbPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	logging.Info("database backup created", logging.KeyOperation, "backup", "path", backupPath)
	return backupPath, nil
}

// copyDir copies a directory recursively.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			err = copyDir(srcPath, dstPath)
		} else {
			err = copyFile(srcPath, dstPath)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Dump writes every readable document as one JSON object keyed by database
// key. Undecodable values are written as raw strings. It returns the number
// of entries written.
func Dump(db *DB, w io.Writer) (int, error) {
	if db == nil || db.db == nil {
		return 0, fmt.Errorf("database not available")
	}

	exportData := make(map[string]any)

	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(val []byte) error {
				var jsonVal any
				if json.Unmarshal(val, &jsonVal) == nil {
					exportData[key] = jsonVal
				} else {
					exportData[key] = string(val)
				}
				return nil
			})
			if err != nil {
				logging.Warn("skipping corrupted entry", logging.KeyKey, key, logging.KeyError, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("export iteration error: %w", err)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(exportData); err != nil {
		return 0, fmt.Errorf("failed to write export data: %w", err)
	}

	logging.Info("database dumped", logging.KeyCount, len(exportData))
	return len(exportData), nil
}

// IsDatabaseCorrupted checks if the given error indicates database corruption.
func IsDatabaseCorrupted(err error) bool {
	if err == nil {
		return false
	}

	if stderrors.Is(err, errors.ErrDatabaseCorrupted) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"checksum mismatch",
		"corrupt",
		"unexpected eof",
		"bad magic",
		"truncated",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
