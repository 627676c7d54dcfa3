package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manav03panchal/encore/internal/errors"
)

// MinFreeSpace is the free space required to open an on-disk database (10MB).
const MinFreeSpace = 10 * 1024 * 1024

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// checkDiskSpace returns ErrDiskFull when path has less than minFree bytes
// free. Paths whose free space cannot be read pass.
func checkDiskSpace(path string, minFree uint64) error {
	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < minFree {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				info.FreeBytes/(1024*1024),
				minFree/(1024*1024)),
			errors.ErrDiskFull,
		)
	}

	return nil
}

// EnsureDirectory creates a directory with safe permissions if it doesn't exist.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0700); err != nil {
		if isDiskFullError(err) {
			return errors.NewSystemErrorWithOp("mkdir", "disk full", errors.ErrDiskFull)
		}
		if os.IsPermission(err) {
			return errors.NewSystemErrorWithOp("mkdir", "cannot create data directory", errors.ErrPermissionDenied)
		}
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// wrapDiskFull tags ENOSPC write failures so callers can suggest a fix.
func wrapDiskFull(err error, op string) error {
	if err == nil || !isDiskFullError(err) {
		return err
	}
	return errors.NewSystemErrorWithOp(op, "disk full", errors.ErrDiskFull)
}

// nearestExisting walks up from path until it finds a directory that exists.
func nearestExisting(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
