//go:build windows

package storage

import (
	stderrors "errors"
	"syscall"
)

// errDiskSpaceUnsupported makes CheckDiskSpace a no-op on Windows.
var errDiskSpaceUnsupported = stderrors.New("disk space check not supported on windows")

// GetDiskSpace is not implemented on Windows.
func GetDiskSpace(path string) (*DiskSpaceInfo, error) {
	return nil, errDiskSpaceUnsupported
}

// ERROR_DISK_FULL
const errorDiskFull = syscall.Errno(112)

func isDiskFullError(err error) bool {
	return stderrors.Is(err, errorDiskFull)
}
