//go:build windows

package diskfree

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Query returns the capacity of the volume containing path.
func Query(path string) (Usage, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Usage{}, fmt.Errorf("encoding path %s: %w", path, err)
	}

	var freeToCaller, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeToCaller, &total, &free); err != nil {
		return Usage{}, fmt.Errorf("querying disk space for %s: %w", path, err)
	}

	return Usage{
		FreeBytes:  freeToCaller,
		TotalBytes: total,
	}, nil
}
