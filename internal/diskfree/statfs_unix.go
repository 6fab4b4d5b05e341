//go:build unix

package diskfree

import (
	"fmt"
	"syscall"
)

// Query returns the capacity of the volume containing path. Free space is
// what an unprivileged caller can actually use (Bavail, not Bfree).
func Query(path string) (Usage, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return Usage{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	return Usage{
		FreeBytes:  uint64(stat.Bavail) * uint64(stat.Bsize),
		TotalBytes: uint64(stat.Blocks) * uint64(stat.Bsize),
	}, nil
}
