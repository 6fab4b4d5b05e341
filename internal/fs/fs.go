// Package fs defines the filesystem abstraction used by agekeeper.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"os"
	"time"
)

type FileInfo struct {
	Path  string
	Size  int64
	MTime time.Time
}

type FS interface {
	Stat(path string) (FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	MkdirAll(path string) error
	Remove(ctx context.Context, path string) error
	Rename(ctx context.Context, oldPath, newPath string) error
}
