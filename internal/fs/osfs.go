package fs

import (
	"context"
	"os"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.
// Remove and Rename retry on transient errors; see retry.go.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:  path,
		Size:  st.Size(),
		MTime: st.ModTime(),
	}, nil
}

func (o *OSFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (o *OSFS) Remove(ctx context.Context, path string) error {
	return retry(ctx, "remove", func() error {
		return os.Remove(path)
	})
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}
