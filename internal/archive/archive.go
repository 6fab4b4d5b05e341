// Package archive writes single-file zip archives for evicted files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Compress writes a zip archive at dst containing a single entry for the
// file at src, named by src's base name. dst's directory must already exist.
func Compress(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("compress: open source: %w", err)
	}
	defer in.Close()

	archiveFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("compress: create archive: %w", err)
	}
	defer func() {
		closeErr := archiveFile.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("compress: close archive file: %w", closeErr)
		}
	}()

	writer := zip.NewWriter(archiveFile)
	defer func() {
		closeErr := writer.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("compress: finalize archive: %w", closeErr)
		}
	}()

	entry, err := writer.Create(filepath.Base(src))
	if err != nil {
		return fmt.Errorf("compress: create entry: %w", err)
	}

	if _, err := io.Copy(entry, in); err != nil {
		return fmt.Errorf("compress: write entry: %w", err)
	}

	return nil
}
