// Package scanner walks the watched directory tree and feeds newly
// discovered files into the index.
package scanner

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dkozyrev/agekeeper/internal/datecode"
	"github.com/dkozyrev/agekeeper/internal/fs"
	"github.com/dkozyrev/agekeeper/internal/index"
)

// Scanner discovers untracked files under a root directory. One bad entry
// never aborts a scan; it is logged and skipped.
type Scanner struct {
	idx *index.Storage
	fs  fs.FS
	log *slog.Logger
}

// New creates a scanner feeding idx. A nil filesystem means the local OS one.
func New(idx *index.Storage, filesystem fs.FS, log *slog.Logger) *Scanner {
	if filesystem == nil {
		filesystem = fs.New()
	}
	return &Scanner{
		idx: idx,
		fs:  filesystem,
		log: log,
	}
}

// Scan traverses root depth-first with an explicit stack, skipping hidden
// entries, and inserts every untracked file whose path decodes to a date.
func (s *Scanner) Scan(ctx context.Context, root string) {
	stack := []string{root}

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			s.log.Error("scanner: failed to read dir", "path", dir, "error", err)
			continue
		}

		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}

			full := filepath.Join(dir, e.Name())

			if e.IsDir() {
				stack = append(stack, full)
				continue
			}

			if s.idx.Contains(full) {
				continue
			}

			s.track(full)
		}
	}
}

// track stats one untracked file, decodes its birth date and inserts it.
func (s *Scanner) track(path string) {
	info, err := s.fs.Stat(path)
	if err != nil {
		s.log.Error("scanner: stat failed", "path", path, "error", err)
		return
	}

	born, err := datecode.ParseBornDate(path)
	if err != nil {
		s.log.Error("scanner: undated path skipped", "path", path, "error", err)
		return
	}

	s.idx.Insert(index.File{
		Path:     path,
		Size:     info.Size,
		BornDate: born,
	})
	s.log.Info("new file detected", "path", path)
}
