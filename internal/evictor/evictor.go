// Package evictor drains the oldest tracked files into dated zip archives
// while the age and free-space thresholds both hold.
package evictor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dkozyrev/agekeeper/internal/archive"
	"github.com/dkozyrev/agekeeper/internal/datecode"
	"github.com/dkozyrev/agekeeper/internal/diskfree"
	"github.com/dkozyrev/agekeeper/internal/fs"
	"github.com/dkozyrev/agekeeper/internal/index"
)

// Config carries the eviction thresholds and paths. DiskUsage and Now exist
// so tests can pin disk state and the calendar; nil means the real thing.
type Config struct {
	StorageDir string
	ArchiveDir string

	// MinAgeDays is the minimum age in days before a file may be evicted.
	MinAgeDays int

	// FreeSpaceThreshold stops eviction once free/total capacity of the
	// watched volume reaches this fraction.
	FreeSpaceThreshold float64

	DiskUsage func(path string) (diskfree.Usage, error)
	Now       func() time.Time
}

// Evictor pops the oldest records from the index, archives them and deletes
// the sources. A record that fails to archive stays on disk and is simply
// re-discovered by the next scan.
type Evictor struct {
	idx       *index.Storage
	fs        fs.FS
	cfg       Config
	log       *slog.Logger
	diskUsage func(path string) (diskfree.Usage, error)
	now       func() time.Time
}

// New creates an evictor draining idx. A nil filesystem means the local OS one.
func New(idx *index.Storage, filesystem fs.FS, cfg Config, log *slog.Logger) *Evictor {
	if filesystem == nil {
		filesystem = fs.New()
	}
	diskUsage := cfg.DiskUsage
	if diskUsage == nil {
		diskUsage = diskfree.Query
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Evictor{
		idx:       idx,
		fs:        filesystem,
		cfg:       cfg,
		log:       log,
		diskUsage: diskUsage,
		now:       now,
	}
}

// Sweep evicts oldest-first while the index is non-empty, the oldest file is
// at least MinAgeDays old, and free space is still below the threshold.
func (e *Evictor) Sweep(ctx context.Context) {
	today := datecode.DaysSinceEpoch(e.now())

	for ctx.Err() == nil {
		age, ok := e.idx.PeekOldestAge()
		if !ok {
			return
		}
		if today-age < e.cfg.MinAgeDays {
			return
		}

		usage, err := e.diskUsage(e.cfg.StorageDir)
		if err != nil {
			e.log.Error("evictor: free-space query failed", "path", e.cfg.StorageDir, "error", err)
			return
		}
		if usage.FreeFraction() >= e.cfg.FreeSpaceThreshold {
			return
		}

		f, _ := e.idx.PopOldest()

		dst, err := e.archiveOne(ctx, f)
		if err != nil {
			// The source stays on disk; the next scan re-tracks it.
			e.log.Error("evictor: archiving failed", "path", f.Path, "error", err)
			continue
		}

		if err := e.fs.Remove(ctx, f.Path); err != nil {
			e.log.Error("evictor: cannot delete archived source", "path", f.Path, "error", err)
			continue
		}

		e.log.Info("file archived", "path", f.Path, "archive", dst, "tracked", e.idx.Len(), "trackedBytes", e.idx.TotalSize())
	}
}

// archiveOne compresses f into <archiveDir>/YYYY/MM/DD/<base>.zip, writing to
// a temporary file first and renaming it into place.
func (e *Evictor) archiveOne(ctx context.Context, f index.File) (string, error) {
	year, month, day := f.BornDate.Date()
	dir := filepath.Join(e.cfg.ArchiveDir,
		fmt.Sprintf("%04d", year),
		fmt.Sprintf("%02d", int(month)),
		fmt.Sprintf("%02d", day),
	)

	if err := e.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}

	base := filepath.Base(f.Path)
	final := filepath.Join(dir, base+".zip")
	tmp := filepath.Join(dir, ".tmp-"+base+".zip")

	if err := archive.Compress(f.Path, tmp); err != nil {
		_ = e.fs.Remove(ctx, tmp)
		return "", err
	}

	if err := e.fs.Rename(ctx, tmp, final); err != nil {
		_ = e.fs.Remove(ctx, tmp)
		return "", fmt.Errorf("finalizing archive: %w", err)
	}

	return final, nil
}
