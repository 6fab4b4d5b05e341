// Package daemon owns the main loop: scan the watched tree, evict what the
// thresholds allow, sleep, repeat. Optional fsnotify and cron wake-ups feed
// the same loop so the index always has a single owner goroutine.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dkozyrev/agekeeper/internal/config"
	"github.com/dkozyrev/agekeeper/internal/evictor"
	"github.com/dkozyrev/agekeeper/internal/fs"
	"github.com/dkozyrev/agekeeper/internal/fsprobe"
	"github.com/dkozyrev/agekeeper/internal/index"
	"github.com/dkozyrev/agekeeper/internal/scanner"
	"github.com/dkozyrev/agekeeper/internal/trigger"
)

// Runner wires the scanner and evictor around one long-lived index.
type Runner struct {
	cfg     *config.Config
	idx     *index.Storage
	scan    *scanner.Scanner
	evict   *evictor.Evictor
	log     *slog.Logger
	trigger *trigger.Trigger
}

func New(cfg *config.Config, log *slog.Logger) *Runner {
	idx := index.NewStorage()
	filesystem := fs.New()

	return &Runner{
		cfg:  cfg,
		idx:  idx,
		scan: scanner.New(idx, filesystem, log),
		evict: evictor.New(idx, filesystem, evictor.Config{
			StorageDir:         cfg.Storage.Directory,
			ArchiveDir:         cfg.Archive.Directory,
			MinAgeDays:         cfg.Thresholds.FilesOldDays,
			FreeSpaceThreshold: cfg.Thresholds.FreeSpace,
		}, log),
		log:     log,
		trigger: trigger.New(),
	}
}

// Index exposes the shared file index, for inspection only.
func (r *Runner) Index() *index.Storage {
	return r.idx
}

// Start sweeps once immediately, then on every tick of checkTimeDelay and on
// every coalesced wake-up, until ctx is cancelled.
func (r *Runner) Start(ctx context.Context) error {
	if r.resolveWatchMode() == "fsnotify" {
		go r.watchNotify(ctx)
	}

	if schedule := r.cfg.Sweep.Schedule; schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(schedule, r.trigger.Notify); err != nil {
			return fmt.Errorf("scheduling sweeps: %w", err)
		}
		c.Start()
		defer c.Stop()
		r.log.Info("scheduled sweeps enabled", "schedule", schedule)
	}

	r.sweep(ctx)

	ticker := time.NewTicker(r.cfg.Sweep.CheckTimeDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.sweep(ctx)
		case <-r.trigger.C():
			r.sweep(ctx)
		}
	}
}

func (r *Runner) sweep(ctx context.Context) {
	r.scan.Scan(ctx, r.cfg.Storage.Directory)
	r.evict.Sweep(ctx)
	r.log.Debug("sweep complete", "tracked", r.idx.Len(), "trackedBytes", r.idx.TotalSize())
}

// resolveWatchMode turns "auto" into a concrete mode using a probe of the
// watched directory.
func (r *Runner) resolveWatchMode() string {
	mode := r.cfg.Storage.Watch.Mode
	if mode != "auto" {
		return mode
	}

	res := fsprobe.Probe(r.cfg.Storage.Directory)
	if res.FsnotifySupported {
		return "fsnotify"
	}
	r.log.Warn("fsnotify disabled, staying with plain polling", "reason", res.Reason)
	return "poll"
}
