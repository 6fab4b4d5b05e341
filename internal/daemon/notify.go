package daemon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchNotify requests a sweep whenever fsnotify reports churn under the
// storage root. Events are debounced so a burst of writes becomes one
// wake-up. Directories created while watching are added to the watch set;
// anything missed is caught by the regular polling sweep anyway.
func (r *Runner) watchNotify(ctx context.Context) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		r.log.Error("fsnotify unavailable, polling only", "error", err)
		return
	}
	defer w.Close()

	root := r.cfg.Storage.Directory
	if err := r.addWatchTree(w, root); err != nil {
		r.log.Error("cannot watch storage directory", "path", root, "error", err)
		return
	}

	debounce := r.cfg.Storage.Watch.DebounceWindow
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				r.log.Error("fsnotify events channel closed")
				return
			}

			if strings.HasPrefix(filepath.Base(ev.Name), ".") {
				continue
			}

			if ev.Op&fsnotify.Create != 0 {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						r.log.Error("cannot watch new directory", "path", ev.Name, "error", err)
					}
				}
			}

			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(debounce, r.trigger.Notify)

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			r.log.Error("fsnotify error", "error", err)
		}
	}
}

// addWatchTree registers root and every non-hidden directory below it.
func (r *Runner) addWatchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			r.log.Error("watch setup: cannot visit", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			r.log.Error("watch setup: cannot watch directory", "path", path, "error", err)
		}
		return nil
	})
}
