package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls regen with the path of any of the given absolute file paths
// that is written or replaced, until ctx is done. Failed regenerations are
// logged, not returned.
//
// Parent directories are watched rather than the files themselves, so that
// editors which save by renaming a new file into place are still seen.
func watch(ctx context.Context, log *slog.Logger, paths []string, regen func(path string) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		targets[filepath.Clean(p)] = true
		dirs[filepath.Dir(p)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("%s: cannot watch directory: %w", d, err)
		}
	}

	log.Info("watching for changes", "files", len(targets))
	for {
		select {
		case <-ctx.Done():
			log.Info("stopping watch")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(ev.Name)
			if !targets[path] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("change detected", "path", path, "op", ev.Op.String())
			if err := regen(path); err != nil {
				log.Error("regeneration failed", "path", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error", "err", err)
		}
	}
}
