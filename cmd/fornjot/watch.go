package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// modelWatcher reports changes to a single model file. Editors often save
// by replacing the file, so the parent directory is watched and events are
// filtered by name.
type modelWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *log.Logger
}

func newModelWatcher(logger *log.Logger, path string, debounce time.Duration) (*modelWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &modelWatcher{watcher: w, path: abs, debounce: debounce, logger: logger}, nil
}

// Run calls onChange after each burst of writes to the model file until ctx
// is done. It closes the watcher before returning.
func (mw *modelWatcher) Run(ctx context.Context, onChange func()) error {
	defer mw.watcher.Close()
	timer := time.NewTimer(mw.debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-mw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != mw.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			mw.logger.Debug("model changed", "path", ev.Name, "op", ev.Op)
			timer.Reset(mw.debounce)
		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		case <-timer.C:
			onChange()
		}
	}
}
