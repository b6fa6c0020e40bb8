package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"shaderlex/internal/driver"
)

const watchDebounce = 150 * time.Millisecond

// shaderWatcher reports changes to shader sources under a file or directory.
type shaderWatcher struct {
	watcher *fsnotify.Watcher
	opts    driver.Options
	file    string // absolute path when watching a single file
	dirs    map[string]struct{}
}

func newShaderWatcher(target string, opts driver.Options, isDir bool) (*shaderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	w := &shaderWatcher{
		watcher: watcher,
		opts:    opts,
		dirs:    make(map[string]struct{}),
	}
	if isDir {
		err = w.watchTree(target)
	} else {
		w.file, err = filepath.Abs(target)
		if err == nil {
			// editors often replace files, so watch the directory
			err = w.watchDir(filepath.Dir(w.file))
		}
	}
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return w, nil
}

func (w *shaderWatcher) Close() error {
	return w.watcher.Close()
}

func (w *shaderWatcher) watchDir(dir string) error {
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dirs[dir] = struct{}{}
	return nil
}

func (w *shaderWatcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		return w.watchDir(abs)
	})
}

// relevant reports whether ev should trigger a new run. New directories
// in a watched tree are added to the watch list.
func (w *shaderWatcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	if w.file != "" {
		return name == w.file
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if err := w.watchTree(name); err != nil {
				log.Warningf("%s", err.Error())
			}
			return false
		}
	}
	return w.opts.Matches(name)
}

// watchAndRun calls run once, then again after every burst of changes
// until ctx is done. Errors from run are printed, not returned.
func watchAndRun(ctx context.Context, target string, opts driver.Options, isDir bool, errOut io.Writer, run func() error) error {
	w, err := newShaderWatcher(target, opts, isDir)
	if err != nil {
		return err
	}
	defer w.Close()

	runOnce := func() {
		if err := run(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		fmt.Fprintf(errOut, "watching %s for changes...\n", target)
	}
	runOnce()

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				log.Debugf("change: %s", ev)
				timer.Reset(watchDebounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err.Error())
		case <-timer.C:
			runOnce()
		}
	}
}
