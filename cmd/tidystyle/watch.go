package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/discovery"
	"github.com/jeduden/tidystyle/internal/log"
)

const watchDebounce = 100 * time.Millisecond

// watch calls relint whenever a stylesheet or configuration file under
// the watched paths changes, until ctx is done. Directories are watched
// recursively; a file argument is watched through its parent directory.
func watch(ctx context.Context, paths []string, logger *log.Logger, relint func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, p := range watchRoots(paths) {
		if err := watchDirRecursive(watcher, p); err != nil {
			logger.Warnf("cannot watch %s: %v", p, err)
		}
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchDirRecursive(watcher, event.Name); err != nil {
						logger.Warnf("cannot watch %s: %v", event.Name, err)
					}
					continue
				}
			}
			if !watched(event.Name) {
				continue
			}
			logger.Printf("changed: %s", event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, relint)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watcher error: %v", err)
		}
	}
}

// watched reports whether a change to path should trigger a new lint.
func watched(path string) bool {
	if discovery.IsStylesheet(path) {
		return true
	}
	base := filepath.Base(path)
	for _, name := range config.FileNames {
		if base == name {
			return true
		}
	}
	return false
}

// watchRoots maps each argument to the directory to watch. Glob patterns
// fall back to the working directory.
func watchRoots(paths []string) []string {
	seen := map[string]bool{}
	var roots []string
	for _, p := range paths {
		root := p
		if info, err := os.Stat(p); err != nil {
			root = "."
		} else if !info.IsDir() {
			root = filepath.Dir(p)
		}
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	return roots
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		switch d.Name() {
		case ".git", "node_modules":
			if path != dir {
				return filepath.SkipDir
			}
		}
		return watcher.Add(path)
	})
}
