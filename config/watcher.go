package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher watches a configuration file for changes and triggers a reload
// callback. Rapid successive writes (editor save dances) are debounced.
type Watcher struct {
	watcher    *fsnotify.Watcher
	debounceMs int
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry
	onReload   func(file string)
	configPath string
}

// NewWatcher creates a Watcher for the config file at configPath. The
// debounceMs parameter controls how long to wait before processing rapid
// changes. The onReload callback receives the changed file's base name.
//
// The parent directory is watched rather than the file itself, so the
// watcher survives editors that replace the file on save.
func NewWatcher(configPath string, debounceMs int, logger *logrus.Entry, onReload func(string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounceMs <= 0 {
		debounceMs = 100
	}

	return &Watcher{
		watcher:    watcher,
		debounceMs: debounceMs,
		logger:     logger,
		onReload:   onReload,
		configPath: configPath,
	}, nil
}

// Start begins watching for config changes. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if w.isConfigFile(event.Name) {
					w.handleChange(event.Name)
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// isConfigFile reports whether a changed path is the watched config file or
// any recognized config file name in the same directory.
func (w *Watcher) isConfigFile(path string) bool {
	if path == w.configPath {
		return true
	}
	base := filepath.Base(path)
	for _, name := range ConfigFileNames {
		if base == name {
			return true
		}
	}
	return false
}

// handleChange processes a config file change with debouncing.
func (w *Watcher) handleChange(file string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Debounce rapid writes
	elapsed := time.Since(w.lastChange)
	if elapsed < time.Duration(w.debounceMs)*time.Millisecond {
		w.logger.Debugf("Debounced: %s (only %v since last change)", filepath.Base(file), elapsed)
		return
	}
	w.lastChange = time.Now()

	w.logger.Infof("Config changed: %s", filepath.Base(file))

	if w.onReload != nil {
		w.onReload(filepath.Base(file))
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
