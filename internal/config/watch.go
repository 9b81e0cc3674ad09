// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/cornell-tui/internal/autosave"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// DefaultWatchDebounce coalesces the burst of events an editor save produces.
const DefaultWatchDebounce = 150 * time.Millisecond

// Watcher reloads a config file when it changes on disk and delivers the
// new configuration on Changes. Invalid edits are logged and skipped.
type Watcher struct {
	path      string
	fsw       *fsnotify.Watcher
	debouncer *autosave.Debouncer
	changes   chan *Config

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher starts watching path. The parent directory is watched so
// that editors which replace the file by rename are still seen.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:      abs,
		fsw:       fsw,
		debouncer: autosave.NewDebouncer(autosave.RealClock{}, debounce),
		changes:   make(chan *Config, 1),
		ctx:       ctx,
		cancel:    cancel,
	}

	go w.processEvents()
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Changes delivers each successfully reloaded configuration. Only the
// latest undelivered value is kept.
func (w *Watcher) Changes() <-chan *Config { return w.changes }

// Close stops watching.
func (w *Watcher) Close() error {
	w.cancel()
	w.debouncer.Cancel()
	return w.fsw.Close()
}

// processEvents filters events down to the watched file.
func (w *Watcher) processEvents() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("config watcher panic", "panic", r)
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.debouncer.Schedule(w.reload)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)
		}
	}
}

// reload reads the file and publishes the result.
func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}

	cfg, err := LoadFromPath(w.path)
	if err != nil {
		slog.Warn("ignoring config change", "path", w.path, "error", err)
		return
	}

	// Replace any value the consumer has not read yet
	select {
	case <-w.changes:
	default:
	}
	select {
	case w.changes <- cfg:
	default:
	}
	slog.Debug("config reloaded", "path", w.path)
}
