// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/storage"
	"github.com/jeranaias/cornell-tui/internal/ui/editor"
)

// runTUI opens the note slot and runs the editor until the user quits.
// The config file, when present, is watched for live changes.
func (a *app) runTUI() error {
	return a.withStore(func(store *storage.NoteStore) error {
		opts := editor.Options{
			Store:  store,
			Config: a.cfg,
		}

		if w := a.watchConfig(); w != nil {
			defer w.Close()
			opts.ConfigChanges = w.Changes()
		}

		slog.Info("starting editor",
			"version", Version,
			"backend", a.cfg.Storage.Backend,
			"key", store.Key())

		return a.runProgram(editor.New(opts))
	})
}

// watchConfig returns a watcher for the config file, or nil when there is
// no file to watch.
func (a *app) watchConfig() *config.Watcher {
	path, err := a.configPath()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	w, err := config.NewWatcher(path, 0)
	if err != nil {
		slog.Warn("config watch disabled", "path", path, "error", err)
		return nil
	}
	return w
}

func runProgram(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
