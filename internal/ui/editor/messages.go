// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cornell-tui/internal/config"
	"github.com/jeranaias/cornell-tui/internal/export"
)

// =============================================================================
// AUTOSAVE MESSAGES
// =============================================================================

// autosaveDueMsg arrives when the quiet interval after the last edit has
// elapsed. The debounce timer runs on its own goroutine and only signals;
// the write itself happens in Update.
type autosaveDueMsg struct{}

// savingDoneMsg lowers the "saving" badge raised by generation gen.
type savingDoneMsg struct {
	gen int
}

// feedbackDoneMsg lowers the "Saved!" confirmation raised by generation gen.
type feedbackDoneMsg struct {
	gen int
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// exportDoneMsg carries the outcome of an export command.
type exportDoneMsg struct {
	Result export.Result
	Err    error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigChangedMsg delivers a reloaded configuration file.
type ConfigChangedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// listenAutosave waits for the next debounce signal.
func listenAutosave(due <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-due
		return autosaveDueMsg{}
	}
}

// listenConfig waits for the next config reload. A closed channel ends
// the subscription.
func listenConfig(changes <-chan *config.Config) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-changes
		if !ok {
			return nil
		}
		return ConfigChangedMsg{Config: cfg}
	}
}

// afterCmd emits msg once d has elapsed.
func afterCmd(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
