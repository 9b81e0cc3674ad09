// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/cornell-tui/internal/autosave"
	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case autosaveDueMsg:
		return m.handleAutosaveDue()

	case savingDoneMsg:
		m.tracker.SavingDone(msg.gen)
		return m, nil

	case feedbackDoneMsg:
		m.tracker.FeedbackDone(msg.gen)
		return m, nil

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg)

	case components.ConfirmResultMsg:
		return m.handleConfirmResult(msg)

	case components.NoticeDismissedMsg:
		cmd := m.areas[m.focus].Focus()
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.ToastTickMsg:
		if len(m.toasts.Tick()) == 0 {
			m.toastTicking = false
			return m, nil
		}
		return m, components.ToastTickCmd()

	default:
		// Cursor blink and other text area internals.
		var cmd tea.Cmd
		m.areas[m.focus], cmd = m.areas[m.focus].Update(msg)
		return m, cmd
	}
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.layout()
	if m.showPreview {
		m.refreshPreview()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals first: they swallow every key while open.
	if cmd, handled := m.notice.Update(msg); handled {
		return m, cmd
	}
	if cmd, handled := m.confirm.Update(msg); handled {
		return m, cmd
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			cmd := m.requestQuit()
			return m, cmd
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Dismiss):
			m.showHelp = false
		}
		return m, nil
	}

	if m.showPreview {
		switch {
		case key.Matches(msg, m.keys.Quit):
			cmd := m.requestQuit()
			return m, cmd
		case key.Matches(msg, m.keys.Preview), key.Matches(msg, m.keys.Dismiss):
			m.showPreview = false
			return m, nil
		}
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		cmd := m.requestQuit()
		return m, cmd

	case key.Matches(msg, m.keys.Save):
		cmd := m.saveNow()
		return m, cmd

	case key.Matches(msg, m.keys.Export):
		cmd := m.startExport()
		return m, cmd

	case key.Matches(msg, m.keys.CycleFormat):
		cmd := m.cycleExportFormat()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.confirm.Show(components.ConfirmRequest{
			Action:       actionClear,
			Title:        "Clear all notes?",
			Message:      "Cues, notes and summary will be emptied. This cannot be undone.",
			ConfirmLabel: "Clear",
			CancelLabel:  "Keep",
			Destructive:  true,
		})
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = true
		m.refreshPreview()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		cmd := m.focusField(m.focus.Next())
		return m, cmd

	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focusField(m.focus.Prev())
		return m, cmd

	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissNewest()
		return m, nil
	}

	var cmd tea.Cmd
	m.areas[m.focus], cmd = m.areas[m.focus].Update(msg)
	m.syncField(m.focus)
	return m, cmd
}

func (m Model) handleAutosaveDue() (tea.Model, tea.Cmd) {
	rearm := listenAutosave(m.due)

	// A newer edit restarted the timer after this signal was queued.
	if m.debouncer.Pending() || !m.dirty {
		return m, rearm
	}

	cmd, _ := m.persist(false)
	return m, tea.Batch(rearm, cmd)
}

func (m Model) handleConfirmResult(msg components.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	focus := m.areas[m.focus].Focus()

	switch msg.Action {
	case actionClear:
		if msg.Confirmed {
			m.clearAll()
		}
	case actionQuit:
		if msg.Confirmed {
			cmd := m.finishQuit()
			return m, cmd
		}
	case actionQuitUnsaved:
		if msg.Confirmed {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, focus
}

// =============================================================================
// EDITING
// =============================================================================

// syncField copies a text area into the note set and schedules an
// autosave if the text changed.
func (m *Model) syncField(f notes.Field) {
	if m.notes.Set(f, m.areas[f].Value()) {
		m.markEdited()
	}
}

// markEdited flags unsaved changes and restarts the quiet interval.
func (m *Model) markEdited() {
	m.dirty = true
	due := m.due
	m.debouncer.Schedule(func() {
		select {
		case due <- struct{}{}:
		default:
		}
	})
}

func (m *Model) focusField(f notes.Field) tea.Cmd {
	m.areas[m.focus].Blur()
	m.focus = f
	return m.areas[f].Focus()
}

// clearAll empties every field. Storage is untouched until the next
// autosave persists the cleared set.
func (m *Model) clearAll() {
	m.notes.Clear()
	for _, f := range notes.Fields {
		m.areas[f].Reset()
	}
	m.markEdited()
}

// =============================================================================
// SAVING
// =============================================================================

// persist writes a snapshot of the note set. The returned command lowers
// the indicator later; ok is false when the write failed.
func (m *Model) persist(manual bool) (tea.Cmd, bool) {
	snap := m.notes.Snapshot(m.clock.Now())

	saved, err := m.store.Save(snap)
	if err != nil {
		logSaveFailed(err, manual)
		return m.addToast(components.ToastKindError, components.DescribeError("Could not save notes", err)), false
	}

	m.notes.SavedAt = saved.SavedAt
	m.dirty = false
	gen := m.tracker.Saved(saved.SavedAt)
	m.saveLog.Do(func() { logSaved(m.store.Key(), saved.SavedAt, manual) })

	cmds := []tea.Cmd{afterCmd(m.indicatorDur, savingDoneMsg{gen: gen})}
	if manual {
		fb := m.tracker.ShowFeedback()
		cmds = append(cmds, afterCmd(m.feedbackDur, feedbackDoneMsg{gen: fb}))
	}
	return tea.Batch(cmds...), true
}

// saveNow bypasses the debounce.
func (m *Model) saveNow() tea.Cmd {
	m.debouncer.Cancel()
	cmd, _ := m.persist(true)
	return cmd
}

// =============================================================================
// EXIT GUARD
// =============================================================================

// requestQuit asks for confirmation while the saving badge is up and
// quits directly otherwise.
func (m *Model) requestQuit() tea.Cmd {
	if m.tracker.State() == autosave.StateSaving {
		m.showHelp = false
		m.showPreview = false
		m.confirm.Show(components.ConfirmRequest{
			Action:       actionQuit,
			Title:        "Notes are being saved",
			Message:      "Quit anyway? Pending changes are written before exit.",
			ConfirmLabel: "Quit",
			CancelLabel:  "Stay",
		})
		return nil
	}
	return m.finishQuit()
}

// finishQuit flushes a pending autosave synchronously and quits. A failed
// flush asks whether to quit without saving.
func (m *Model) finishQuit() tea.Cmd {
	m.debouncer.Cancel()
	if m.dirty {
		if cmd, ok := m.persist(false); !ok {
			m.confirm.Show(components.ConfirmRequest{
				Action:       actionQuitUnsaved,
				Title:        "Notes could not be saved",
				Message:      "Quit and lose the latest changes?",
				ConfirmLabel: "Quit",
				CancelLabel:  "Stay",
				Destructive:  true,
			})
			return cmd
		}
	}
	m.quitting = true
	return tea.Quit
}

// =============================================================================
// TOASTS
// =============================================================================

// addToast shows a toast and starts the expiry ticker if it is idle.
func (m *Model) addToast(kind components.ToastKind, message string) tea.Cmd {
	m.toasts.Add(kind, message)
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return components.ToastTickCmd()
}
