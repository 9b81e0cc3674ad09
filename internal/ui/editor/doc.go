// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package editor provides the Cornell notes screen as a Bubble Tea model.

The screen has three text areas (cues, main notes, summary), a header with
the date and a status bar carrying the save indicator. The model owns the
note set; every storage write and export works on a notes.Snapshot.

# Autosave

Every edit restarts a debounce timer (2s by default). When it fires, the
timer goroutine only signals a channel; Update performs the write, raises
the cosmetic "saving" badge and lowers it after the indicator duration.
Ctrl+S saves immediately and shows "Saved!".

# Export

Ctrl+X exports in the current format (Ctrl+O cycles it) as a tea.Cmd on a
snapshot, with a spinner in the status bar until it reports back. A second
export is refused while one is running. A PDF that falls back to text opens
a blocking notice.

# Exit guard

Quitting while the saving badge is up asks for confirmation. Any accepted
quit first writes pending edits synchronously; if that write fails the user
is asked whether to quit without saving.

# Key Types

	Model     - the Bubble Tea model
	Options   - collaborators (store, clock, config, export options)
	KeyMap    - global key bindings, also used by the help overlay

# Usage

	m := editor.New(editor.Options{Store: store, Config: cfg})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
*/
package editor
