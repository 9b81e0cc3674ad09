// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable UI pieces of the Cornell Notes editor.

Each component is a small struct with SetSize/SetWidth and View, and the
interactive ones expose Update(msg) (tea.Cmd, bool) where the bool reports
whether the message was consumed. Modal components consume every key while
visible.

# Components

Header (header.go) - Title bar with the note date.
StatusBar (statusbar.go) - Save indicator, word count and shortcut hints.
ConfirmDialog (confirm.go) - Modal yes/no prompt for clear and quit.
Notice (notice.go) - Blocking acknowledgement box, used for export fallbacks.
ToastManager (toast.go) - Non-blocking notifications that expire on their own.
Spinner (spinner.go) - ASCII activity indicator shown in the status bar during exports.

# Error Hints

DescribeError (error_patterns.go) formats an error for a toast and appends a
suggestion when the text matches a known pattern, such as a full disk or a
locked note store.

# Usage

	dialog := components.NewConfirmDialog(theme)
	dialog.Show(components.ConfirmRequest{Action: "clear", Title: "Clear all notes?"})

	if cmd, handled := dialog.Update(msg); handled {
		return m, cmd
	}

	case components.ConfirmResultMsg:
		if msg.Action == "clear" && msg.Confirmed {
			// reset the fields
		}
*/
package components
