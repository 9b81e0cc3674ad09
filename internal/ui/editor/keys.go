// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/cornell-tui/internal/ui/components"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the editor's global bindings. Everything not listed here
// goes to the focused text area.
type KeyMap struct {
	NextField   key.Binding
	PrevField   key.Binding
	Save        key.Binding
	Export      key.Binding
	CycleFormat key.Binding
	Clear       key.Binding
	Preview     key.Binding
	Help        key.Binding
	Dismiss     key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings. They shadow the
// matching emacs-style bindings of the text areas on purpose: arrows and
// home/end still move the cursor.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "export"),
		),
		CycleFormat: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "export format"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "preview"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+g"),
			key.WithHelp("F1", "help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Export, k.Clear, k.Preview, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.NextField, k.PrevField, k.Dismiss},
		// Notes
		{k.Save, k.Clear, k.Preview},
		// Export
		{k.Export, k.CycleFormat},
		// Application
		{k.Help, k.Quit},
	}
}

// StatusHints converts the short help into status bar hints.
func (k KeyMap) StatusHints() []components.KeyHint {
	bindings := k.ShortHelp()
	hints := make([]components.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, components.KeyHint{Key: h.Key, Desc: h.Desc})
	}
	return hints
}
