// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the Cornell Notes TUI.

All colors use Lip Gloss AdaptiveColor so one palette serves light and dark
terminals. The theme name from the config file ("auto", "dark", "light")
decides which variant is rendered.

# Color System (colors.go)

  - Purple - Focused pane borders and the header title
  - Cyan - Pane titles and key hints
  - Emerald - Saved state
  - Amber - Saving indicator and notices
  - Rose - Errors and the clear action

StatusIndicators pairs every state with an ASCII shape ([OK], [X], [!],
[i]) so no state is conveyed by color alone.

# Theme System (theme.go)

	theme := styles.NewTheme(styles.ModeAuto)
	theme.SetSize(width, height)
	if theme.GetLayoutMode().Stacked() {
		// cue and notes panes on top of each other
	}

# Usage Example

	status := theme.StatusSaving.Render("Saving...")
	box := theme.DialogBox.Render(theme.DialogTitle.Render("Clear all notes?"))
*/
package styles
