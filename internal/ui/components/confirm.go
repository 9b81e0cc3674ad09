// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cornell-tui/internal/ui/styles"
)

// =============================================================================
// CONFIRM DIALOG
// =============================================================================

// ConfirmRequest describes what the dialog asks.
type ConfirmRequest struct {
	// Action is echoed back in ConfirmResultMsg so the caller can tell
	// dialogs apart.
	Action string

	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string

	// Destructive paints the confirm button in the error color.
	Destructive bool
}

// ConfirmResultMsg is emitted once the user answers the dialog.
type ConfirmResultMsg struct {
	Action    string
	Confirmed bool
}

// Button options
const (
	ButtonConfirm = 0
	ButtonCancel  = 1
	buttonCount   = 2
)

// ConfirmDialog is a modal yes/no prompt. While visible it consumes every
// key press so nothing reaches the editor underneath.
type ConfirmDialog struct {
	req      ConfirmRequest
	visible  bool
	selected int
	width    int
	height   int

	theme *styles.Theme
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog(theme *styles.Theme) *ConfirmDialog {
	return &ConfirmDialog{theme: theme}
}

// Show opens the dialog. Focus starts on Cancel so a stray enter never
// confirms a destructive action.
func (d *ConfirmDialog) Show(req ConfirmRequest) {
	if req.ConfirmLabel == "" {
		req.ConfirmLabel = "Yes"
	}
	if req.CancelLabel == "" {
		req.CancelLabel = "No"
	}
	d.req = req
	d.visible = true
	d.selected = ButtonCancel
}

// Hide closes the dialog without answering.
func (d *ConfirmDialog) Hide() {
	d.visible = false
	d.req = ConfirmRequest{}
}

// IsVisible returns whether the dialog is visible.
func (d *ConfirmDialog) IsVisible() bool {
	return d.visible
}

// Action returns the action of the open dialog, or "" when hidden.
func (d *ConfirmDialog) Action() string {
	if !d.visible {
		return ""
	}
	return d.req.Action
}

// Selected returns the focused button.
func (d *ConfirmDialog) Selected() int {
	return d.selected
}

// SetSize updates the dialog dimensions.
func (d *ConfirmDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// =============================================================================
// BUBBLE TEA METHODS
// =============================================================================

// Update handles key events. The bool reports whether the message was
// consumed by the dialog.
func (d *ConfirmDialog) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !d.visible {
		return nil, false
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	switch keyMsg.String() {
	case "left", "h", "right", "l", "tab", "shift+tab":
		d.selected = (d.selected + 1) % buttonCount
	case "enter", " ":
		return d.answer(d.selected == ButtonConfirm), true
	case "y", "Y":
		return d.answer(true), true
	case "n", "N", "esc", "ctrl+c":
		return d.answer(false), true
	}
	return nil, true
}

func (d *ConfirmDialog) answer(confirmed bool) tea.Cmd {
	action := d.req.Action
	d.Hide()
	return func() tea.Msg {
		return ConfirmResultMsg{Action: action, Confirmed: confirmed}
	}
}

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the dialog centered in its area.
func (d *ConfirmDialog) View() string {
	if !d.visible {
		return ""
	}

	boxWidth := 52
	if d.width > 0 && d.width-4 < boxWidth {
		boxWidth = d.width - 4
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	var content strings.Builder
	content.WriteString(d.theme.DialogTitle.Render(d.req.Title))
	if d.req.Message != "" {
		content.WriteString("\n\n")
		content.WriteString(d.theme.DialogMessage.Width(boxWidth - 6).Render(d.req.Message))
	}
	content.WriteString("\n\n")
	content.WriteString(d.renderButtons())
	content.WriteString("\n\n")
	content.WriteString(d.theme.NoticeHint.Render("y=" + d.req.ConfirmLabel + "  n/esc=" + d.req.CancelLabel + "  tab=switch"))

	box := d.theme.DialogBox.Width(boxWidth).Render(content.String())

	if d.width > 0 && d.height > 0 {
		return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (d *ConfirmDialog) renderButtons() string {
	inactive := d.theme.DialogButton.MarginRight(1)

	confirmActive := d.theme.DialogButtonActive
	if d.req.Destructive {
		confirmActive = d.theme.DialogButtonDanger
	}

	confirm := inactive.Render(d.req.ConfirmLabel)
	cancel := inactive.Render(d.req.CancelLabel)
	if d.selected == ButtonConfirm {
		confirm = confirmActive.MarginRight(1).Render(d.req.ConfirmLabel)
	} else {
		cancel = d.theme.DialogButtonActive.MarginRight(1).Render(d.req.CancelLabel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, confirm, cancel)
}
