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
// NOTICE
// =============================================================================

// NoticeDismissedMsg is emitted when the user acknowledges a notice.
type NoticeDismissedMsg struct{}

// Notice is a blocking acknowledgement box, the terminal counterpart of an
// alert(): it must be dismissed before editing resumes.
type Notice struct {
	title   string
	message string
	detail  string
	visible bool
	width   int
	height  int

	theme *styles.Theme
}

// NewNotice creates a hidden notice.
func NewNotice(theme *styles.Theme) *Notice {
	return &Notice{theme: theme}
}

// Show opens the notice. detail is rendered as a link-styled line (a
// file path, usually) and may be empty.
func (n *Notice) Show(title, message, detail string) {
	n.title = title
	n.message = message
	n.detail = detail
	n.visible = true
}

// Hide closes the notice.
func (n *Notice) Hide() {
	n.visible = false
}

// IsVisible returns whether the notice is visible.
func (n *Notice) IsVisible() bool {
	return n.visible
}

// Message returns the body of the visible notice.
func (n *Notice) Message() string {
	return n.message
}

// SetSize updates the notice dimensions.
func (n *Notice) SetSize(width, height int) {
	n.width = width
	n.height = height
}

// Update consumes every key while visible; enter, space or esc dismiss.
func (n *Notice) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !n.visible {
		return nil, false
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}

	switch keyMsg.String() {
	case "enter", " ", "esc", "q":
		n.Hide()
		return func() tea.Msg { return NoticeDismissedMsg{} }, true
	}
	return nil, true
}

// View renders the notice centered in its area.
func (n *Notice) View() string {
	if !n.visible {
		return ""
	}

	boxWidth := 60
	if n.width > 0 && n.width-4 < boxWidth {
		boxWidth = n.width - 4
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	var content strings.Builder
	content.WriteString(n.theme.NoticeTitle.Render(styles.StatusIndicators.Warning + " " + n.title))
	content.WriteString("\n\n")
	content.WriteString(n.theme.DialogMessage.Width(boxWidth - 6).Render(n.message))
	if n.detail != "" {
		content.WriteString("\n\n")
		content.WriteString(n.theme.LinkStyle.Render(n.detail))
	}
	content.WriteString("\n\n")
	content.WriteString(n.theme.NoticeHint.Render("press enter to continue"))

	box := n.theme.NoticeBox.Width(boxWidth).Render(content.String())

	if n.width > 0 && n.height > 0 {
		return lipgloss.Place(n.width, n.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
