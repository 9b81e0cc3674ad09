// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cornell-tui/internal/ui/styles"
	"github.com/jeranaias/cornell-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// DefaultHeaderTitle is the title shown above the panes.
const DefaultHeaderTitle = "CORNELL NOTES"

// Header is the title bar: brand on the left, the note date on the right.
type Header struct {
	Title string
	Date  string
	Width int
	theme *styles.Theme
}

// NewHeader creates a Header with the default title.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: DefaultHeaderTitle,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetDate updates the date shown next to the title.
func (h *Header) SetDate(date string) {
	h.Date = date
}

// View renders the header as one line inside a rounded border.
func (h *Header) View() string {
	// Border (2) and padding (4) eat into the usable width.
	inner := h.Width - 6
	if inner < 10 {
		inner = 10
	}

	title := h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, inner))
	titleWidth := lipgloss.Width(title)

	date := ""
	if h.Date != "" && inner-titleWidth > 8 {
		date = h.theme.HeaderDate.Render(util.TruncateWidth("Date: "+h.Date, inner-titleWidth-2))
	}

	gap := inner - titleWidth - lipgloss.Width(date)
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + date

	return h.theme.Header.Width(h.Width - 2).Render(line)
}
