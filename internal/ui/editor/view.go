// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/ui/components"
)

// Fixed heights of the chrome around the panes. layout() and render()
// must agree on these.
const (
	headerHeight = 3 // rounded border + one line
	statusHeight = 1
	paneChromeV  = 3 // border top/bottom + title line
	paneChromeH  = 4 // border left/right + padding
)

// paneRect is the outer size of one pane.
type paneRect struct {
	width  int
	height int
}

// =============================================================================
// LAYOUT
// =============================================================================

// panes computes the outer size of each pane. Wide terminals put cues and
// notes side by side above the summary; narrow ones stack all three.
func (m Model) panes() [notes.FieldCount]paneRect {
	var rects [notes.FieldCount]paneRect

	body := m.height - headerHeight - statusHeight
	minPane := paneChromeV + defaultPaneMinRows
	if body < minPane*2 {
		body = minPane * 2
	}

	mode := m.theme.GetLayoutMode()
	if mode.Stacked() {
		third := body / 3
		rects[notes.FieldCues] = paneRect{m.width, third}
		rects[notes.FieldNotes] = paneRect{m.width, third}
		rects[notes.FieldSummary] = paneRect{m.width, body - 2*third}
		return rects
	}

	summary := body / 4
	if summary < minPane {
		summary = minPane
	}
	top := body - summary

	cueWidth := int(float64(m.width) * mode.CueWidthRatio())
	rects[notes.FieldCues] = paneRect{cueWidth, top}
	rects[notes.FieldNotes] = paneRect{m.width - cueWidth, top}
	rects[notes.FieldSummary] = paneRect{m.width, summary}
	return rects
}

// layout resizes every component after a window change.
func (m *Model) layout() {
	rects := m.panes()
	for _, f := range notes.Fields {
		w := rects[f].width - paneChromeH
		h := rects[f].height - paneChromeV
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		m.areas[f].SetWidth(w)
		m.areas[f].SetHeight(h)
	}

	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.confirm.SetSize(m.width, m.height)
	m.notice.SetSize(m.width, m.height)
	m.help.Width = m.width - 8

	m.preview.Width = m.width - 4
	m.preview.Height = m.height - 4
	if m.preview.Height < 1 {
		m.preview.Height = 1
	}
}

// =============================================================================
// MAIN RENDER
// =============================================================================

func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch {
	case m.notice.IsVisible():
		return m.notice.View()
	case m.confirm.IsVisible():
		return m.confirm.View()
	case m.showHelp:
		return m.renderHelp()
	case m.showPreview:
		return m.renderPreview()
	}

	m.header.SetDate(m.clock.Now().Format(m.exportOpts.DateFormat))
	m.status.SetSaveState(m.tracker)
	m.status.Words = m.notes.Snapshot(m.clock.Now()).WordCount()
	m.status.Activity = m.spinner.View()

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.renderPanes(),
		m.status.View(),
	)

	if toasts := m.toasts.Toasts(); len(toasts) > 0 {
		view = m.overlayToasts(view, components.RenderToastStack(toasts, m.width, m.clock.Now()))
	}
	return view
}

func (m Model) renderPanes() string {
	rects := m.panes()

	var rendered [notes.FieldCount]string
	for _, f := range notes.Fields {
		rendered[f] = m.renderPane(f, rects[f])
	}

	if m.theme.GetLayoutMode().Stacked() {
		return lipgloss.JoinVertical(lipgloss.Left,
			rendered[notes.FieldCues], rendered[notes.FieldNotes], rendered[notes.FieldSummary])
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, rendered[notes.FieldCues], rendered[notes.FieldNotes])
	return lipgloss.JoinVertical(lipgloss.Left, top, rendered[notes.FieldSummary])
}

func (m Model) renderPane(f notes.Field, rect paneRect) string {
	style := m.theme.PaneBlurred
	titleStyle := m.theme.PaneTitle
	if f == m.focus {
		style = m.theme.PaneFocused
		titleStyle = m.theme.PaneTitleFocused
	}

	content := titleStyle.Render(f.Title()) + "\n" + m.areas[f].View()

	// Width and Height exclude the border.
	return style.
		Width(rect.width - 2).
		Height(rect.height - 2).
		MaxHeight(rect.height).
		Render(content)
}

// =============================================================================
// OVERLAYS
// =============================================================================

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.DialogTitle.Render("Keyboard shortcuts"))
	b.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(m.theme.NoticeHint.Render("Export format: " + string(m.exportFormat) + "  |  esc to close"))

	box := m.theme.DialogBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// overlayToasts draws the toast stack over the bottom-right corner of the
// base view, just above the status bar.
func (m Model) overlayToasts(baseView, toastView string) string {
	baseLines := strings.Split(baseView, "\n")
	toastLines := strings.Split(toastView, "\n")

	startRow := len(baseLines) - statusHeight - len(toastLines)
	if startRow < 0 {
		startRow = 0
	}

	for i, toastLine := range toastLines {
		row := startRow + i
		if row >= len(baseLines) {
			break
		}
		toastWidth := lipgloss.Width(toastLine)
		cut := m.width - toastWidth - 1
		if cut < 0 {
			cut = 0
		}

		base := baseLines[row]
		if w := lipgloss.Width(base); w > cut {
			base = lipgloss.NewStyle().MaxWidth(cut).Render(base)
		}
		if pad := cut - lipgloss.Width(base); pad > 0 {
			base += strings.Repeat(" ", pad)
		}
		baseLines[row] = base + toastLine
	}

	return strings.Join(baseLines, "\n")
}
