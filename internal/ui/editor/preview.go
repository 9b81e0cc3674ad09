// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/cornell-tui/internal/export"
	"github.com/jeranaias/cornell-tui/internal/notes"
)

// PreviewMarkdown renders snap as the Markdown document used by the
// preview, without frontmatter.
func PreviewMarkdown(snap notes.Snapshot, opts *export.Options) (string, error) {
	exporter := export.NewMarkdownExporter(opts)
	exporter.Frontmatter = false
	data, err := exporter.Export(snap)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RenderMarkdown renders Markdown for the terminal with glamour. style is
// a glamour standard style name ("dark", "light", "notty").
func RenderMarkdown(md, style string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// glamourStyle picks the glamour style matching the theme.
func (m Model) glamourStyle() string {
	switch {
	case m.theme.ColorProfile == termenv.Ascii:
		return "notty"
	case m.theme.IsDark:
		return "dark"
	default:
		return "light"
	}
}

// refreshPreview re-renders the preview from the current notes. Render
// failures fall back to the raw Markdown.
func (m *Model) refreshPreview() {
	md, err := PreviewMarkdown(m.notes.Snapshot(m.clock.Now()), m.exportOpts)
	if err != nil {
		slog.Warn("build preview failed", "error", err)
		m.preview.SetContent(err.Error())
		return
	}

	out, err := RenderMarkdown(md, m.glamourStyle(), m.preview.Width-2)
	if err != nil {
		slog.Warn("render preview failed", "error", err)
		out = md
	}
	m.preview.SetContent(out)
	m.preview.GotoTop()
}

func (m Model) renderPreview() string {
	title := m.theme.PaneTitleFocused.Render("Preview") + "  " +
		m.theme.NoticeHint.Render("ctrl+p / esc to close, arrows to scroll")
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.preview.View())
	return m.theme.PreviewBox.Width(m.width - 2).Render(body)
}
