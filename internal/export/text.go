// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"

	"github.com/jeranaias/cornell-tui/internal/notes"
)

// =============================================================================
// TEXT EXPORTER
// =============================================================================

// TextLabels are the section labels of the plain text format.
var TextLabels = [notes.FieldCount]string{
	notes.FieldCues:    "KEYWORDS / CUES:",
	notes.FieldNotes:   "NOTES:",
	notes.FieldSummary: "SUMMARY:",
}

// TextExporter writes the notes as labelled plain text. It is also the
// fallback when a PDF cannot be rendered, so it must never fail.
type TextExporter struct {
	options *Options
}

// NewTextExporter creates a new plain text exporter.
func NewTextExporter(opts *Options) *TextExporter {
	return &TextExporter{options: opts.withDefaults()}
}

// Export concatenates the three fields under their labels. Field text is
// written as-is, empty fields included.
func (e *TextExporter) Export(snap notes.Snapshot) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(DocumentTitle)
	sb.WriteString("\nDate: ")
	sb.WriteString(e.options.Now().Format(e.options.DateFormat))
	sb.WriteString("\n")

	for _, f := range notes.Fields {
		sb.WriteString("\n")
		sb.WriteString(TextLabels[f])
		sb.WriteString("\n")
		sb.WriteString(snap.Field(f))
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for plain text.
func (e *TextExporter) FileExtension() string {
	return ".txt"
}

// MimeType returns the MIME type for plain text.
func (e *TextExporter) MimeType() string {
	return "text/plain"
}
