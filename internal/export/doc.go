// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a note snapshot to disk as PDF, plain text,
// Markdown or JSON.
//
// PDF is the primary format. If the PDF renderer fails in any way
// (returned error or panic) the notes are written as plain text instead
// and the Result reports the fallback.
//
// # Key Types
//
//   - Format: Export format enumeration (PDF, Text, Markdown, JSON)
//   - Exporter: Byte-producing exporter interface (text, Markdown, JSON)
//   - Renderer: Page-drawing collaborator used by the PDF layout
//   - Options: Export configuration options
//   - Result: Where the file went and whether the fallback was used
//
// # Usage
//
// Export the current notes as PDF:
//
//	res, err := export.Export(snap, export.FormatPDF, export.DefaultOptions())
//	if res.FellBack {
//	    fmt.Println(res.Notice())
//	}
//
// Export to a specific format:
//
//	path, err := export.ExportToFile(snap, export.NewMarkdownExporter(opts), opts)
package export
