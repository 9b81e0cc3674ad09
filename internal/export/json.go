// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"github.com/jeranaias/cornell-tui/internal/notes"
	"github.com/jeranaias/cornell-tui/internal/storage"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports notes in the same JSON shape the store persists,
// so an export can be copied back into the data directory.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	return &JSONExporter{options: opts.withDefaults()}
}

// Export encodes the snapshot stamped with its capture time, or the
// export time when the snapshot carries none.
func (e *JSONExporter) Export(snap notes.Snapshot) ([]byte, error) {
	at := snap.TakenAt()
	if at.IsZero() {
		at = e.options.Now()
	}
	data, err := storage.Encode(snap, at)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
