// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notes contains the Cornell note set and its immutable snapshots.
package notes

import (
	"strings"
	"time"
)

// =============================================================================
// FIELDS
// =============================================================================

// Field identifies one of the three regions of a Cornell page.
type Field int

const (
	// FieldCues is the narrow left column: keywords and questions.
	FieldCues Field = iota
	// FieldNotes is the main column with the detailed notes.
	FieldNotes
	// FieldSummary is the bottom strip written after the lecture.
	FieldSummary
)

// FieldCount is the number of editable fields.
const FieldCount = 3

// Fields lists the fields in page order.
var Fields = [FieldCount]Field{FieldCues, FieldNotes, FieldSummary}

// String returns the storage name of the field.
func (f Field) String() string {
	switch f {
	case FieldCues:
		return "cues"
	case FieldNotes:
		return "notes"
	case FieldSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Title returns the human-readable heading of the field.
func (f Field) Title() string {
	switch f {
	case FieldCues:
		return "Keywords / Cues"
	case FieldNotes:
		return "Main Notes"
	case FieldSummary:
		return "Summary"
	default:
		return "Unknown"
	}
}

// Next returns the following field, wrapping around.
func (f Field) Next() Field {
	return Field((int(f) + 1) % FieldCount)
}

// Prev returns the preceding field, wrapping around.
func (f Field) Prev() Field {
	return Field((int(f) + FieldCount - 1) % FieldCount)
}

// =============================================================================
// NOTE SET
// =============================================================================

// NoteSet is the single persisted unit of user content.
// A zero SavedAt means the set has never been saved.
type NoteSet struct {
	Cues    string
	Notes   string
	Summary string
	SavedAt time.Time
}

// Get returns the text of a field.
func (n NoteSet) Get(f Field) string {
	switch f {
	case FieldCues:
		return n.Cues
	case FieldNotes:
		return n.Notes
	case FieldSummary:
		return n.Summary
	}
	return ""
}

// Set replaces the text of a field and reports whether it changed.
func (n *NoteSet) Set(f Field, value string) bool {
	var target *string
	switch f {
	case FieldCues:
		target = &n.Cues
	case FieldNotes:
		target = &n.Notes
	case FieldSummary:
		target = &n.Summary
	default:
		return false
	}
	if *target == value {
		return false
	}
	*target = value
	return true
}

// Clear resets the three text fields. SavedAt is kept: the persisted slot
// is only ever overwritten by a later save.
func (n *NoteSet) Clear() {
	n.Cues = ""
	n.Notes = ""
	n.Summary = ""
}

// IsEmpty reports whether all three fields are empty.
func (n NoteSet) IsEmpty() bool {
	return n.Cues == "" && n.Notes == "" && n.Summary == ""
}

// Equal compares the text fields only; SavedAt is ignored.
func (n NoteSet) Equal(other NoteSet) bool {
	return n.Cues == other.Cues && n.Notes == other.Notes && n.Summary == other.Summary
}

// HasBeenSaved reports whether the set carries a saved timestamp.
func (n NoteSet) HasBeenSaved() bool {
	return !n.SavedAt.IsZero()
}

// Snapshot captures the current text of the set.
func (n NoteSet) Snapshot(at time.Time) Snapshot {
	return Snapshot{
		cues:    n.Cues,
		notes:   n.Notes,
		summary: n.Summary,
		takenAt: at,
	}
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is an immutable copy of a NoteSet's text. Storage writes and
// exports consume snapshots so they never observe a half-edited state.
type Snapshot struct {
	cues    string
	notes   string
	summary string
	takenAt time.Time
}

// NewSnapshot builds a snapshot from raw values.
func NewSnapshot(cues, notes, summary string, at time.Time) Snapshot {
	return Snapshot{cues: cues, notes: notes, summary: summary, takenAt: at}
}

// Cues returns the cue column text.
func (s Snapshot) Cues() string { return s.cues }

// Notes returns the main notes text.
func (s Snapshot) Notes() string { return s.notes }

// Summary returns the summary text.
func (s Snapshot) Summary() string { return s.summary }

// TakenAt returns when the snapshot was captured.
func (s Snapshot) TakenAt() time.Time { return s.takenAt }

// Field returns the text of a field.
func (s Snapshot) Field(f Field) string {
	switch f {
	case FieldCues:
		return s.cues
	case FieldNotes:
		return s.notes
	case FieldSummary:
		return s.summary
	}
	return ""
}

// IsEmpty reports whether all three fields are empty.
func (s Snapshot) IsEmpty() bool {
	return s.cues == "" && s.notes == "" && s.summary == ""
}

// WordCount counts whitespace-separated words across all fields.
func (s Snapshot) WordCount() int {
	return len(strings.Fields(s.cues)) + len(strings.Fields(s.notes)) + len(strings.Fields(s.summary))
}

// NoteSet converts the snapshot back into a live set stamped with savedAt.
func (s Snapshot) NoteSet(savedAt time.Time) NoteSet {
	return NoteSet{
		Cues:    s.cues,
		Notes:   s.notes,
		Summary: s.summary,
		SavedAt: savedAt,
	}
}
